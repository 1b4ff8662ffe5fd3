package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual_InitialState(t *testing.T) {
	assert.True(t, NewManual(true).IsOnline())
	assert.False(t, NewManual(false).IsOnline())
}

func TestManual_TransitionNotifiesSubscribers(t *testing.T) {
	m := NewManual(false)

	var got []bool
	m.OnChange(func(online bool) {
		got = append(got, online)
	})

	m.SetOnline(true)
	m.SetOnline(false)

	require.Equal(t, []bool{true, false}, got)
	assert.False(t, m.IsOnline())
}

func TestManual_NoNotificationWithoutTransition(t *testing.T) {
	m := NewManual(true)

	calls := 0
	m.OnChange(func(bool) { calls++ })

	m.SetOnline(true)
	m.SetOnline(true)

	assert.Zero(t, calls)
}

func TestManual_Unsubscribe(t *testing.T) {
	m := NewManual(false)

	calls := 0
	unsubscribe := m.OnChange(func(bool) { calls++ })

	m.SetOnline(true)
	require.Equal(t, 1, calls)

	unsubscribe()
	unsubscribe() // second call is a no-op

	m.SetOnline(false)
	assert.Equal(t, 1, calls)
}

func TestManual_MultipleSubscribers(t *testing.T) {
	m := NewManual(false)

	a, b := 0, 0
	m.OnChange(func(bool) { a++ })
	unsubB := m.OnChange(func(bool) { b++ })

	m.SetOnline(true)
	unsubB()
	m.SetOnline(false)

	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
}

func TestManual_CallbackMayReadState(t *testing.T) {
	m := NewManual(false)

	var observed bool
	m.OnChange(func(bool) {
		// reading state from inside the callback must not deadlock
		observed = m.IsOnline()
	})

	m.SetOnline(true)
	assert.True(t, observed)
}
