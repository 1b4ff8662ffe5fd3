// Package workers aggregates the daemon's background tasks — the
// connectivity prober, the periodic drain job, and the status server — so
// the entry point can start them as one unit.
package workers

// Worker is a single background task. Run either blocks for the duration of
// the work or spawns goroutines internally.
type Worker interface {
	Run()
}

// WorkerFunc adapts a function to the Worker interface.
type WorkerFunc func()

func (f WorkerFunc) Run() { f() }

// Workers runs a fixed set of workers in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
