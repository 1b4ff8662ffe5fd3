package remote

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	return &StoreError{
		Class:      classifyStatus(code),
		StatusCode: code,
		Message:    body,
	}
}

// classifyStatus maps an HTTP status to the retry taxonomy. Rate limiting and
// request timeouts are transient despite being 4xx.
func classifyStatus(code int) Classification {
	switch {
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return Transient
	case code >= http.StatusInternalServerError:
		return Transient
	case code >= http.StatusBadRequest:
		return Permanent
	default:
		return Transient
	}
}

// wrapTransportError converts a resty transport failure (DNS, connection
// refused, context timeout) into a transient *StoreError.
func wrapTransportError(op string, err error) error {
	return &StoreError{
		Class:   Transient,
		Message: op + ": " + err.Error(),
		cause:   err,
	}
}
