package content

import "fmt"

// ErrorKind distinguishes requests that never produced a response from
// requests the server answered with a non-2xx status.
type ErrorKind string

const (
	KindNetwork        ErrorKind = "network"
	KindServerRejected ErrorKind = "serverRejected"
)

// TransportError is the failure type for every content API call. Status is
// zero for network failures; Message carries the server's reported message
// when one could be decoded, otherwise a generic description.
type TransportError struct {
	Kind    ErrorKind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Kind == KindNetwork {
		return fmt.Sprintf("content %s: network failure: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("content %s: server rejected (%d): %s", e.Op, e.Status, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }
