package remote

import (
	"errors"

	"github.com/kolo/xmlrpc"
)

var (
	// ErrNotConnected indicates the client has no usable connection, either
	// because Connect was never called, it failed, or Close was called.
	ErrNotConnected = errors.New("not connected to DataLab")

	// ErrNotRunning indicates a port was resolved but nothing answered on it.
	ErrNotRunning = errors.New("DataLab is currently not running")

	// ErrNotExecuted indicates no port could be discovered because DataLab
	// has never written its settings file.
	ErrNotExecuted = errors.New("DataLab has not yet been executed")
)

// Fault reports whether err carries an XML-RPC fault from the server and, if
// so, returns its code and message.
func Fault(err error) (code int, message string, ok bool) {
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return fault.Code, fault.String, true
	}
	return 0, "", false
}
