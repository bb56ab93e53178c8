package jsonrpc

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=../mocks/mock_transport.go -package=mocks github.com/seanpm2001/starknet-foundry/jsonrpc Transport

// Transport performs one request/response exchange with a remote endpoint.
// Implementations return either the raw response bytes or a *TransportError;
// they never surface endpoint semantics.
type Transport interface {
	Send(ctx context.Context, request []byte) ([]byte, error)
}

type TransportErrorKind int

const (
	ConnectionFailed TransportErrorKind = iota
	Timeout
	MalformedResponse
)

func (k TransportErrorKind) String() string {
	switch k {
	case ConnectionFailed:
		return "connection failed"
	case Timeout:
		return "timeout"
	case MalformedResponse:
		return "malformed response"
	default:
		return fmt.Sprintf("transport error %d", k)
	}
}

// TransportError is the three-way outcome every transport failure is
// normalized into. The raw cause is kept for logs but carries no meaning to
// the classification layer.
type TransportError struct {
	Kind TransportErrorKind
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
