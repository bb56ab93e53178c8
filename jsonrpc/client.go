// Package jsonrpc implements the client side of JSONRPC2.0 as described in
// https://www.jsonrpc.org/specification
package jsonrpc

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/seanpm2001/starknet-foundry/utils"
)

const (
	InvalidJSON    = -32700 // Invalid JSON was received by the server.
	InvalidRequest = -32600 // The JSON sent is not a valid Request object.
	MethodNotFound = -32601 // The method does not exist / is not available.
	InvalidParams  = -32602 // Invalid method parameter(s).
	InternalError  = -32603 // Internal JSON-RPC error.
)

type Request struct {
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      any    `json:"id,omitempty"`
}

type Response struct {
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      any             `json:"id"`
}

// Error is the wire-format error envelope. Data is kept as decoded by
// encoding/json so structured payloads survive to the classification layer.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *Error) CloneWithData(data any) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Data:    data,
	}
}

func getRandomID() (uint64, error) {
	var b [8]byte
	_, err := rand.Read(b[:])
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Client issues JSON-RPC calls over a Transport. It holds no per-call state,
// so a single Client may be shared by concurrent callers.
type Client struct {
	transport Transport
	log       utils.SimpleLogger
	idgen     func() (uint64, error)
}

func NewClient(transport Transport, log utils.SimpleLogger) *Client {
	return &Client{
		transport: transport,
		log:       log,
		idgen:     getRandomID,
	}
}

func (c *Client) WithIDGen(idgen func() (uint64, error)) *Client {
	c.idgen = idgen
	return c
}

// Call performs a single request/response exchange for the given method.
// Failures are one of exactly two shapes: a *TransportError when the exchange
// or the envelope itself broke, or an *Error when the endpoint answered with
// an error envelope. The error envelope's data payload is preserved.
func (c *Client) Call(ctx context.Context, method string, params any) (json.RawMessage, error) {
	id, err := c.idgen()
	if err != nil {
		return nil, fmt.Errorf("generate request id: %w", err)
	}

	body, err := json.Marshal(Request{
		Version: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	c.log.Debugw("jsonrpc call", "method", method, "id", id)
	raw, err := c.transport.Send(ctx, body)
	if err != nil {
		var tErr *TransportError
		if errors.As(err, &tErr) {
			return nil, tErr
		}
		return nil, &TransportError{Kind: ConnectionFailed, Err: err}
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &TransportError{Kind: MalformedResponse, Err: err}
	}
	if resp.Error != nil {
		c.log.Debugw("jsonrpc error response",
			"method", method, "code", resp.Error.Code, "message", resp.Error.Message)
		return nil, resp.Error
	}
	if resp.Result == nil {
		return nil, &TransportError{
			Kind: MalformedResponse,
			Err:  errors.New("response carries neither result nor error"),
		}
	}
	return resp.Result, nil
}
