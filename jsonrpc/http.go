package jsonrpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/seanpm2001/starknet-foundry/utils"
)

// HTTPTransport posts JSON-RPC requests to a node's HTTP endpoint. One call
// is one POST; there are no retries at this layer.
type HTTPTransport struct {
	url     string
	client  *http.Client
	timeout time.Duration
	log     utils.SimpleLogger
}

var _ Transport = (*HTTPTransport)(nil)

func NewHTTPTransport(url string, log utils.SimpleLogger) *HTTPTransport {
	return &HTTPTransport{
		url:     strings.TrimSuffix(url, "/"),
		client:  http.DefaultClient,
		timeout: 10 * time.Second,
		log:     log,
	}
}

func (t *HTTPTransport) WithTimeout(timeout time.Duration) *HTTPTransport {
	t.timeout = timeout
	return t
}

func (t *HTTPTransport) WithHTTPClient(client *http.Client) *HTTPTransport {
	t.client = client
	return t
}

func (t *HTTPTransport) Send(ctx context.Context, request []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(request))
	if err != nil {
		return nil, &TransportError{Kind: ConnectionFailed, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, &TransportError{Kind: classifyNetError(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Kind: MalformedResponse, Err: err}
	}

	// JSON-RPC endpoints answer application errors with a 200 and an error
	// envelope. A non-200 with an empty body never carried an envelope, so it
	// is a transport failure; otherwise the body is handed to the decoder.
	if resp.StatusCode != http.StatusOK && len(body) == 0 {
		t.log.Warnw("unexpected http status", "status", resp.Status)
		return nil, &TransportError{Kind: ConnectionFailed, Err: errors.New(resp.Status)}
	}
	return body, nil
}

func classifyNetError(err error) TransportErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Timeout
	}
	return ConnectionFailed
}
