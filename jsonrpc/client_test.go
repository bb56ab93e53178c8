package jsonrpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/seanpm2001/starknet-foundry/jsonrpc"
	"github.com/seanpm2001/starknet-foundry/mocks"
	"github.com/seanpm2001/starknet-foundry/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func staticID() (uint64, error) { return 1, nil }

func newTestClient(t *testing.T) (*jsonrpc.Client, *mocks.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	client := jsonrpc.NewClient(transport, utils.NewNopZapLogger()).WithIDGen(staticID)
	return client, transport
}

func TestCallSuccess(t *testing.T) {
	client, transport := newTestClient(t)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request []byte) ([]byte, error) {
			var req jsonrpc.Request
			require.NoError(t, json.Unmarshal(request, &req))
			assert.Equal(t, "2.0", req.Version)
			assert.Equal(t, "starknet_addInvokeTransaction", req.Method)
			return []byte(`{"jsonrpc":"2.0","result":{"transaction_hash":"0x123"},"id":1}`), nil
		})

	result, err := client.Call(context.Background(), "starknet_addInvokeTransaction", map[string]any{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"transaction_hash":"0x123"}`, string(result))
}

func TestCallErrorEnvelope(t *testing.T) {
	client, transport := newTestClient(t)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(
		[]byte(`{"jsonrpc":"2.0","error":{"code":40,"message":"Contract error","data":{"revert_error":"assert failed"}},"id":1}`), nil)

	_, err := client.Call(context.Background(), "starknet_addInvokeTransaction", nil)
	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 40, rpcErr.Code)
	assert.Equal(t, "Contract error", rpcErr.Message)
	assert.Equal(t, map[string]any{"revert_error": "assert failed"}, rpcErr.Data)
}

func TestCallMalformedResponse(t *testing.T) {
	client, transport := newTestClient(t)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return([]byte("not json"), nil)

	_, err := client.Call(context.Background(), "starknet_addInvokeTransaction", nil)
	var tErr *jsonrpc.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, jsonrpc.MalformedResponse, tErr.Kind)
}

func TestCallEmptyEnvelope(t *testing.T) {
	client, transport := newTestClient(t)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return([]byte(`{"jsonrpc":"2.0","id":1}`), nil)

	_, err := client.Call(context.Background(), "starknet_addInvokeTransaction", nil)
	var tErr *jsonrpc.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, jsonrpc.MalformedResponse, tErr.Kind)
}

func TestCallTransportError(t *testing.T) {
	client, transport := newTestClient(t)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(
		nil, &jsonrpc.TransportError{Kind: jsonrpc.Timeout, Err: context.DeadlineExceeded})

	_, err := client.Call(context.Background(), "starknet_addInvokeTransaction", nil)
	var tErr *jsonrpc.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, jsonrpc.Timeout, tErr.Kind)
}

func TestCallWrapsBareTransportError(t *testing.T) {
	client, transport := newTestClient(t)

	transport.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := client.Call(context.Background(), "starknet_addInvokeTransaction", nil)
	var tErr *jsonrpc.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, jsonrpc.ConnectionFailed, tErr.Kind)
}
