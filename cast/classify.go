package cast

import (
	"errors"
	"fmt"

	"github.com/seanpm2001/starknet-foundry/jsonrpc"
	"github.com/seanpm2001/starknet-foundry/rpc/rpccore"
)

// Classify maps any failure observed by the invoke pipeline into exactly one
// ScriptCommandError variant. The ordering is fixed: transport failures
// first, then the protocol version check, then the node's published code
// table, then the unknown fallback. Classification is a pure function of its
// input; the table lookup is the only step extended when the node's catalog
// grows.
func Classify(err error) ScriptCommandError {
	if err == nil {
		return nil
	}

	// Local validation failures are classified at the source and pass through.
	var classified ScriptCommandError
	if errors.As(err, &classified) {
		return classified
	}

	var tErr *jsonrpc.TransportError
	if errors.As(err, &tErr) {
		// The kind is carried in its own field; the message keeps only the
		// underlying cause so rendering the error does not repeat the kind.
		msg := tErr.Kind.String()
		if tErr.Err != nil {
			msg = tErr.Err.Error()
		}
		return ProviderError{Kind: tErr.Kind, Message: msg}
	}

	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return classifyRPCError(rpcErr)
	}

	return UnknownError{Message: err.Error()}
}

func classifyRPCError(rpcErr *jsonrpc.Error) ScriptCommandError {
	// The client speaks exactly one method; a reserved Method Not Found from a
	// versioned endpoint means the endpoint does not serve this RPC version.
	if rpcErr.Code == jsonrpc.MethodNotFound {
		return RPCError{Err: RPCVersionNotSupported{}}
	}

	if known := rpccore.FromCode(rpcErr.Code); known != nil {
		return RPCError{Err: StarknetError{
			Kind: StarknetErrorKind(rpcErr.Code),
			Data: flattenErrorData(rpcErr),
		}}
	}

	return RPCError{Err: UnknownRPCError{Code: rpcErr.Code, Message: rpcErr.Message}}
}

// flattenErrorData renders the envelope's structured data payload for the
// matched variant. Sibling variants are discriminated by code before this
// point; the payload only adds detail.
func flattenErrorData(rpcErr *jsonrpc.Error) string {
	if rpcErr.Data == nil {
		return ""
	}

	switch StarknetErrorKind(rpcErr.Code) {
	case ContractError:
		if data, err := rpccore.DecodeContractErrorData(rpcErr.Data); err == nil && data.RevertError != "" {
			return data.RevertError
		}
	case TransactionExecutionError:
		if data, err := rpccore.DecodeTransactionExecutionErrorData(rpcErr.Data); err == nil && data.ExecutionError != "" {
			return fmt.Sprintf("transaction %d: %s", data.TransactionIndex, data.ExecutionError)
		}
	}

	if s, ok := rpcErr.Data.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", rpcErr.Data)
}
