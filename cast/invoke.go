// Package cast is the invocation core of the scripting client: it builds and
// dispatches invoke transactions and folds every failure — local validation,
// transport, node-reported — into the ScriptCommandError taxonomy.
package cast

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/seanpm2001/starknet-foundry/core/felt"
	"github.com/seanpm2001/starknet-foundry/jsonrpc"
	"github.com/seanpm2001/starknet-foundry/utils"
)

const addInvokeTransactionMethod = "starknet_addInvokeTransaction"

// BroadcastedInvokeTxn is the signed invoke envelope sent to the node,
// produced by the signer from a validated InvokeRequest.
type BroadcastedInvokeTxn struct {
	Type          string       `json:"type"           validate:"required,eq=INVOKE"`
	Version       *felt.Felt   `json:"version"        validate:"required"`
	SenderAddress *felt.Felt   `json:"sender_address" validate:"required"`
	Calldata      []*felt.Felt `json:"calldata"       validate:"required"`
	Signature     []*felt.Felt `json:"signature"      validate:"required"`
	MaxFee        *felt.Felt   `json:"max_fee"        validate:"required"`
	Nonce         *felt.Felt   `json:"nonce"          validate:"required"`
}

// Signer produces a signed invoke envelope from validated call data. Account
// selection, nonce and fee estimation defaults, key storage and the
// signature scheme are its concern, not the pipeline's.
type Signer interface {
	SignInvoke(ctx context.Context, req *InvokeRequest) (*BroadcastedInvokeTxn, error)
}

// InvokeResponse carries the identifier of an accepted transaction.
type InvokeResponse struct {
	TransactionHash *felt.TransactionHash `json:"transaction_hash"`
}

// Invoker submits invoke transactions over a JSON-RPC transport. It holds no
// mutable per-call state, so one Invoker serves concurrent callers.
type Invoker struct {
	client   *jsonrpc.Client
	signer   Signer
	validate *validator.Validate
	log      utils.SimpleLogger
}

func NewInvoker(transport jsonrpc.Transport, signer Signer, log utils.SimpleLogger) *Invoker {
	return &Invoker{
		client:   jsonrpc.NewClient(transport, log),
		signer:   signer,
		validate: validator.New(),
		log:      log,
	}
}

// Invoke submits one state-changing call. Exactly one network exchange is
// performed per invocation and there are no silent retries; retry policy
// belongs to the caller. A non-nil error is always one ScriptCommandError
// variant. A timeout does not cancel the remote side — the taxonomy reports
// what this client observed, nothing more.
func (i *Invoker) Invoke(ctx context.Context, call Call, opts *InvokeOptions) (*InvokeResponse, error) {
	req, cErr := BuildInvokeRequest(call, opts)
	if cErr != nil {
		return nil, cErr
	}

	txn, err := i.signer.SignInvoke(ctx, req)
	if err != nil {
		return nil, UnknownError{Message: "sign invoke transaction: " + err.Error()}
	}
	if err := i.validate.Struct(txn); err != nil {
		return nil, ValidationError{Message: "signed invoke transaction: " + err.Error()}
	}

	i.log.Debugw("submitting invoke transaction",
		"contractAddress", req.ContractAddress.String(),
		"selector", req.EntryPointSelector.String(),
		"calldataLen", len(req.Calldata))

	result, err := i.client.Call(ctx, addInvokeTransactionMethod, map[string]any{
		"invoke_transaction": txn,
	})
	if err != nil {
		return nil, Classify(err)
	}

	var resp InvokeResponse
	if err := json.Unmarshal(result, &resp); err != nil {
		return nil, Classify(&jsonrpc.TransportError{Kind: jsonrpc.MalformedResponse, Err: err})
	}
	if resp.TransactionHash == nil {
		return nil, Classify(&jsonrpc.TransportError{
			Kind: jsonrpc.MalformedResponse,
			Err:  errors.New("result is missing transaction_hash"),
		})
	}

	i.log.Infow("invoke transaction accepted", "transactionHash", resp.TransactionHash.String())
	return &resp, nil
}
