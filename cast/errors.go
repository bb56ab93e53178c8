package cast

import (
	"fmt"

	"github.com/seanpm2001/starknet-foundry/jsonrpc"
)

// ScriptCommandError is the closed, layered classification of every way an
// invoke can fail. Every failure the pipeline observes resolves to exactly
// one concrete variant; callers switch on the variant instead of matching
// message text.
type ScriptCommandError interface {
	error
	scriptCommandError()
}

// RPCError wraps a JSON-RPC shaped failure reported by the node.
type RPCError struct {
	Err RPCErrorVariant
}

func (e RPCError) Error() string {
	return e.Err.Error()
}

func (RPCError) scriptCommandError() {}

// ProviderError reports a transport-level failure. It never carries node
// execution semantics: a connection failure or timeout is classified here
// even when a transaction may still execute remotely.
type ProviderError struct {
	Kind    jsonrpc.TransportErrorKind
	Message string
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("provider error (%s): %s", e.Kind, e.Message)
}

func (ProviderError) scriptCommandError() {}

// ValidationError reports a locally rejected request; nothing was sent over
// the transport.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return "validation error: " + e.Message
}

func (ValidationError) scriptCommandError() {}

// UnknownError is the top-level catch-all for failures outside the transport
// and JSON-RPC surfaces, such as a misbehaving signer.
type UnknownError struct {
	Message string
}

func (e UnknownError) Error() string {
	return "unknown error: " + e.Message
}

func (UnknownError) scriptCommandError() {}

// RPCErrorVariant is the closed set of JSON-RPC failure shapes.
type RPCErrorVariant interface {
	error
	rpcErrorVariant()
}

// StarknetError is a node-defined execution or validation failure matched
// against the published code catalog. Data carries the flattened structured
// payload when the node attached one.
type StarknetError struct {
	Kind StarknetErrorKind
	Data string
}

func (e StarknetError) Error() string {
	if e.Data == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Data)
}

func (StarknetError) rpcErrorVariant() {}

// RPCVersionNotSupported means the endpoint does not serve the RPC version
// this client speaks.
type RPCVersionNotSupported struct{}

func (RPCVersionNotSupported) Error() string {
	return "RPC version not supported by the node"
}

func (RPCVersionNotSupported) rpcErrorVariant() {}

// UnknownRPCError preserves the raw code and message of a JSON-RPC error the
// catalog does not recognize. It is a legitimate, stable output that keeps
// classification total as the node's catalog evolves.
type UnknownRPCError struct {
	Code    int
	Message string
}

func (e UnknownRPCError) Error() string {
	return fmt.Sprintf("unknown RPC error %d: %s", e.Code, e.Message)
}

func (UnknownRPCError) rpcErrorVariant() {}

// StarknetErrorKind enumerates the node-defined error codes; the value of
// each kind is its published code.
type StarknetErrorKind int

const (
	FailedToReceiveTxn                StarknetErrorKind = 1
	ContractNotFound                  StarknetErrorKind = 20
	EntrypointNotFound                StarknetErrorKind = 21
	BlockNotFound                     StarknetErrorKind = 24
	InvalidTransactionHash            StarknetErrorKind = 25
	InvalidBlockHash                  StarknetErrorKind = 26
	InvalidTransactionIndex           StarknetErrorKind = 27
	ClassHashNotFound                 StarknetErrorKind = 28
	TransactionHashNotFound           StarknetErrorKind = 29
	PageSizeTooBig                    StarknetErrorKind = 31
	NoBlocks                          StarknetErrorKind = 32
	InvalidContinuationToken          StarknetErrorKind = 33
	TooManyKeysInFilter               StarknetErrorKind = 34
	ContractError                     StarknetErrorKind = 40
	TransactionExecutionError         StarknetErrorKind = 41
	StorageProofNotSupported          StarknetErrorKind = 42
	InvalidContractClass              StarknetErrorKind = 50
	ClassAlreadyDeclared              StarknetErrorKind = 51
	InvalidTransactionNonce           StarknetErrorKind = 52
	InsufficientMaxFee                StarknetErrorKind = 53
	InsufficientAccountBalance        StarknetErrorKind = 54
	ValidationFailure                 StarknetErrorKind = 55
	CompilationFailed                 StarknetErrorKind = 56
	ContractClassSizeTooLarge         StarknetErrorKind = 57
	NonAccount                        StarknetErrorKind = 58
	DuplicateTransaction              StarknetErrorKind = 59
	CompiledClassHashMismatch         StarknetErrorKind = 60
	UnsupportedTransactionVersion     StarknetErrorKind = 61
	UnsupportedContractClassVersion   StarknetErrorKind = 62
	UnexpectedError                   StarknetErrorKind = 63
	ReplacementTransactionUnderpriced StarknetErrorKind = 64
	FeeBelowMinimum                   StarknetErrorKind = 65
	InvalidSubscriptionID             StarknetErrorKind = 66
	TooManyAddressesInFilter          StarknetErrorKind = 67
	TooManyBlocksBack                 StarknetErrorKind = 68
	CallOnPending                     StarknetErrorKind = 69
	CallOnPreConfirmed                StarknetErrorKind = 70
)

//nolint:gocyclo
func (k StarknetErrorKind) String() string {
	switch k {
	case FailedToReceiveTxn:
		return "FailedToReceiveTransaction"
	case ContractNotFound:
		return "ContractNotFound"
	case EntrypointNotFound:
		return "EntrypointNotFound"
	case BlockNotFound:
		return "BlockNotFound"
	case InvalidTransactionHash:
		return "InvalidTransactionHash"
	case InvalidBlockHash:
		return "InvalidBlockHash"
	case InvalidTransactionIndex:
		return "InvalidTransactionIndex"
	case ClassHashNotFound:
		return "ClassHashNotFound"
	case TransactionHashNotFound:
		return "TransactionHashNotFound"
	case PageSizeTooBig:
		return "PageSizeTooBig"
	case NoBlocks:
		return "NoBlocks"
	case InvalidContinuationToken:
		return "InvalidContinuationToken"
	case TooManyKeysInFilter:
		return "TooManyKeysInFilter"
	case ContractError:
		return "ContractError"
	case TransactionExecutionError:
		return "TransactionExecutionError"
	case StorageProofNotSupported:
		return "StorageProofNotSupported"
	case InvalidContractClass:
		return "InvalidContractClass"
	case ClassAlreadyDeclared:
		return "ClassAlreadyDeclared"
	case InvalidTransactionNonce:
		return "InvalidTransactionNonce"
	case InsufficientMaxFee:
		return "InsufficientMaxFee"
	case InsufficientAccountBalance:
		return "InsufficientAccountBalance"
	case ValidationFailure:
		return "ValidationFailure"
	case CompilationFailed:
		return "CompilationFailed"
	case ContractClassSizeTooLarge:
		return "ContractClassSizeTooLarge"
	case NonAccount:
		return "NonAccount"
	case DuplicateTransaction:
		return "DuplicateTransaction"
	case CompiledClassHashMismatch:
		return "CompiledClassHashMismatch"
	case UnsupportedTransactionVersion:
		return "UnsupportedTransactionVersion"
	case UnsupportedContractClassVersion:
		return "UnsupportedContractClassVersion"
	case UnexpectedError:
		return "UnexpectedError"
	case ReplacementTransactionUnderpriced:
		return "ReplacementTransactionUnderpriced"
	case FeeBelowMinimum:
		return "FeeBelowMinimum"
	case InvalidSubscriptionID:
		return "InvalidSubscriptionID"
	case TooManyAddressesInFilter:
		return "TooManyAddressesInFilter"
	case TooManyBlocksBack:
		return "TooManyBlocksBack"
	case CallOnPending:
		return "CallOnPending"
	case CallOnPreConfirmed:
		return "CallOnPreConfirmed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}
