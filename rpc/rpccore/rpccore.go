// Package rpccore carries the node's published JSON-RPC error-code catalog.
// It is the bit-exact contract with the starknet_api_openrpc specification
// and must be kept synchronized with it; classification looks codes up here.
package rpccore

import (
	"github.com/mitchellh/mapstructure"
	"github.com/seanpm2001/starknet-foundry/jsonrpc"
)

var (
	ErrFailedToReceiveTxn              = &jsonrpc.Error{Code: 1, Message: "Failed to write transaction"}
	ErrContractNotFound                = &jsonrpc.Error{Code: 20, Message: "Contract not found"}
	ErrEntrypointNotFound              = &jsonrpc.Error{Code: 21, Message: "Requested entrypoint does not exist in the contract"}
	ErrBlockNotFound                   = &jsonrpc.Error{Code: 24, Message: "Block not found"}
	ErrInvalidTxHash                   = &jsonrpc.Error{Code: 25, Message: "Invalid transaction hash"}
	ErrInvalidBlockHash                = &jsonrpc.Error{Code: 26, Message: "Invalid block hash"}
	ErrInvalidTxIndex                  = &jsonrpc.Error{Code: 27, Message: "Invalid transaction index in a block"}
	ErrClassHashNotFound               = &jsonrpc.Error{Code: 28, Message: "Class hash not found"}
	ErrTxnHashNotFound                 = &jsonrpc.Error{Code: 29, Message: "Transaction hash not found"}
	ErrPageSizeTooBig                  = &jsonrpc.Error{Code: 31, Message: "Requested page size is too big"}
	ErrNoBlock                         = &jsonrpc.Error{Code: 32, Message: "There are no blocks"}
	ErrInvalidContinuationToken        = &jsonrpc.Error{Code: 33, Message: "The supplied continuation token is invalid or unknown"}
	ErrTooManyKeysInFilter             = &jsonrpc.Error{Code: 34, Message: "Too many keys provided in a filter"}
	ErrContractError                   = &jsonrpc.Error{Code: 40, Message: "Contract error"}
	ErrTxnExecutionError               = &jsonrpc.Error{Code: 41, Message: "Transaction execution error"}
	ErrStorageProofNotSupported        = &jsonrpc.Error{Code: 42, Message: "the node doesn't support storage proofs for blocks that are too far in the past"} //nolint:lll
	ErrInvalidContractClass            = &jsonrpc.Error{Code: 50, Message: "Invalid contract class"}
	ErrClassAlreadyDeclared            = &jsonrpc.Error{Code: 51, Message: "Class already declared"}
	ErrInvalidTransactionNonce         = &jsonrpc.Error{Code: 52, Message: "Invalid transaction nonce"}
	ErrInsufficientMaxFee              = &jsonrpc.Error{Code: 53, Message: "Max fee is smaller than the minimal transaction cost (validation plus fee transfer)"} //nolint:lll
	ErrInsufficientBalance             = &jsonrpc.Error{Code: 54, Message: "Account balance is smaller than the transaction's max_fee"}
	ErrValidationFailure               = &jsonrpc.Error{Code: 55, Message: "Account validation failed"}
	ErrCompilationFailed               = &jsonrpc.Error{Code: 56, Message: "Compilation failed"}
	ErrContractClassTooLarge           = &jsonrpc.Error{Code: 57, Message: "Contract class size is too large"}
	ErrNonAccount                      = &jsonrpc.Error{Code: 58, Message: "Sender address is not an account contract"}
	ErrDuplicateTx                     = &jsonrpc.Error{Code: 59, Message: "A transaction with the same hash already exists in the mempool"}
	ErrCompiledClassHashMismatch       = &jsonrpc.Error{Code: 60, Message: "the compiled class hash did not match the one supplied in the transaction"} //nolint:lll
	ErrUnsupportedTxVersion            = &jsonrpc.Error{Code: 61, Message: "the transaction version is not supported"}
	ErrUnsupportedContractClassVersion = &jsonrpc.Error{Code: 62, Message: "the contract class version is not supported"}
	ErrUnexpectedError                 = &jsonrpc.Error{Code: 63, Message: "An unexpected error occurred"}
	ErrReplacementTxUnderPriced        = &jsonrpc.Error{Code: 64, Message: "Replacement transaction is underpriced"}
	ErrFeeBelowMinimum                 = &jsonrpc.Error{Code: 65, Message: "Transaction fee below minimum"}
	ErrInvalidSubscriptionID           = &jsonrpc.Error{Code: 66, Message: "Invalid subscription id"}
	ErrTooManyAddressesInFilter        = &jsonrpc.Error{Code: 67, Message: "Too many addresses in filter sender_address filter"}
	ErrTooManyBlocksBack               = &jsonrpc.Error{Code: 68, Message: "Cannot go back more than 1024 blocks"}
	ErrCallOnPending                   = &jsonrpc.Error{Code: 69, Message: "This method does not support being called on the pending block"}
	ErrCallOnPreConfirmed              = &jsonrpc.Error{Code: 70, Message: "This method does not support being called on the pre_confirmed block"} //nolint:lll
)

var knownErrors = map[int]*jsonrpc.Error{}

func init() {
	for _, err := range []*jsonrpc.Error{
		ErrFailedToReceiveTxn, ErrContractNotFound, ErrEntrypointNotFound, ErrBlockNotFound,
		ErrInvalidTxHash, ErrInvalidBlockHash, ErrInvalidTxIndex, ErrClassHashNotFound,
		ErrTxnHashNotFound, ErrPageSizeTooBig, ErrNoBlock, ErrInvalidContinuationToken,
		ErrTooManyKeysInFilter, ErrContractError, ErrTxnExecutionError, ErrStorageProofNotSupported,
		ErrInvalidContractClass, ErrClassAlreadyDeclared, ErrInvalidTransactionNonce,
		ErrInsufficientMaxFee, ErrInsufficientBalance, ErrValidationFailure, ErrCompilationFailed,
		ErrContractClassTooLarge, ErrNonAccount, ErrDuplicateTx, ErrCompiledClassHashMismatch,
		ErrUnsupportedTxVersion, ErrUnsupportedContractClassVersion, ErrUnexpectedError,
		ErrReplacementTxUnderPriced, ErrFeeBelowMinimum, ErrInvalidSubscriptionID,
		ErrTooManyAddressesInFilter, ErrTooManyBlocksBack, ErrCallOnPending, ErrCallOnPreConfirmed,
	} {
		knownErrors[err.Code] = err
	}
}

// FromCode returns the catalog entry for a node-defined error code, or nil
// when the code is not in the published catalog.
func FromCode(code int) *jsonrpc.Error {
	return knownErrors[code]
}

// ContractErrorData is the structured payload attached to code 40.
type ContractErrorData struct {
	RevertError string `json:"revert_error" mapstructure:"revert_error"`
}

// TransactionExecutionErrorData is the structured payload attached to code 41.
type TransactionExecutionErrorData struct {
	TransactionIndex uint64 `json:"transaction_index" mapstructure:"transaction_index"`
	ExecutionError   string `json:"execution_error"   mapstructure:"execution_error"`
}

// DecodeContractErrorData decodes an error envelope's data field into the
// code-40 payload. The envelope's data arrives as whatever encoding/json
// produced, hence the mapstructure pass.
func DecodeContractErrorData(data any) (ContractErrorData, error) {
	var decoded ContractErrorData
	err := mapstructure.Decode(data, &decoded)
	return decoded, err
}

// DecodeTransactionExecutionErrorData decodes an error envelope's data field
// into the code-41 payload.
func DecodeTransactionExecutionErrorData(data any) (TransactionExecutionErrorData, error) {
	var decoded TransactionExecutionErrorData
	err := mapstructure.Decode(data, &decoded)
	return decoded, err
}
