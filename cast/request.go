package cast

import (
	"fmt"
	"strings"

	"github.com/seanpm2001/starknet-foundry/core/crypto"
	"github.com/seanpm2001/starknet-foundry/core/felt"
)

// Call is the script-facing description of one state-changing contract call.
// Values arrive as decimal or 0x-prefixed strings; Function is either an
// entry-point name or a 0x selector literal.
type Call struct {
	ContractAddress string
	Function        string
	Calldata        []string
}

// InvokeOptions overrides fields the signer would otherwise fill in.
type InvokeOptions struct {
	MaxFee *felt.Felt
	Nonce  *felt.Felt
}

// InvokeRequest is a validated, immutable invoke ready for signing. It is
// built once per call and discarded after dispatch.
type InvokeRequest struct {
	ContractAddress    felt.Address
	EntryPointSelector felt.Felt
	Calldata           []*felt.Felt
	MaxFee             *felt.Felt
	Nonce              *felt.Felt
}

// BuildInvokeRequest validates a call and resolves its entry point. It
// performs no network I/O; every rejection is a ValidationError and costs
// nothing remotely.
func BuildInvokeRequest(call Call, opts *InvokeOptions) (*InvokeRequest, ScriptCommandError) {
	address, err := felt.AddressFromString(call.ContractAddress)
	if err != nil {
		return nil, ValidationError{
			Message: fmt.Sprintf("contract address %q: %s", call.ContractAddress, err),
		}
	}

	selector, err := resolveSelector(call.Function)
	if err != nil {
		return nil, ValidationError{
			Message: fmt.Sprintf("entry point %q: %s", call.Function, err),
		}
	}

	calldata := make([]*felt.Felt, 0, len(call.Calldata))
	for i, value := range call.Calldata {
		f, err := new(felt.Felt).SetStringStrict(value)
		if err != nil {
			return nil, ValidationError{
				Message: fmt.Sprintf("calldata[%d] %q: %s", i, value, err),
			}
		}
		calldata = append(calldata, f)
	}

	req := &InvokeRequest{
		ContractAddress:    *address,
		EntryPointSelector: *selector,
		Calldata:           calldata,
	}
	if opts != nil {
		if opts.MaxFee != nil && opts.MaxFee.IsZero() {
			return nil, ValidationError{Message: "max fee must be greater than zero"}
		}
		req.MaxFee = opts.MaxFee
		req.Nonce = opts.Nonce
	}
	return req, nil
}

// resolveSelector turns an entry-point identifier into its selector felt. A
// 0x literal is parsed as-is; anything else is treated as a function name
// and hashed with starknet keccak.
func resolveSelector(function string) (*felt.Felt, error) {
	if function == "" {
		return nil, fmt.Errorf("empty entry point")
	}
	if strings.HasPrefix(function, "0x") {
		return new(felt.Felt).SetStringStrict(function)
	}
	for _, r := range function {
		validRune := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !validRune {
			return nil, fmt.Errorf("invalid character %q in entry point name", r)
		}
	}
	element, err := crypto.StarknetKeccak([]byte(function))
	if err != nil {
		return nil, err
	}
	return felt.NewFelt(element), nil
}
