package cast_test

import (
	"testing"

	"github.com/seanpm2001/starknet-foundry/cast"
	"github.com/seanpm2001/starknet-foundry/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContractAddress = "0x326e3db4580b94948ca9d1d87fa359f2fa047a31a34757734a86aa4231fb9bb"

func TestBuildInvokeRequest(t *testing.T) {
	req, err := cast.BuildInvokeRequest(cast.Call{
		ContractAddress: testContractAddress,
		Function:        "transfer",
		Calldata:        []string{"0x10", "42"},
	}, nil)
	require.Nil(t, err)

	assert.Equal(t, testContractAddress, req.ContractAddress.String())
	assert.Len(t, req.Calldata, 2)
	assert.Equal(t, "0x10", req.Calldata[0].String())
	assert.Equal(t, "0x2a", req.Calldata[1].String())
	assert.Nil(t, req.MaxFee)
	assert.Nil(t, req.Nonce)

	// Well-known selector of the transfer entry point.
	expected, ferr := new(felt.Felt).SetStringStrict(
		"0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e")
	require.NoError(t, ferr)
	assert.True(t, expected.Equal(&req.EntryPointSelector))
}

func TestBuildInvokeRequestSelectorLiteral(t *testing.T) {
	req, err := cast.BuildInvokeRequest(cast.Call{
		ContractAddress: testContractAddress,
		Function:        "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e",
	}, nil)
	require.Nil(t, err)
	assert.Equal(t,
		"0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e",
		req.EntryPointSelector.String())
}

func TestBuildInvokeRequestOverrides(t *testing.T) {
	maxFee := new(felt.Felt).SetUint64(1000)
	nonce := new(felt.Felt).SetUint64(7)

	req, err := cast.BuildInvokeRequest(cast.Call{
		ContractAddress: testContractAddress,
		Function:        "put",
		Calldata:        []string{"0x10"},
	}, &cast.InvokeOptions{MaxFee: maxFee, Nonce: nonce})
	require.Nil(t, err)
	assert.True(t, maxFee.Equal(req.MaxFee))
	assert.True(t, nonce.Equal(req.Nonce))
}

func TestBuildInvokeRequestValidation(t *testing.T) {
	valid := cast.Call{
		ContractAddress: testContractAddress,
		Function:        "put",
		Calldata:        []string{"0x10"},
	}

	tests := map[string]struct {
		mutate func(*cast.Call)
		opts   *cast.InvokeOptions
	}{
		"zero contract address": {
			mutate: func(c *cast.Call) { c.ContractAddress = "0x0" },
		},
		"address above bound": {
			mutate: func(c *cast.Call) {
				c.ContractAddress = "0x800000000000000000000000000000000000000000000000000000000000000"
			},
		},
		"address out of field range": {
			mutate: func(c *cast.Call) {
				c.ContractAddress = "0x800000000000011000000000000000000000000000000000000000000000001"
			},
		},
		"unparsable address": {
			mutate: func(c *cast.Call) { c.ContractAddress = "the contract" },
		},
		"empty entry point": {
			mutate: func(c *cast.Call) { c.Function = "" },
		},
		"entry point with invalid characters": {
			mutate: func(c *cast.Call) { c.Function = "put money!" },
		},
		"selector literal out of range": {
			mutate: func(c *cast.Call) {
				c.Function = "0x800000000000011000000000000000000000000000000000000000000000001"
			},
		},
		"calldata out of field range": {
			mutate: func(c *cast.Call) {
				c.Calldata = []string{"0x800000000000011000000000000000000000000000000000000000000000001"}
			},
		},
		"unparsable calldata": {
			mutate: func(c *cast.Call) { c.Calldata = []string{"ten"} },
		},
		"zero max fee override": {
			mutate: func(*cast.Call) {},
			opts:   &cast.InvokeOptions{MaxFee: &felt.Zero},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			call := valid
			test.mutate(&call)

			req, err := cast.BuildInvokeRequest(call, test.opts)
			assert.Nil(t, req)
			require.IsType(t, cast.ValidationError{}, err)
		})
	}
}
