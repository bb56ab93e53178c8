package felt_test

import (
	"testing"

	"github.com/seanpm2001/starknet-foundry/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromString(t *testing.T) {
	t.Run("valid address", func(t *testing.T) {
		addr, err := felt.AddressFromString(
			"0x326e3db4580b94948ca9d1d87fa359f2fa047a31a34757734a86aa4231fb9bb")
		require.NoError(t, err)
		assert.Equal(t,
			"0x326e3db4580b94948ca9d1d87fa359f2fa047a31a34757734a86aa4231fb9bb",
			addr.String())
	})

	t.Run("zero address rejected", func(t *testing.T) {
		_, err := felt.AddressFromString("0x0")
		require.ErrorIs(t, err, felt.ErrZeroAddress)
	})

	t.Run("address bound rejected", func(t *testing.T) {
		// 2^251 is the first value above the address bound.
		_, err := felt.AddressFromString(
			"0x800000000000000000000000000000000000000000000000000000000000000")
		require.ErrorIs(t, err, felt.ErrAddressOutOfRange)
	})

	t.Run("out of field range rejected", func(t *testing.T) {
		_, err := felt.AddressFromString(
			"0x800000000000011000000000000000000000000000000000000000000000001")
		require.ErrorIs(t, err, felt.ErrOutOfRange)
	})

	t.Run("unparsable rejected", func(t *testing.T) {
		_, err := felt.AddressFromString("not an address")
		require.Error(t, err)
	})
}

func TestAddressUnmarshalJSON(t *testing.T) {
	var addr felt.Address
	require.NoError(t, addr.UnmarshalJSON([]byte(`"0x1234"`)))
	assert.Equal(t, "0x1234", addr.String())
	assert.False(t, addr.IsZero())

	require.ErrorIs(t, addr.UnmarshalJSON([]byte(`"0x0"`)), felt.ErrZeroAddress)
}
