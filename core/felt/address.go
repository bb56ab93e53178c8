package felt

import (
	"errors"
	"math/big"
)

// Address is a deployed contract's address. Valid addresses are non-zero
// felts below 2^251, per the network's address bound.
type Address Felt

var addressBound = new(big.Int).Lsh(big.NewInt(1), 251)

var (
	ErrZeroAddress       = errors.New("contract address must not be zero")
	ErrAddressOutOfRange = errors.New("contract address is out of range")
)

// NewAddress validates f as a contract address.
func NewAddress(f *Felt) (*Address, error) {
	if f.IsZero() {
		return nil, ErrZeroAddress
	}

	vv := bigIntPool.Get().(*big.Int)
	defer bigIntPool.Put(vv)

	if f.BigInt(vv).Cmp(addressBound) >= 0 {
		return nil, ErrAddressOutOfRange
	}

	a := Address(*f)
	return &a, nil
}

// AddressFromString parses and validates a contract address given as a
// decimal or 0x-prefixed string. Values that do not decode to a felt, decode
// to zero or exceed the address bound are rejected.
func AddressFromString(s string) (*Address, error) {
	f, err := new(Felt).SetStringStrict(s)
	if err != nil {
		return nil, err
	}
	return NewAddress(f)
}

func (a *Address) AsFelt() *Felt {
	return (*Felt)(a)
}

func (a *Address) Bytes() [32]byte {
	return (*Felt)(a).Bytes()
}

func (a *Address) String() string {
	return (*Felt)(a).String()
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var f Felt
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	validated, err := NewAddress(&f)
	if err != nil {
		return err
	}
	*a = *validated
	return nil
}

func (a *Address) MarshalJSON() ([]byte, error) {
	return (*Felt)(a).MarshalJSON()
}

func (a *Address) IsZero() bool {
	return (*Felt)(a).IsZero()
}

func (a *Address) Equal(b *Address) bool {
	return (*Felt)(a).Equal((*Felt)(b))
}
