package felt

type Hash Felt

func (h *Hash) Bytes() [32]byte {
	return (*Felt)(h).Bytes()
}

func (h *Hash) String() string {
	return (*Felt)(h).String()
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	return (*Felt)(h).UnmarshalJSON(data)
}

func (h *Hash) MarshalJSON() ([]byte, error) {
	return (*Felt)(h).MarshalJSON()
}

// TransactionHash identifies a submitted transaction.
type TransactionHash Hash

func (h *TransactionHash) String() string {
	return (*Hash)(h).String()
}

func (h *TransactionHash) UnmarshalJSON(data []byte) error {
	return (*Hash)(h).UnmarshalJSON(data)
}

func (h *TransactionHash) MarshalJSON() ([]byte, error) {
	return (*Hash)(h).MarshalJSON()
}

func (h *TransactionHash) Equal(x *TransactionHash) bool {
	return (*Felt)(h).Equal((*Felt)(x))
}
