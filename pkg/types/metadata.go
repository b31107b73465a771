package types

// TokenMetadata describes a series and, through the series back-reference,
// every token minted from it. Title is the only required field; Extra
// carries open-ended descriptive fields as a flat key-value map so that
// validation and storage sizing stay precise.
type TokenMetadata struct {
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Media       string            `json:"media,omitempty" yaml:"media,omitempty"`
	Reference   string            `json:"reference,omitempty" yaml:"reference,omitempty"`
	Extra       map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Validate checks the required fields.
func (m TokenMetadata) Validate() error {
	if m.Title == "" {
		return ErrInvalidMetadata
	}
	for k := range m.Extra {
		if k == "" {
			return ErrInvalidMetadata
		}
	}
	return nil
}

// StorageBytes returns the persisted size of the metadata record, used
// for storage-deposit accounting.
func (m TokenMetadata) StorageBytes() uint64 {
	n := uint64(len(m.Title) + len(m.Description) + len(m.Media) + len(m.Reference))
	for k, v := range m.Extra {
		n += uint64(len(k) + len(v))
	}
	return n
}

// Clone returns a deep copy so that a stored record never aliases
// caller-owned maps.
func (m TokenMetadata) Clone() TokenMetadata {
	out := m
	if m.Extra != nil {
		out.Extra = make(map[string]string, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// ContractMetadata describes the contract itself (NEP-177 shape).
type ContractMetadata struct {
	Spec      string `json:"spec" yaml:"spec"`
	Name      string `json:"name" yaml:"name"`
	Symbol    string `json:"symbol" yaml:"symbol"`
	Icon      string `json:"icon,omitempty" yaml:"icon,omitempty"`
	BaseURI   string `json:"base_uri,omitempty" yaml:"base_uri,omitempty"`
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// Validate checks the required contract metadata fields.
func (m ContractMetadata) Validate() error {
	if m.Spec == "" || m.Name == "" || m.Symbol == "" {
		return ErrInvalidMetadata
	}
	return nil
}
