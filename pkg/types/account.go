package types

// AccountID identifies an account on the host chain. The host
// authenticates callers; this type only checks syntactic shape.
type AccountID string

// Account id length bounds, matching NEAR account naming rules.
const (
	MinAccountIDLen = 2
	MaxAccountIDLen = 64
)

// Validate checks the account id against the host naming rules:
// 2-64 characters, lowercase alphanumeric parts separated by single
// '.', '_' or '-' characters, never leading or trailing.
func (a AccountID) Validate() error {
	if len(a) < MinAccountIDLen || len(a) > MaxAccountIDLen {
		return ErrInvalidAccountID
	}
	lastSep := true // a separator must not lead
	for i := 0; i < len(a); i++ {
		c := a[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			lastSep = false
		case c == '.' || c == '_' || c == '-':
			if lastSep {
				return ErrInvalidAccountID
			}
			lastSep = true
		default:
			return ErrInvalidAccountID
		}
	}
	if lastSep {
		return ErrInvalidAccountID
	}
	return nil
}
