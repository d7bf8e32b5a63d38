package engine

// Reasons an identity validation can fail
const (
	ReasonMalformed        = "MALFORMED"
	ReasonChecksumMismatch = "CHECKSUM_MISMATCH"
)

// Positional weights of the Argentine CUIT mod-11 scheme
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// IdentityCheck is the outcome of validating a tax identifier
type IdentityCheck struct {
	Valid  bool
	Reason string
}

// ValidateCUIT validates the format and check digit of an Argentine CUIT.
// Hyphens and spaces are stripped; the remainder must be exactly 11 decimal
// digits. The 11th digit is verified against the weighted mod-11 checksum,
// with the mappings 11 -> 0 and 10 -> 9.
func ValidateCUIT(taxID string) IdentityCheck {
	digits := make([]int, 0, 11)
	for _, r := range taxID {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '-' || r == ' ':
			// separator, ignore
		default:
			return IdentityCheck{Reason: ReasonMalformed}
		}
	}
	if len(digits) != 11 {
		return IdentityCheck{Reason: ReasonMalformed}
	}

	sum := 0
	for i, w := range cuitWeights {
		sum += digits[i] * w
	}
	check := 11 - sum%11
	switch check {
	case 11:
		check = 0
	case 10:
		check = 9
	}

	if digits[10] != check {
		return IdentityCheck{Reason: ReasonChecksumMismatch}
	}
	return IdentityCheck{Valid: true}
}
