package cart

import "strings"

const countryCode = "62"

// NormalizePhone strips a WhatsApp number down to digits and ensures the
// Indonesian country code prefix: a number not already starting with "62"
// has its first digit replaced by it, so "082229081327" becomes
// "6282229081327".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return ""
	}
	if strings.HasPrefix(clean, countryCode) {
		return clean
	}
	return countryCode + clean[1:]
}
