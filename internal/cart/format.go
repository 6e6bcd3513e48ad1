package cart

import "strconv"

// Rupiah renders an amount as the display string used everywhere in the UI
// and in checkout messages: "Rp" + dot-grouped digits + ",00".
// Rupiah(18000) == "Rp18.000,00".
func Rupiah(amount int64) string {
	return "Rp" + groupDigits(amount) + ",00"
}

// groupDigits formats a non-negative amount with dots between thousands
// groups: 18000 -> "18.000". Negative amounts render as "0"; prices are
// never negative.
func groupDigits(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	s := strconv.FormatInt(amount, 10)

	n := len(s)
	if n <= 3 {
		return s
	}

	var out []byte
	lead := n % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
