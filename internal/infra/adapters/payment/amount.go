package payment

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCents renders integer cents as a decimal string ("1999" -> "19.99").
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseAmount converts a provider decimal string to integer cents
// ("19.99" -> 1999). At most two fraction digits are accepted.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("too many fraction digits")
	}
	for len(frac) < 2 {
		frac += "0"
	}
	neg := false
	if strings.HasPrefix(whole, "-") {
		neg = true
		whole = whole[1:]
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, err
	}
	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}
