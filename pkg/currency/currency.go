// Package currency renders amounts for display. Prices travel through the
// system as raw floats; rounding and grouping happen here and nowhere else.
package currency

import (
	"fmt"
	"math"
	"strings"
)

// Format renders an amount like "1 250 000 FCFA" for XAF or "1,250.50 USD"
// for decimal currencies. XAF has no minor unit.
func Format(amount float64, code string) string {
	switch strings.ToUpper(code) {
	case "XAF", "XOF":
		return groupThousands(int64(math.Round(amount)), " ") + " FCFA"
	default:
		whole := int64(amount)
		cents := int64(math.Round(math.Abs(amount-float64(whole)) * 100))

		if cents >= 100 {
			whole += sign(amount)
			cents -= 100
		}

		return fmt.Sprintf("%s.%02d %s", groupThousands(whole, ","), cents, strings.ToUpper(code))
	}
}

func sign(f float64) int64 {
	if f < 0 {
		return -1
	}

	return 1
}

func groupThousands(n int64, sep string) string {
	digits := fmt.Sprintf("%d", n)

	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	out := strings.Join(parts, sep)
	if negative {
		out = "-" + out
	}

	return out
}
