package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePrice extracts the numeric value of a display price such as "₹199" or "50.5".
// Every character other than digits and '.' is discarded before parsing, the same way the
// storefront strips currency symbols. ok is false when nothing numeric remains.
func ParsePrice(price string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, price)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FormatPrice renders a price the way it is stored in the cart: the shortest decimal form.
func FormatPrice(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// FormatINR renders amount as rupees with two decimals and Indian digit grouping.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := fmt.Sprintf("%.2f", amount)
	intPart, frac := whole[:len(whole)-3], whole[len(whole)-2:]

	// Last three digits form one group, the rest are grouped in pairs.
	var grouped string
	if len(intPart) <= 3 {
		grouped = intPart
	} else {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}
	return sign + "₹" + grouped + "." + frac
}
