package filter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseFee extracts the numeric amount from a fee label such as "₹1,200".
// Everything except digits, '.' and '-' is dropped, then the longest leading
// decimal number is read. Unparsable input yields zero.
func ParseFee(fees string) decimal.Decimal {
	var b strings.Builder
	for _, r := range fees {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	num := leadingDecimal(b.String())
	if num == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseExperience reads the leading integer of an experience label such as
// "13 Years of experience". Unparsable input yields zero.
func ParseExperience(experience string) int {
	s := strings.TrimLeftFunc(experience, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// leadingDecimal returns the longest prefix of s shaped like -?digits[.digits]
// (or -?.digits) that contains at least one digit.
func leadingDecimal(s string) string {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	intDigits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		intDigits++
	}

	end := i
	if i < len(s) && s[i] == '.' {
		j := i + 1
		fracDigits := 0
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
			fracDigits++
		}
		if fracDigits > 0 {
			end = j
		}
	}

	if intDigits == 0 && end == i {
		return ""
	}
	num := s[:end]
	if strings.HasPrefix(num, "-.") {
		num = "-0" + num[1:]
	} else if strings.HasPrefix(num, ".") {
		num = "0" + num
	}
	return num
}
