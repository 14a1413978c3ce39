// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// NormalizePhone strips spaces, dashes and brackets from a phone number and
// reports whether the result is dialable (optional + followed by 7-15
// digits).
func NormalizePhone(phone string) (string, bool) {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return cleaned, phonePattern.MatchString(cleaned)
}
