// Package card classifies card numbers into payment networks using length
// and numeric prefix ranges.
package card

import (
	"strconv"
	"strings"

	"github.com/R0PPER/Paymento/internal/models"
)

// Classify maps a raw digit string to its card network. Rules are checked
// in precedence order and the first match wins. It is a total function:
// empty or malformed input falls through to NetworkUnknown.
func Classify(number string) models.CardNetwork {
	length := len(number)
	firstTwo := numericPrefix(number, 2)
	firstFour := numericPrefix(number, 4)

	switch {
	case length >= 13 && length <= 19 && strings.HasPrefix(number, "4"):
		return models.NetworkVisa
	case length == 16 && ((firstTwo >= 51 && firstTwo <= 55) || (firstFour >= 2221 && firstFour <= 2720)):
		return models.NetworkMasterCard
	case length == 15 && (firstTwo == 34 || firstTwo == 37):
		return models.NetworkAmex
	case length >= 16 && length <= 19 && (firstTwo == 65 || firstFour == 6011):
		return models.NetworkDiscover
	default:
		return models.NetworkUnknown
	}
}

// numericPrefix parses the first n characters as an integer. It returns -1
// when the string is shorter than n or the prefix is not numeric, which
// matches none of the classification ranges.
func numericPrefix(number string, n int) int {
	if len(number) < n {
		return -1
	}
	v, err := strconv.Atoi(number[:n])
	if err != nil {
		return -1
	}
	return v
}
