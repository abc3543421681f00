// Package validation holds the field validators and the first-failure-wins
// aggregator for payment input. Validators are pure predicates: they reject
// empty or malformed input by returning false and never panic.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/R0PPER/Paymento/internal/card"
	"github.com/R0PPER/Paymento/internal/models"
)

var (
	cardNumberRegex = regexp.MustCompile(`^\d{13,19}$`)
	expiryRegex     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	digitsRegex     = regexp.MustCompile(`^[0-9]+$`)
)

// CardNumber reports whether s is a plausible card number: digits only,
// 13 to 19 characters.
func CardNumber(s string) bool {
	return cardNumberRegex.MatchString(s)
}

// ExpiryDate reports whether s is a valid MM/YY expiry: month 1-12, year
// between the current two-digit year and ten years out, and not already
// past within the current year. Years are compared inside that bounded
// window only; there is no century disambiguation beyond it.
func ExpiryDate(s string) bool {
	return expiryValidAt(s, time.Now())
}

func expiryValidAt(s string, now time.Time) bool {
	if !expiryRegex.MatchString(s) {
		return false
	}
	month, _ := strconv.Atoi(s[:2])
	year, _ := strconv.Atoi(s[3:])

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if month < 1 || month > 12 {
		return false
	}
	if year < currentYear || year > currentYear+10 {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// CVV reports whether code is a valid security code for the network the
// card number classifies into: 3 digits for Visa, MasterCard and Discover,
// 4 digits for American Express.
func CVV(code, cardNumber string) bool {
	if code == "" || !digitsRegex.MatchString(code) {
		return false
	}
	switch card.Classify(cardNumber) {
	case models.NetworkVisa, models.NetworkMasterCard, models.NetworkDiscover:
		return len(code) == 3
	case models.NetworkAmex:
		return len(code) == 4
	default:
		return false
	}
}

// Amount reports whether value parses to a number strictly greater than
// zero.
func Amount(value string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	return err == nil && f > 0
}
