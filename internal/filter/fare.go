package filter

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CurrencyMarker must appear in scraped text for it to count as a fare.
const CurrencyMarker = "₹"

var (
	ErrEmptyFare        = errors.New("empty fare text")
	ErrNoCurrencyMarker = errors.New("fare text has no currency marker")
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeText applies NFKC, drops invisible format runes (zero-width joiners,
// BOMs) and collapses whitespace runs to a single space.
func NormalizeText(str string) string {
	t := transform.Chain(norm.NFKC, runes.Remove(runes.In(unicode.Cf)))
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(result, " "))
}

// ExtractFare returns the normalized text when it looks like a rupee fare.
func ExtractFare(text string) (string, error) {
	fare := NormalizeText(text)
	if fare == "" {
		return "", ErrEmptyFare
	}
	if !strings.Contains(fare, CurrencyMarker) {
		return "", ErrNoCurrencyMarker
	}
	return fare, nil
}
