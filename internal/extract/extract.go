// Package extract detects price-lookup intent in free-form user text and
// derives a candidate ticker symbol from it.
package extract

import "strings"

// ExchangeSuffix marks every derived ticker as a Stock Exchange of
// Thailand listing. No registry lookup happens; the suffix is appended
// unconditionally.
const ExchangeSuffix = ".BK"

// triggers are evaluated in declared order; the first phrase found as a
// substring of the lower-cased query wins and later entries are never
// considered.
var triggers = []string{
	"price of",
	"current price of",
	"stock price of",
	"quote for",
	"value of",
}

// Triggers returns a copy of the trigger phrase list in evaluation order.
func Triggers() []string {
	out := make([]string, len(triggers))
	copy(out, triggers)
	return out
}

// Symbol scans query for a trigger phrase and, on a hit, returns the first
// whitespace-delimited token following the first occurrence of that phrase,
// upper-cased and suffixed with ExchangeSuffix. The second return is false
// when no trigger matches or nothing follows the trigger.
//
// Punctuation stuck to the token is kept as part of the symbol. That is a
// known limitation of the heuristic, not something this package tries to
// repair.
func Symbol(query string) (string, bool) {
	lower := strings.ToLower(query)
	for _, trigger := range triggers {
		idx := strings.Index(lower, trigger)
		if idx < 0 {
			continue
		}
		rest := strings.TrimSpace(lower[idx+len(trigger):])
		if rest == "" {
			return "", false
		}
		token := strings.Fields(rest)[0]
		return strings.ToUpper(token) + ExchangeSuffix, true
	}
	return "", false
}
