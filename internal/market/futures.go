package market

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dataheck/tickload/pkg/tickload"
)

// monthCodes is the fixed CME month-code table. It encodes an exchange
// convention, not a business rule, so it is a static lookup rather than
// computed logic.
var monthCodes = map[byte]time.Month{
	'F': time.January,
	'G': time.February,
	'H': time.March,
	'J': time.April,
	'K': time.May,
	'M': time.June,
	'N': time.July,
	'Q': time.August,
	'U': time.September,
	'V': time.October,
	'X': time.November,
	'Z': time.December,
}

// MonthFromCode maps a CME month-code letter to its delivery month.
// Decompose only calls it with letters already matched against the code set,
// but it still fails explicitly on out-of-set letters so that drift between
// the grammar and this table surfaces as an error instead of a wrong month.
func MonthFromCode(letter byte) (time.Month, error) {
	month, ok := monthCodes[letter]
	if !ok {
		return 0, fmt.Errorf("letter %q is not a CME month code", string(letter))
	}
	return month, nil
}

// CompleteYear expands contract year digits to a four-digit year using the
// fixed pivot rule: two-digit years >= PivotYear land in the 1900s, the rest
// in the 2000s. Years already >= 100 pass through unchanged.
func CompleteYear(year int) int {
	if year >= 100 {
		return year
	}
	if year >= tickload.PivotYear {
		return 1900 + year
	}
	return 2000 + year
}

// Decompose splits a futures symbol such as "@VXJ20" into its contract parts:
// an optional leading '@', an uppercase root, exactly one month-code letter,
// and a run of year digits. It is a structured parse over that fixed grammar,
// not a regular expression.
//
// Filenames are case-folded before the symbol reaches this function, so
// matching happens on the upper-cased form and a matched root is returned
// upper case ("@vxj20" -> "@VX"). When the symbol does not match the grammar,
// ok is false and callers use the whole original symbol as the root with no
// contract date.
func Decompose(symbol string) (info tickload.ContractInfo, ok bool) {
	s := strings.ToUpper(symbol)

	i := 0
	if i < len(s) && s[i] == '@' {
		i++
	}

	letterStart := i
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	letterEnd := i

	// The letter run must cover a non-empty root plus the month code.
	if letterEnd-letterStart < 2 {
		return tickload.ContractInfo{}, false
	}

	digitStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if digitStart == i || i != len(s) {
		return tickload.ContractInfo{}, false
	}

	month, err := MonthFromCode(s[letterEnd-1])
	if err != nil {
		return tickload.ContractInfo{}, false
	}

	year, err := strconv.Atoi(s[digitStart:])
	if err != nil {
		// Unreachable for a pure digit run, but Atoi's error is not ours to ignore.
		return tickload.ContractInfo{}, false
	}

	return tickload.ContractInfo{
		Root:  s[:letterEnd-1],
		Month: month,
		Year:  CompleteYear(year),
	}, true
}
