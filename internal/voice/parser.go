package voice

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent is one (quantity, name) pair pulled from a transcript,
// before it has been resolved against the menu.
type Intent struct {
	Quantity int    `json:"quantity"`
	RawName  string `json:"raw_name"`
}

var (
	clauseSplit = regexp.MustCompile(`\s+and\s+|,\s*`)
	numericLead = regexp.MustCompile(`^(\d+)\s+(.+)$`)
	numberLead  = regexp.MustCompile(`^(one|two|three|four|five|six|seven|eight|nine|ten|a|an)\s+(.+)$`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"a": 1, "an": 1,
}

// ParseOrder turns a transcript like "2 dosas and 1 tea" into intents,
// preserving left-to-right clause order. A clause with no leading count
// defaults to one. Parsing never fails; clauses it cannot read become
// quantity-1 intents with the clause as the name.
//
// Names lose a single trailing "s" ("dosas" -> "dosa"). Irregular
// plurals and names that genuinely end in "s" are known casualties of
// that heuristic.
func ParseOrder(transcript string) []Intent {
	var intents []Intent

	for _, clause := range clauseSplit.Split(strings.ToLower(transcript), -1) {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}

		if m := numericLead.FindStringSubmatch(clause); m != nil {
			quantity, _ := strconv.Atoi(m[1])
			intents = append(intents, Intent{
				Quantity: quantity,
				RawName:  singularize(m[2]),
			})
			continue
		}

		if m := numberLead.FindStringSubmatch(clause); m != nil {
			intents = append(intents, Intent{
				Quantity: numberWords[m[1]],
				RawName:  singularize(m[2]),
			})
			continue
		}

		intents = append(intents, Intent{
			Quantity: 1,
			RawName:  singularize(clause),
		})
	}

	return intents
}

func singularize(name string) string {
	return strings.TrimSuffix(name, "s")
}
