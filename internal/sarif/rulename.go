package sarif

import (
	"strings"
	"unicode"
)

// DeriveRuleName turns a rule identifier into a readable display name:
// runs of characters that are not letters or digits act as token
// separators, each token is title-cased and the tokens are concatenated.
// "no-unused-vars" becomes "NoUnusedVars".
func DeriveRuleName(ruleID string) string {
	var name strings.Builder
	name.Grow(len(ruleID))

	upperNext := true
	for _, r := range ruleID {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upperNext = true
			continue
		}
		if upperNext {
			name.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			name.WriteRune(r)
		}
	}
	return name.String()
}
