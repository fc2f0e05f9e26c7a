package textmatch

import "strings"

// DefaultMinTokenLength is the shortest token kept by Tokenize when the
// caller does not specify a minimum.
const DefaultMinTokenLength = 2

// stopWords is a closed list of English filler words dropped during
// tokenization. It is a tuning constant, not an exhaustive set.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "but": {}, "by": {}, "for": {}, "from": {}, "has": {},
	"have": {}, "in": {}, "is": {}, "it": {}, "its": {}, "of": {},
	"on": {}, "or": {}, "the": {}, "to": {}, "was": {}, "were": {},
	"will": {}, "with": {},
}

// Normalize lowercases s, replaces every character outside [a-z0-9] and
// whitespace with a separator, and collapses runs of whitespace into a
// single space. It is idempotent and never fails on degenerate input.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes s and splits it into keyword tokens, dropping
// tokens shorter than minLen and tokens in the stop-word list. Token
// order follows first occurrence; duplicates are kept. A minLen of zero
// or less falls back to DefaultMinTokenLength.
func Tokenize(s string, minLen int) []string {
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}

	fields := strings.Fields(Normalize(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minLen {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}

	return tokens
}
