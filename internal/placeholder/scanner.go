package placeholder

import "regexp"

// tokenPattern is the documented placeholder grammar: uppercase letters,
// digits and underscores inside square brackets. Scanning and category
// dispatch both key off this exact pattern.
var tokenPattern = regexp.MustCompile(`\[([A-Z0-9_]+)\]`)

// ScanTokens returns the ordered list of distinct placeholder tokens in the
// template, brackets stripped. A template with no tokens yields nil, which
// the resolver treats as the no-op fast path.
func ScanTokens(template string) []string {
	matches := tokenPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		tokens = append(tokens, name)
	}
	return tokens
}

// bracketed re-adds the delimiters for literal substitution.
func bracketed(token string) string {
	return "[" + token + "]"
}
