package comps

import "strings"

// CN merges class lists into a single class attribute value.
// Empty entries are skipped, each entry may hold several space separated
// classes, and exact duplicates are dropped keeping the first occurrence.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if seen[part] {
				continue
			}
			seen[part] = true
			classes = append(classes, part)
		}
	}
	return strings.Join(classes, " ")
}

// When returns class if cond holds, otherwise an empty entry that CN skips.
func When(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
