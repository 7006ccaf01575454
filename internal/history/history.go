// Package history maintains the in-memory list of recent searches.
package history

// Max is the number of recent searches kept.
const Max = 5

// Push returns a new list with word at the front. Existing occurrences of
// the exact same string are removed first, and the result is truncated to
// Max entries. The input slice is not modified.
func Push(recent []string, word string) []string {
	out := make([]string, 0, len(recent)+1)
	out = append(out, word)
	for _, w := range recent {
		if w == word {
			continue
		}
		out = append(out, w)
	}
	if len(out) > Max {
		out = out[:Max]
	}
	return out
}
