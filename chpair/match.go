package main

import (
	"sort"
	"strings"
)

// keyContains reports whether the key contains the pattern, ignoring case
func keyContains(key, pattern string) bool {
	return strings.Contains(strings.ToLower(key), strings.ToLower(pattern))
}

// filterKeys returns the keys containing the pattern
func filterKeys(keys []string, pattern string) []string {
	var matches []string

	for _, key := range keys {
		if keyContains(key, pattern) {
			matches = append(matches, key)
		}
	}

	return matches
}

// matchingKeys returns the sorted set of index keys containing the pattern
func (idx keyIndex) matchingKeys(pattern string) []string {
	var keys []string

	for key := range idx {
		if keyContains(key, pattern) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	return keys
}

// chooseKeys returns the keys the action should operate on. With fuzzy
// matching the key is treated as a pattern and every matching key is
// chosen. If there is nothing to operate on this is reported and the
// returned flag is false.
func (prog *prog) chooseKeys(idx keyIndex, key string) ([]string, bool) {
	if prog.fuzzy {
		keys := idx.matchingKeys(key)
		if len(keys) == 0 {
			prog.twc.Wrap("no keys match \""+key+"\"", 0)
			return nil, false
		}

		return keys, true
	}

	if _, ok := idx[key]; !ok {
		prog.twc.Wrap("key \""+key+"\" not found", 0)
		return nil, false
	}

	return []string{key}, true
}
