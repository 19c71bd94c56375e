package bible

import (
	"fmt"
	"strings"
)

// MaxPrefixLen bounds the book menu input. The longest key is 5 runes.
const MaxPrefixLen = 6

var (
	prefixes [Count]string
	byPrefix map[string]Book
)

func init() {
	var err error
	prefixes, byPrefix, err = buildPrefixes(normalizedNames())
	if err != nil {
		panic(err)
	}
}

// normalize lowercases a display name and drops spaces, so "Song of Solomon"
// is typed as "songofsolomon" and "1 Samuel" as "1samuel".
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

func normalizedNames() []string {
	names := make([]string, Count)
	for i, e := range catalog {
		names[i] = normalize(e.name)
	}
	return names
}

// buildPrefixes assigns every name the shortest leading substring no other
// name starts with, then checks the table is unambiguous.
func buildPrefixes(names []string) ([Count]string, map[string]Book, error) {
	var keys [Count]string
	if len(names) != Count {
		return keys, nil, fmt.Errorf("prefix table: expected %d names, got %d", Count, len(names))
	}

	for i, name := range names {
		for l := 1; l <= len(name); l++ {
			candidate := name[:l]
			if !sharedPrefix(names, i, candidate) {
				keys[i] = candidate
				break
			}
		}
		if keys[i] == "" {
			return keys, nil, fmt.Errorf("prefix table: %q has no unique prefix", name)
		}
	}

	lookup := make(map[string]Book, Count)
	for i, key := range keys {
		if prev, dup := lookup[key]; dup {
			return keys, nil, fmt.Errorf("prefix table: %q maps to both %s and %s", key, prev, Book{uint8(i)})
		}
		lookup[key] = Book{uint8(i)}
	}
	for i, a := range keys {
		for j, b := range keys {
			if i != j && strings.HasPrefix(b, a) {
				return keys, nil, fmt.Errorf("prefix table: key %q is a prefix of %q", a, b)
			}
		}
	}
	return keys, lookup, nil
}

func sharedPrefix(names []string, self int, prefix string) bool {
	for j, other := range names {
		if j != self && strings.HasPrefix(other, prefix) {
			return true
		}
	}
	return false
}

// Prefix returns the abbreviation that selects b in the book menu.
func (b Book) Prefix() string { return prefixes[b.idx] }

// Resolve returns the book whose abbreviation equals input exactly. Partial
// or unknown input resolves to nothing.
func Resolve(input string) (Book, bool) {
	b, ok := byPrefix[input]
	return b, ok
}
