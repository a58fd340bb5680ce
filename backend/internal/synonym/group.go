package synonym

import (
	"sort"
	"strings"
)

// Group is the resolved view of one word: the word plus its synonym set.
// It is never exposed for mutation once returned by a Store.
type Group struct {
	word     string
	key      string
	synonyms map[string]string // canonical key -> display form
}

// NewGroup creates an empty group for word. A blank word is rejected.
func NewGroup(word string) (*Group, error) {
	if IsBlank(word) {
		return nil, blankWordError()
	}
	return &Group{
		word:     strings.TrimSpace(word),
		key:      Canonical(word),
		synonyms: make(map[string]string),
	}, nil
}

// add inserts candidate into the set. Blank candidates, the group's own word
// and canonical duplicates are ignored; the return value reports whether the
// set grew.
func (g *Group) add(candidate string) bool {
	if IsBlank(candidate) {
		return false
	}
	key := Canonical(candidate)
	if key == g.key {
		return false
	}
	if _, ok := g.synonyms[key]; ok {
		return false
	}
	g.synonyms[key] = strings.TrimSpace(candidate)
	return true
}

// Word returns the display form of the group's word.
func (g *Group) Word() string {
	return g.word
}

// Synonyms returns the display forms of the synonyms ordered by canonical key.
func (g *Group) Synonyms() []string {
	keys := make([]string, 0, len(g.synonyms))
	for k := range g.synonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = g.synonyms[k]
	}
	return out
}

// Contains reports whether word is in the synonym set.
func (g *Group) Contains(word string) bool {
	_, ok := g.synonyms[Canonical(word)]
	return ok
}

func (g *Group) Len() int {
	return len(g.synonyms)
}

func (g *Group) IsEmpty() bool {
	return len(g.synonyms) == 0
}
