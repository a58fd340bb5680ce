package synonym

import (
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	apperrors "synonym-search/backend/pkg/errors"
	"synonym-search/backend/pkg/logger"
)

// node is one word in the relation graph
type node struct {
	display   string              // first-inserted spelling, trimmed
	neighbors map[string]struct{} // canonical keys of direct neighbors
}

// Stats summarizes the store contents
type Stats struct {
	Words     int `json:"words"`
	Relations int `json:"relations"`
}

// Store holds the symmetric synonym relation in memory. All methods are safe
// for concurrent use; a single RWMutex guards the whole neighbor map so a
// reader never observes a half-applied Link.
type Store struct {
	mu        sync.RWMutex
	nodes     map[string]*node
	relations int
	logger    *zap.Logger
}

// Option configures a Store
type Option func(*Store)

// WithLogger overrides the logger used by the store
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		nodes:  make(map[string]*node),
		logger: logger.Named("synonym.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Link validates the pair and then makes word and every synonym mutual
// direct neighbors (a clique over the whole group). Existing relations are
// never removed, so replaying the same call leaves the store unchanged.
// On validation failure nothing is written.
func (s *Store) Link(word string, synonyms []string) error {
	if err := Validate(word, synonyms); err != nil {
		if v, ok := apperrors.AsValidation(err); ok {
			linkTotal.WithLabelValues(string(v.Reason)).Inc()
		}
		return err
	}

	members := groupMembers(word, synonyms)

	s.mu.Lock()
	for _, m := range members {
		if _, ok := s.nodes[m.key]; !ok {
			s.nodes[m.key] = &node{display: m.display, neighbors: make(map[string]struct{})}
		}
	}
	added := 0
	for i := 0; i < len(members); i++ {
		a := s.nodes[members[i].key]
		for j := i + 1; j < len(members); j++ {
			if s.connect(a, members[i].key, members[j].key) {
				added++
			}
		}
	}
	s.relations += added
	storeWords.Set(float64(len(s.nodes)))
	storeRelations.Set(float64(s.relations))
	s.mu.Unlock()

	linkTotal.WithLabelValues("ok").Inc()

	s.logger.Debug("Linked synonym group",
		zap.String("word", word),
		zap.Int("members", len(members)),
		zap.Int("new_relations", added),
	)
	return nil
}

// connect adds the undirected edge a-b and reports whether it was new.
// Callers hold the write lock.
func (s *Store) connect(a *node, aKey, bKey string) bool {
	if aKey == bKey {
		return false
	}
	if _, ok := a.neighbors[bKey]; ok {
		return false
	}
	b := s.nodes[bKey]
	a.neighbors[bKey] = struct{}{}
	b.neighbors[aKey] = struct{}{}
	return true
}

// Lookup returns the direct neighbors of word. An unknown word yields an
// empty group, not an error; only a blank word is rejected.
func (s *Store) Lookup(word string) (*Group, error) {
	if IsBlank(word) {
		return nil, blankWordError()
	}
	key := Canonical(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[key]
	if !ok {
		g, _ := NewGroup(word)
		lookupTotal.WithLabelValues(modeDirect, "false").Inc()
		return g, nil
	}

	g, _ := NewGroup(n.display)
	for k := range n.neighbors {
		g.add(s.nodes[k].display)
	}
	lookupTotal.WithLabelValues(modeDirect, foundLabel(g)).Inc()
	return g, nil
}

// ResolveTransitive returns every word reachable from word by following
// synonym relations, excluding word itself. The walk uses an explicit
// worklist and visited set, so cycles terminate and each node is expanded
// once.
func (s *Store) ResolveTransitive(word string) (*Group, error) {
	if IsBlank(word) {
		return nil, blankWordError()
	}
	key := Canonical(word)

	s.mu.RLock()
	defer s.mu.RUnlock()

	start, ok := s.nodes[key]
	if !ok {
		g, _ := NewGroup(word)
		lookupTotal.WithLabelValues(modeTransitive, "false").Inc()
		return g, nil
	}

	g, _ := NewGroup(start.display)
	visited := map[string]struct{}{key: {}}
	stack := []string{key}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for k := range s.nodes[cur].neighbors {
			if _, seen := visited[k]; seen {
				continue
			}
			visited[k] = struct{}{}
			g.add(s.nodes[k].display)
			stack = append(stack, k)
		}
	}

	resolveVisited.Observe(float64(len(visited)))
	lookupTotal.WithLabelValues(modeTransitive, foundLabel(g)).Inc()
	return g, nil
}

// Stats returns the number of words and undirected relations in the store
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{Words: len(s.nodes), Relations: s.relations}
}

// Words returns the display form of every stored word ordered by canonical key
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.nodes))
	for k := range s.nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s.nodes[k].display
	}
	return out
}

type member struct {
	key     string
	display string
}

// groupMembers returns word followed by the synonyms, deduplicated by
// canonical key and keeping the first spelling seen.
func groupMembers(word string, synonyms []string) []member {
	seen := make(map[string]struct{}, len(synonyms)+1)
	out := make([]member, 0, len(synonyms)+1)
	for _, w := range append([]string{word}, synonyms...) {
		key := Canonical(w)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, member{key: key, display: strings.TrimSpace(w)})
	}
	return out
}
