package synonym

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	linkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synonym_link_total",
		Help: "Link operations by result (ok or the validation reason)",
	}, []string{"result"})

	lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "synonym_lookup_total",
		Help: "Lookups by mode and whether any synonym was found",
	}, []string{"mode", "found"})

	resolveVisited = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "synonym_resolve_visited_nodes",
		Help:    "Nodes visited by a transitive resolution",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})

	storeWords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "synonym_store_words",
		Help: "Distinct words held by the store",
	})

	storeRelations = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "synonym_store_relations",
		Help: "Undirected synonym relations held by the store",
	})
)

const (
	modeDirect     = "direct"
	modeTransitive = "transitive"
)

func foundLabel(g *Group) string {
	if g.IsEmpty() {
		return "false"
	}
	return "true"
}
