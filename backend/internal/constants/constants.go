package constants

// HTTP routes
const (
	RouteHealth   = "/health"
	RouteMetrics  = "/metrics"
	RouteAPI      = "/api"
	RouteSynonyms = "/synonyms"
	RouteStats    = "/stats"
)

// Request parameters
const (
	// ParamWord is the path parameter holding the queried word
	ParamWord = "word"
	// QueryTransitive toggles transitive expansion for a single lookup
	QueryTransitive = "transitive"
	// HeaderRequestID carries the request identifier in both directions
	HeaderRequestID = "X-Request-ID"
)

// Context keys
const (
	ContextKeyRequestID = "request_id"
)
