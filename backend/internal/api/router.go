// Package api exposes the synonym service over HTTP.
package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"synonym-search/backend/internal/constants"
	"synonym-search/backend/internal/services"
	"synonym-search/backend/internal/synonym"
	"synonym-search/backend/pkg/config"
)

// SynonymService is the application surface the handlers call into
type SynonymService interface {
	GetSynonyms(ctx context.Context, word string, transitive bool) (*services.SynonymsResult, error)
	SaveSynonyms(ctx context.Context, req services.SaveRequest) error
	Stats(ctx context.Context) (synonym.Stats, error)
}

// NewRouter builds the gin engine with middleware and routes
func NewRouter(cfg *config.Config, svc SynonymService, log *zap.Logger) *gin.Engine {
	registerValidators()

	router := gin.New()
	router.Use(requestID())
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())
	router.Use(cors(cfg.CORSAllowOrigin))
	router.Use(timeout(cfg.RequestTimeout))

	h := &handler{
		svc:               svc,
		log:               log,
		transitiveDefault: cfg.TransitiveLookup,
	}

	router.GET(constants.RouteHealth, h.health)
	if cfg.MetricsEnabled {
		router.GET(constants.RouteMetrics, gin.WrapH(promhttp.Handler()))
	}

	api := router.Group(constants.RouteAPI)
	{
		api.GET(constants.RouteSynonyms+"/:"+constants.ParamWord, h.getSynonyms)
		api.POST(constants.RouteSynonyms, h.saveSynonyms)
		api.GET(constants.RouteStats, h.stats)
	}

	return router
}
