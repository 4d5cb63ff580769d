// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"travelbuddy/internal/geo"
	"travelbuddy/internal/http/handlers"
	"travelbuddy/internal/http/middleware"
	"travelbuddy/internal/infra"
	"travelbuddy/internal/modules/assist"
	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/itinerary"
	"travelbuddy/internal/modules/packing"
	"travelbuddy/internal/modules/recommend"
)

type RouterDeps struct {
	Catalog   *catalog.Service
	Recommend *recommend.Service
	Itinerary *itinerary.Service
	Packing   *packing.Service
	Assist    *assist.Service

	// Places is optional; the attractions endpoint degrades to catalog data
	// without it.
	Places *geo.PlacesService

	Log *logrus.Logger
	// Redis backs the AI chat rate limiter; nil disables limiting.
	Redis *redis.Client
	// Verifier enables Firebase auth when set; nil leaves routes open and
	// callers identify themselves in the request body.
	Verifier        infra.TokenVerifier
	AIChatPerMinute int
}

func NewRouter(deps RouterDeps) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", middleware.MetricsExposer())

	api := r.Group("/api")
	if deps.Verifier != nil {
		api.Use(middleware.Auth(deps.Verifier))
	}

	destHandler := handlers.NewDestinationHandler(deps.Catalog, deps.Places)
	api.GET("/destinations", destHandler.List)
	api.GET("/destinations/:id", destHandler.Get)
	api.GET("/destinations/:id/activities", destHandler.Activities)
	api.GET("/destinations/:id/attractions", destHandler.Attractions)

	recHandler := handlers.NewRecommendHandler(deps.Recommend)
	api.POST("/recommendations/destinations", recHandler.Destinations)
	api.POST("/recommendations/dates", recHandler.Dates)

	itinHandler := handlers.NewItineraryHandler(deps.Itinerary)
	api.POST("/itineraries", itinHandler.Create)
	api.GET("/itineraries", itinHandler.List)
	api.GET("/itineraries/:id", itinHandler.Get)
	api.POST("/itineraries/:id/confirm", itinHandler.Confirm)
	api.POST("/itineraries/:id/cancel", itinHandler.Cancel)
	api.POST("/itineraries/:id/complete", itinHandler.Complete)

	packHandler := handlers.NewPackingHandler(deps.Packing)
	api.POST("/packing", packHandler.Suggest)

	aiHandler := handlers.NewAIHandler(deps.Assist)
	chatLimiter := middleware.RateLimit(deps.Redis, "ai_chat", deps.AIChatPerMinute, time.Minute, func(c *gin.Context) string {
		if uid := middleware.CallerUID(c); uid != "" {
			return uid
		}
		return c.ClientIP()
	})
	api.POST("/ai/chat", chatLimiter, aiHandler.Chat)

	return r
}
