// README: Entry point; loads config, wires services, starts HTTP server and background schedulers.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/config"
	"travelbuddy/internal/geo"
	httptransport "travelbuddy/internal/http"
	"travelbuddy/internal/infra"
	"travelbuddy/internal/modules/aiusage"
	"travelbuddy/internal/modules/assist"
	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/itinerary"
	"travelbuddy/internal/modules/packing"
	"travelbuddy/internal/modules/recommend"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer func() { _ = redisClient.Close() }()

	var verifier infra.TokenVerifier
	if cfg.Firebase.ProjectID != "" {
		verifier, err = infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
	} else {
		log.Warn("TB_FIREBASE_PROJECT_ID not set, running without auth")
	}

	distanceSvc, err := geo.NewDistanceService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}
	var placesSvc *geo.PlacesService
	if cfg.Maps.APIKey != "" {
		placesSvc, err = geo.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
	}

	catalogSvc := catalog.NewService(catalog.NewStore())
	recommendSvc := recommend.NewService(catalogSvc, distanceSvc, cfg.Planner.AccommodationBudgetShare, nil)

	generator := itinerary.NewGenerator(recommendSvc, nil)
	itinerarySvc := itinerary.NewService(
		itinerary.NewPGStore(dbPool),
		generator,
		time.Duration(cfg.Planner.DraftTTLHours)*time.Hour,
		log,
	)

	usageSvc := aiusage.NewService(aiusage.NewStore(dbPool, cfg.AI.MonthlyTokens))

	var assistant ai.TravelAssistant
	var polisher packing.Polisher
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiAssistant(ctx, cfg.AI.GeminiKey, catalogSvc)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		assistant = gemini
		polisher = gemini
	} else {
		log.Warn("GEMINI_API_KEY not set, AI chat disabled and packing lists stay rule-based")
	}

	packingSvc := packing.NewService(catalogSvc, polisher, log)
	assistSvc := assist.NewService(usageSvc, assistant)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Catalog:         catalogSvc,
		Recommend:       recommendSvc,
		Itinerary:       itinerarySvc,
		Packing:         packingSvc,
		Assist:          assistSvc,
		Places:          placesSvc,
		Log:             log,
		Redis:           redisClient,
		Verifier:        verifier,
		AIChatPerMinute: cfg.RateLimit.AIChatPerMinute,
	})

	go itinerarySvc.RunExpirySweeper(ctx, time.Duration(cfg.Planner.ExpireTickSeconds)*time.Second)

	server := httptransport.NewServer(cfg.HTTP.Addr, handler)
	log.WithField("addr", cfg.HTTP.Addr).Info("listening")
	if err := server.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
