package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sayantonsadhu/portfolio-be/internal/api"
	"github.com/sayantonsadhu/portfolio-be/internal/auth"
	"github.com/sayantonsadhu/portfolio-be/internal/config"
	"github.com/sayantonsadhu/portfolio-be/internal/database"
	"github.com/sayantonsadhu/portfolio-be/internal/feeds"
	"github.com/sayantonsadhu/portfolio-be/internal/logger"
	"github.com/sayantonsadhu/portfolio-be/internal/metrics"
	"github.com/sayantonsadhu/portfolio-be/internal/monitoring"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
	"github.com/sayantonsadhu/portfolio-be/internal/websocket"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	auth.Init(cfg.JWTSecret)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up the upload store
	store, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize upload store")
	}

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(db, hub)
	credentialService := services.NewCredentialService(db, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword)
	settingsService := services.NewSettingsService(db)
	carouselService := services.NewCarouselService(db)
	weddingService := services.NewWeddingService(db)
	filmService := services.NewFilmService(db)
	aboutService := services.NewAboutService(db)
	packageService := services.NewPackageService(db)
	inquiryService := services.NewInquiryService(db)
	sectionService := services.NewSectionService(db)
	socialService := services.NewSocialService(db)
	facebookService := services.NewFacebookService(db)
	youtubeService := services.NewYouTubeService(db)
	dashboardService := services.NewDashboardService(db, store)

	// Provision the default admin account so the first login works
	if _, err := credentialService.GetOrCreate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to provision admin credentials")
	}

	// Set up the external feed clients and cache
	facebookClient := feeds.NewFacebookClient()
	youtubeClient := feeds.NewYouTubeClient()
	feedService := feeds.NewService(facebookService, youtubeService, facebookClient, youtubeClient, cfg.FeedCacheTTL)

	// Set up and run the background feed refresher
	refresher, err := monitoring.NewFeedRefresher(feedService, cfg.FeedRefreshSchedule)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid feed refresh schedule")
	}
	go refresher.Run()

	// Set up router
	m := metrics.New()
	router := api.NewRouter(api.Dependencies{
		Hub:     hub,
		Store:   store,
		Metrics: m,

		CredentialService: credentialService,
		SettingsService:   settingsService,
		CarouselService:   carouselService,
		WeddingService:    weddingService,
		FilmService:       filmService,
		AboutService:      aboutService,
		PackageService:    packageService,
		InquiryService:    inquiryService,
		SectionService:    sectionService,
		SocialService:     socialService,
		FacebookService:   facebookService,
		YouTubeService:    youtubeService,
		EventService:      eventService,
		DashboardService:  dashboardService,

		FeedService:    feedService,
		FacebookClient: facebookClient,

		CORSOrigins: cfg.CORSOrigins,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	refresher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
