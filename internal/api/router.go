package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sayantonsadhu/portfolio-be/internal/api/handlers"
	"github.com/sayantonsadhu/portfolio-be/internal/auth"
	"github.com/sayantonsadhu/portfolio-be/internal/feeds"
	"github.com/sayantonsadhu/portfolio-be/internal/metrics"
	"github.com/sayantonsadhu/portfolio-be/internal/services"
	"github.com/sayantonsadhu/portfolio-be/internal/upload"
	"github.com/sayantonsadhu/portfolio-be/internal/websocket"
)

// Dependencies carries everything the router needs to build its handlers.
type Dependencies struct {
	Hub     *websocket.Hub
	Store   *upload.Store
	Metrics *metrics.Metrics

	CredentialService services.CredentialServiceProvider
	SettingsService   services.SettingsServiceProvider
	CarouselService   services.CarouselServiceProvider
	WeddingService    services.WeddingServiceProvider
	FilmService       services.FilmServiceProvider
	AboutService      services.AboutServiceProvider
	PackageService    services.PackageServiceProvider
	InquiryService    services.InquiryServiceProvider
	SectionService    services.SectionServiceProvider
	SocialService     services.SocialServiceProvider
	FacebookService   services.FacebookServiceProvider
	YouTubeService    services.YouTubeServiceProvider
	EventService      services.EventServiceProvider
	DashboardService  services.DashboardServiceProvider

	FeedService    *feeds.Service
	FacebookClient *feeds.FacebookClient

	CORSOrigins []string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware())

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.CredentialService, deps.EventService, deps.Metrics)
	settingsHandler := handlers.NewSettingsHandler(deps.SettingsService, deps.Store, deps.EventService)
	carouselHandler := handlers.NewCarouselHandler(deps.CarouselService, deps.Store, deps.EventService)
	weddingHandler := handlers.NewWeddingHandler(deps.WeddingService, deps.Store, deps.EventService)
	filmHandler := handlers.NewFilmHandler(deps.FilmService, deps.EventService)
	aboutHandler := handlers.NewAboutHandler(deps.AboutService, deps.Store, deps.EventService)
	packageHandler := handlers.NewPackageHandler(deps.PackageService, deps.Store, deps.EventService)
	inquiryHandler := handlers.NewInquiryHandler(deps.InquiryService, deps.EventService)
	sectionHandler := handlers.NewSectionHandler(deps.SectionService, deps.EventService)
	socialHandler := handlers.NewSocialHandler(deps.SocialService, deps.EventService)
	facebookHandler := handlers.NewFacebookHandler(deps.FacebookService, deps.FeedService, deps.FacebookClient, deps.EventService)
	youtubeHandler := handlers.NewYouTubeHandler(deps.YouTubeService, deps.FeedService, deps.EventService)
	uploadHandler := handlers.NewUploadHandler(deps.Store)
	dashboardHandler := handlers.NewDashboardHandler(deps.DashboardService)
	eventHandler := handlers.NewEventHandler(deps.EventService)
	wsHandler := handlers.NewWebSocketHandler(deps.Hub)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message": "Photography Portfolio API"}`))
	})
	r.Handle("/metrics", deps.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// WebSocket connection endpoint for the live activity feed
		r.Get("/ws", wsHandler.Serve)
	})

	r.Route("/api", func(r chi.Router) {
		// Public content endpoints
		r.Get("/settings", settingsHandler.Get)
		r.Get("/hero-carousel", carouselHandler.GetPublic)
		r.Route("/weddings", func(r chi.Router) {
			r.Get("/", weddingHandler.GetAll)
			r.Get("/{id}", weddingHandler.Get)
		})
		r.Get("/films/featured", filmHandler.GetFeatured)
		r.Get("/about", aboutHandler.Get)
		r.Get("/packages", packageHandler.GetAll)
		r.Post("/contact", inquiryHandler.Create)
		r.Get("/sections/{key}", sectionHandler.Get)
		r.Get("/social-media", socialHandler.GetPublic)
		r.Get("/facebook/settings", facebookHandler.GetPublicSettings)
		r.Get("/facebook/posts", facebookHandler.GetPosts)
		r.Get("/youtube/settings", youtubeHandler.GetPublicSettings)
		r.Get("/youtube/videos", youtubeHandler.GetVideos)
		r.Get("/uploads/{filename}", uploadHandler.Serve)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			// Everything below requires a valid bearer token
			r.Group(func(r chi.Router) {
				r.Use(auth.Middleware())

				r.Get("/credentials", authHandler.GetCredentials)
				r.Put("/credentials", authHandler.ChangeCredentials)

				r.Put("/settings", settingsHandler.Update)
				r.Post("/settings/upload-logo", settingsHandler.UploadLogo)

				r.Route("/hero-carousel", func(r chi.Router) {
					r.Get("/", carouselHandler.GetAll)
					r.Post("/", carouselHandler.Create)
					r.Put("/reorder", carouselHandler.Reorder)
					r.Put("/{id}", carouselHandler.Update)
					r.Delete("/{id}", carouselHandler.Delete)
				})

				r.Route("/weddings", func(r chi.Router) {
					r.Post("/", weddingHandler.Create)
					r.Put("/{id}", weddingHandler.Update)
					r.Delete("/{id}", weddingHandler.Delete)
					r.Post("/{id}/images", weddingHandler.AddImages)
					r.Delete("/{id}/images/{index}", weddingHandler.DeleteImage)
				})

				r.Put("/films/featured", filmHandler.UpdateFeatured)
				r.Put("/about", aboutHandler.Update)

				r.Route("/packages", func(r chi.Router) {
					r.Post("/", packageHandler.Create)
					r.Put("/{id}", packageHandler.Update)
					r.Delete("/{id}", packageHandler.Delete)
					r.Post("/{id}/images", packageHandler.AddImages)
				})

				r.Get("/contact", inquiryHandler.GetAll)
				r.Put("/sections/{key}", sectionHandler.Update)

				r.Get("/social-media", socialHandler.GetAdmin)
				r.Put("/social-media", socialHandler.Update)

				r.Route("/facebook", func(r chi.Router) {
					r.Get("/settings", facebookHandler.GetAdminSettings)
					r.Put("/settings", facebookHandler.UpdateSettings)
					r.Post("/test", facebookHandler.TestConnection)
				})

				r.Route("/youtube", func(r chi.Router) {
					r.Get("/settings", youtubeHandler.GetAdminSettings)
					r.Put("/settings", youtubeHandler.UpdateSettings)
				})

				r.Get("/dashboard", dashboardHandler.GetStats)
				r.Get("/events", eventHandler.GetRecent)
			})
		})
	})

	return r
}
