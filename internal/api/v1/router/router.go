package router

import (
	"net/http"

	_ "amozeshgah/docs"
	"amozeshgah/internal/api/v1/dto"
	"amozeshgah/internal/api/v1/handler"
	"amozeshgah/internal/config"
	"amozeshgah/internal/database"
	"amozeshgah/internal/middleware"
	"amozeshgah/internal/pubsub"
	"amozeshgah/internal/repository"
	"amozeshgah/internal/service"
	"amozeshgah/internal/storage"
	"amozeshgah/internal/web"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/swaggo/swag"
)

// Deps are the process-wide resources owned by main.
type Deps struct {
	DB        database.Provider
	Images    storage.ImageSigner
	Publisher pubsub.Publisher
}

func New(cfg *config.Config, logger zerolog.Logger, deps Deps) http.Handler {
	if deps.Images == nil {
		deps.Images = storage.PassthroughSigner{}
	}
	if deps.Publisher == nil {
		deps.Publisher = pubsub.NopPublisher{}
	}

	// 1. Validator
	validate := dto.NewValidator()

	// 2. Repositories & services & handlers
	userRepo := repository.NewUserRepo(deps.DB)
	courseRepo := repository.NewCourseRepo(deps.DB)
	purchaseRepo := repository.NewPurchaseRepo(deps.DB)

	topic := ""
	if cfg.PubSubEnabled() {
		topic = cfg.PubSubPurchaseTopic
	}

	courseSvc := service.NewCourseService(courseRepo, deps.Images, logger)
	userSvc := service.NewUserService(userRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, deps.Publisher, topic, logger)
	studentSvc := service.NewStudentService(purchaseRepo)

	courseHandler := handler.NewCourseHandler(courseSvc, logger)
	userHandler := handler.NewUserHandler(userSvc, logger)
	purchaseHandler := handler.NewPurchaseHandler(purchaseSvc, validate, logger)
	studentHandler := handler.NewStudentHandler(studentSvc, logger)
	pages := web.NewHandler(courseSvc, userSvc, studentSvc, logger)

	// 3. Muxes
	mux := http.NewServeMux()

	apiMux := http.NewServeMux()
	courseHandler.RegisterRoutes(apiMux)
	userHandler.RegisterRoutes(apiMux)
	purchaseHandler.RegisterRoutes(apiMux)
	studentHandler.RegisterRoutes(apiMux)
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	pages.RegisterRoutes(mux)

	mux.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to read swagger doc")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// 4. CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	logger.Info().Msg("Router initialized")

	return middleware.LoggerMiddleware(logger)(middleware.RecoveryMiddleware(logger)(c.Handler(mux)))
}
