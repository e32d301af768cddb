package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/salaspot/rooms-service/internal/app"
	"github.com/salaspot/rooms-service/internal/auth"
	"github.com/salaspot/rooms-service/internal/config"
	"github.com/salaspot/rooms-service/internal/controllers"
	"github.com/salaspot/rooms-service/internal/models"
	"github.com/salaspot/rooms-service/internal/repositories"
	"github.com/salaspot/rooms-service/internal/routes"
	"github.com/salaspot/rooms-service/internal/services"
	"github.com/salaspot/rooms-service/internal/storage"
	"github.com/salaspot/rooms-service/internal/token"
	"github.com/salaspot/rooms-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	store, err := storage.NewLocalStore(cfg.UploadDir, routes.Uploads, "logos", "banners", "rooms", "users")
	if err != nil {
		utils.Logger.Fatal("Failed to initialize upload storage:", err)
	}

	//----------------------------------------------------------------------
	// Repositories
	//----------------------------------------------------------------------
	userRepo := repositories.NewUserRepository(application.DB)
	companyRepo := repositories.NewCompanyRepository(application.DB)
	roomRepo := repositories.NewRoomRepository(application.DB)
	validationRepo := repositories.NewCompanyValidationRepository(application.DB)

	//----------------------------------------------------------------------
	// Auth plumbing: token codec, revocation list, guard
	//----------------------------------------------------------------------
	codec := token.NewCodec(cfg.JWTSecret, cfg.VerifySignature, nil)
	revoked := auth.NewRevocationList()
	guard := auth.NewGuard(codec, userRepo, revoked, nil)

	//----------------------------------------------------------------------
	// Services
	//----------------------------------------------------------------------
	authService := services.NewAuthService(userRepo, codec, guard, nil)
	userService := services.NewUserService(userRepo)
	companyService := services.NewCompanyService(companyRepo, roomRepo, validationRepo, nil)
	roomService := services.NewRoomService(roomRepo, companyRepo)

	//----------------------------------------------------------------------
	// Controllers
	//----------------------------------------------------------------------
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(userService, store)
	companyController := controllers.NewCompanyController(companyService, store)
	roomController := controllers.NewRoomController(roomService, store)
	healthController := controllers.NewHealthController(application)

	//----------------------------------------------------------------------
	// Router & Endpoints
	//----------------------------------------------------------------------
	router := mux.NewRouter()

	// Health
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods("GET")

	// Public auth endpoints
	router.HandleFunc(routes.AuthRegister, authController.Register).Methods("POST")
	router.HandleFunc(routes.AuthLogin, authController.Login).Methods("POST")

	// Public catalog reads
	router.HandleFunc(routes.CompaniesBase, companyController.List).Methods("GET")
	router.HandleFunc(routes.RoomsBase, roomController.List).Methods("GET")
	router.HandleFunc(routes.RoomsSearch, roomController.Search).Methods("POST")

	// Protected endpoints require a valid token
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(guard.Middleware(""))

	protected.HandleFunc("/auth/logout", authController.Logout).Methods("POST")
	protected.HandleFunc("/auth/refresh", authController.Refresh).Methods("POST")
	protected.HandleFunc("/auth/me", authController.Me).Methods("GET")
	protected.HandleFunc("/auth/profile", userController.Profile).Methods("GET")
	protected.HandleFunc("/auth/profile/photo", userController.UploadPhoto).Methods("POST")

	// /companies/mine must register before /companies/{id}
	protected.HandleFunc("/companies/mine", companyController.Mine).Methods("GET")
	protected.HandleFunc("/companies", companyController.Create).Methods("POST")
	protected.HandleFunc("/companies/{id}", companyController.Get).Methods("GET")
	protected.HandleFunc("/companies/{id}", companyController.Update).Methods("PUT")
	protected.HandleFunc("/companies/{id}", companyController.Delete).Methods("DELETE")
	protected.HandleFunc("/companies/{id}/rooms", roomController.ListByCompany).Methods("GET")
	protected.HandleFunc("/companies/{id}/logo", companyController.UploadImage("logo")).Methods("POST")
	protected.HandleFunc("/companies/{id}/banner", companyController.UploadImage("banner")).Methods("POST")

	protected.HandleFunc("/rooms", roomController.Create).Methods("POST")
	protected.HandleFunc("/rooms/{id}", roomController.Get).Methods("GET")
	protected.HandleFunc("/rooms/{id}", roomController.Update).Methods("PUT")
	protected.HandleFunc("/rooms/{id}", roomController.Delete).Methods("DELETE")
	protected.HandleFunc("/rooms/{id}/image", roomController.UploadImage).Methods("POST")

	// Admin endpoints
	admin := router.PathPrefix("/api/v1").Subrouter()
	admin.Use(guard.Middleware(models.RoleAdmin))

	admin.HandleFunc("/users", userController.List).Methods("GET")
	admin.HandleFunc("/users/{id}", userController.Get).Methods("GET")
	admin.HandleFunc("/companies/{id}/status", companyController.ChangeStatus).Methods("PUT")

	// Static serving of uploaded images
	router.PathPrefix(routes.Uploads).Handler(
		http.StripPrefix(routes.Uploads, http.FileServer(http.Dir(store.Dir()))),
	)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Failed to start server:", err)
	}
}
