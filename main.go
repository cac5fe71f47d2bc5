// File: praxia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"praxia/config"
	"praxia/database"
	educationRepo "praxia/database/repository/education"
	postRepo "praxia/database/repository/post"
	publicationRepo "praxia/database/repository/publication"
	slotRepo "praxia/database/repository/slot"
	userRepoPkg "praxia/database/repository/user"
	"praxia/handlers"
	"praxia/middleware"
	"praxia/routes"
	"praxia/services/appointment"
	"praxia/services/board"
	"praxia/services/education"
	ai "praxia/services/intelligence"
	"praxia/services/notification"
	"praxia/services/publication"
	"praxia/services/user"
	"praxia/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	db := database.DB()
	slots := slotRepo.NewMongoSlotRepo(db)
	users := userRepoPkg.NewMongoUserRepo(db)
	posts := postRepo.NewMongoPostRepo(db)
	publications := publicationRepo.NewMongoPublicationRepo(db)
	educationStore := educationRepo.NewMongoEducationRepo(db)

	if err := slots.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create slot indexes: %v", err)
	}
	if err := users.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create user indexes: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      users,
		AuthCache: utils.GetAuthCacheClient(),
	}

	appointmentService := &appointment.DefaultAppointmentService{
		Repo:              slots,
		Users:             users,
		Mailer:            notification.NewSMTPMailer(),
		ProfessionalID:    config.AppConfig.ProfessionalID,
		ProfessionalEmail: config.AppConfig.ProfessionalEmail,
	}

	boardService := &board.DefaultBoardService{
		Posts: posts,
		Users: users,
	}

	var generator ai.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		generator = ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	}
	publicationService := &publication.DefaultPublicationService{
		Repo:      publications,
		Users:     users,
		Generator: generator,
	}

	educationService := &education.DefaultEducationService{
		Repo:      educationStore,
		Users:     users,
		ChatCache: education.NewRedisChatCache(utils.GetChatCacheClient()),
	}

	// Identity providers. The first-party JWT resolver is always available;
	// the Firebase resolver requires a configured service account and covers
	// the education portal routes.
	jwtResolver := &middleware.JWTResolver{
		Users: users,
		Cache: utils.GetAuthCacheClient(),
	}
	var primaryResolver middleware.ActorResolver = jwtResolver
	var firebaseResolver middleware.ActorResolver = jwtResolver
	if config.AppConfig.FirebaseServiceAccountKeyPath != "" {
		utils.FirebaseInit()
		fb := &middleware.FirebaseResolver{Auth: utils.FirebaseAuthClient}
		firebaseResolver = fb
		if config.AppConfig.AuthProvider == "firebase" {
			primaryResolver = fb
		}
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:         users,
		PrimaryResolver:  primaryResolver,
		FirebaseResolver: firebaseResolver,
		Appointment:      handlers.NewAppointmentHandler(appointmentService),
		User:             handlers.NewUserHandler(userService),
		Board:            handlers.NewBoardHandler(boardService),
		Publication:      handlers.NewPublicationHandler(publicationService),
		Education:        handlers.NewEducationHandler(educationService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
		"chat":  utils.GetChatCacheClient(),
	}, database.Client())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
