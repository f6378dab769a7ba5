package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fierogr/findfarewells-sub000/config"
	"github.com/fierogr/findfarewells-sub000/cron"
	"github.com/fierogr/findfarewells-sub000/database"
	"github.com/fierogr/findfarewells-sub000/database/repository"
	"github.com/fierogr/findfarewells-sub000/handlers"
	"github.com/fierogr/findfarewells-sub000/middleware"
	"github.com/fierogr/findfarewells-sub000/routes"
	"github.com/fierogr/findfarewells-sub000/services/admin"
	"github.com/fierogr/findfarewells-sub000/services/mailer"
	"github.com/fierogr/findfarewells-sub000/services/partner"
	"github.com/fierogr/findfarewells-sub000/services/registration"
	"github.com/fierogr/findfarewells-sub000/services/search"
	"github.com/fierogr/findfarewells-sub000/services/storage"
	"github.com/fierogr/findfarewells-sub000/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	partnerRepo := repository.NewMongoPartnerRepo()
	registrationRepo := repository.NewMongoRegistrationRepo()
	searchLogRepo := repository.NewMongoSearchLogRepo()
	settingsRepo := repository.NewMongoSettingsRepo()

	// background mail worker and its queue client.
	smtpMailer := mailer.NewSMTPMailer()
	cron.InitMailWorker(smtpMailer, settingsRepo)
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	// services.
	searchService := &search.DefaultSearchService{
		PartnerRepo: partnerRepo,
		LogRepo:     searchLogRepo,
		CacheClient: utils.GetCacheClient(),
		Geo:         search.NewStaticGeocoder(),
		Logger:      logger,
	}
	partnerService := &partner.DefaultPartnerService{
		Repo:    partnerRepo,
		LogRepo: searchLogRepo,
		Logger:  logger,
	}
	registrationService := &registration.DefaultRegistrationService{
		Repo:        registrationRepo,
		PartnerRepo: partnerRepo,
		QueueClient: queueClient,
		Logger:      logger,
	}
	adminService := &admin.DefaultAdminService{
		Settings: settingsRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Search:       handlers.NewSearchHandler(searchService),
		Partner:      handlers.NewPartnerHandler(partnerService),
		Registration: handlers.NewRegistrationHandler(registrationService),
		Admin:        handlers.NewAdminHandler(adminService, searchLogRepo),
		CSV:          handlers.NewCSVHandler(partnerService),
	}

	// Partner image uploads are optional; skip when Cloudinary is unset.
	if storageSvc, err := storage.NewStorageService(); err != nil {
		logger.Warn("storage service disabled", zap.Error(err))
	} else {
		handlerBundle.Storage = handlers.NewStorageHandler(storageSvc)
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
}
