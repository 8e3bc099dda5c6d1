package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/config"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/controllers"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/database"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/logger"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/middleware"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/repository"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/routes"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/sender"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/services"
	"github.com/Mucyo-Papy-Blaise/hong-kong-backend/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Initialize("development")
		logger.Log.Fatal("configuration error", zap.Error(err))
	}
	logger.Initialize(cfg.Env)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(context.Background(), client); err != nil {
			logger.Log.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		logger.Log.Fatal("index creation failed", zap.Error(err))
	}

	var images storage.ImageStore = storage.DisabledStore{}
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3ImageStore(ctx, storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			BaseURL:   cfg.S3BaseURL,
			AccessKey: cfg.AWSKeyID,
			SecretKey: cfg.AWSSecret,
		})
		if err != nil {
			logger.Log.Fatal("s3 setup failed", zap.Error(err))
		}
		images = s3Store
	} else {
		logger.Log.Warn("S3_BUCKET not set, image uploads disabled")
	}

	var mail sender.EmailSender
	if cfg.SMTPHost != "" {
		smtpSender, err := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
		if err != nil {
			logger.Log.Fatal("smtp setup failed", zap.Error(err))
		}
		mail = smtpSender
	} else {
		logger.Log.Warn("SMTP_HOST not set, outbound mail disabled")
		mail = &sender.NoopSender{}
	}

	tokens := services.NewTokenService(cfg.JWTSecret)

	users := repository.NewMongoUserRepository(db)
	products := repository.NewMongoProductRepository(db)
	brands := repository.NewMongoBrandRepository(db)
	lenses := repository.NewMongoLensRepository(db)
	insurance := repository.NewMongoInsuranceRepository(db)
	orders := repository.NewMongoOrderRepository(db)
	appointments := repository.NewMongoAppointmentRepository(db)
	clients := repository.NewMongoClientRepository(db)
	contacts := repository.NewMongoContactRepository(db)

	ctrl := routes.Controllers{
		Auth:         controllers.NewAuthController(users, tokens, images),
		Products:     controllers.NewProductController(products, brands, lenses, images),
		Brands:       controllers.NewBrandController(brands, products, images),
		Lenses:       controllers.NewLensController(lenses, images),
		Insurance:    controllers.NewInsuranceController(insurance, images),
		Cart:         controllers.NewCartController(users, products),
		Wishlist:     controllers.NewWishlistController(users, products),
		Orders:       controllers.NewOrderController(orders, users, products),
		Appointments: controllers.NewAppointmentController(appointments, mail, cfg.AdminEmail),
		Clients:      controllers.NewClientController(clients),
		Contacts:     controllers.NewContactController(contacts, mail),
		Admin:        controllers.NewAdminController(users, products, brands, orders, contacts),
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestTimeout(30 * time.Second))

	corsConfig := cors.DefaultConfig()
	if cfg.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowCredentials = cfg.FrontendURL != ""
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	routes.Register(r, ctrl, tokens)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		logger.Log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("forced shutdown", zap.Error(err))
	}
}
