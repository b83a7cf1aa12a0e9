package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"bazaartrack/internal/adapter/api/handler"
	apimiddleware "bazaartrack/internal/adapter/api/middleware"
	"bazaartrack/internal/adapter/api/router"
	"bazaartrack/internal/adapter/repository"
	domainrepo "bazaartrack/internal/domain/repository"
	"bazaartrack/internal/domain/service"
	"bazaartrack/internal/infrastructure/firebase"
	"bazaartrack/internal/infrastructure/jwtauth"
	"bazaartrack/internal/infrastructure/mongodb"
	"bazaartrack/internal/infrastructure/ratelimit"
	"bazaartrack/internal/infrastructure/storage"
	"bazaartrack/internal/infrastructure/websocket"
	"bazaartrack/internal/usecase"
	"bazaartrack/pkg/config"
	"bazaartrack/pkg/logger"
	"bazaartrack/pkg/response"
)

const (
	shutdownTimeout = 10 * time.Second
	tokenIssuer     = "bazaartrack"
)

type repositories struct {
	users     domainrepo.UserRepository
	products  domainrepo.ProductRepository
	ads       domainrepo.AdvertisementRepository
	payments  domainrepo.PaymentRepository
	watchList domainrepo.WatchListRepository
	reviews   domainrepo.ReviewRepository
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetDebug(cfg.IsDevelopment())
	response.ExposeUpstreamErrors(cfg.ExposeUpstreamErrors)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var firebaseApp *fbapp.App
	if cfg.StoreDriver == config.StoreFirestore || cfg.IdentityProvider == config.IdentityFirebase {
		firebaseApp, err = fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, firebaseOptions(cfg)...)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
	}

	repos, err := buildRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer repos.close()

	verifier, issuer, err := buildVerifier(ctx, cfg, firebaseApp)
	if err != nil {
		log.Fatalf("Failed to initialize identity verifier: %v", err)
	}

	fileService, err := buildFileService(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	if fileService != nil {
		defer fileService.Close()
	}

	generalLimiter, chatLimiter := buildLimiters(ctx, cfg)

	priceHub := websocket.NewManager()
	priceHub.Start(ctx)

	var paymentGateway service.PaymentGatewayService
	if cfg.StripeSecretKey != "" {
		paymentGateway = service.NewStripePaymentService(cfg.StripeSecretKey)
	} else {
		logger.Warn("STRIPE_SECRET_KEY not set, payment intents are disabled")
	}

	var chatModel service.ChatModelService
	if cfg.OpenAIAPIKey != "" {
		chatModel = service.NewOpenAIChatService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		logger.Warn("OPENAI_API_KEY not set, chat is disabled")
	}

	authUseCase := usecase.NewAuthUseCase(repos.users, verifier, issuer, time.Duration(cfg.JWTExpiry)*time.Second)

	handlers := handler.Setup(handler.Dependencies{
		AuthUseCase:          authUseCase,
		UserUseCase:          usecase.NewUserUseCase(repos.users),
		ProductUseCase:       usecase.NewProductUseCase(repos.products, priceHub),
		AdvertisementUseCase: usecase.NewAdvertisementUseCase(repos.ads),
		PaymentUseCase:       usecase.NewPaymentUseCase(repos.payments, paymentGateway, cfg.PaymentCurrency),
		WatchListUseCase:     usecase.NewWatchListUseCase(repos.watchList),
		ReviewUseCase:        usecase.NewReviewUseCase(repos.reviews, repos.users),
		ChatUseCase:          usecase.NewChatUseCase(chatModel),
		StatsUseCase:         usecase.NewStatsUseCase(repos.users, repos.products, repos.ads, repos.payments),
		FileService:          fileService,
		PriceHub:             priceHub,
		AllowedOrigins:       cfg.AllowedOrigins,
	})

	gate := apimiddleware.NewAccessGate(router.AccessPolicy(), authUseCase, authUseCase)

	e := router.NewServer(handlers, gate, router.Options{
		Environment:    cfg.Environment,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
		GeneralLimit:   apimiddleware.RateLimit(generalLimiter, "general"),
		ChatLimit:      apimiddleware.RateLimit(chatLimiter, "chat"),
	})

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	shutdown(e)
}

func shutdown(e *echo.Echo) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server...")
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

func firebaseOptions(cfg *config.Config) []option.ClientOption {
	if cfg.FirebaseServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON))}
	}
	if cfg.FirebaseServiceAccountPath != "" {
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", cfg.FirebaseServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		return []option.ClientOption{option.WithCredentialsFile(cfg.FirebaseServiceAccountPath)}
	}
	logger.Info("Using application default credentials for Google Cloud")
	return nil
}

func buildRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return &repositories{
			users:     repository.NewMongoUserRepository(db),
			products:  repository.NewMongoProductRepository(db),
			ads:       repository.NewMongoAdvertisementRepository(db),
			payments:  repository.NewMongoPaymentRepository(db),
			watchList: repository.NewMongoWatchListRepository(db),
			reviews:   repository.NewMongoReviewRepository(db),
			close:     func() { mongodb.Disconnect(context.Background(), client) },
		}, nil

	case config.StoreFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirebaseProject, firebaseOptions(cfg)...)
		if err != nil {
			return nil, err
		}
		logger.Info("Connected to Firestore project %s", cfg.FirebaseProject)
		return &repositories{
			users:     repository.NewFirestoreUserRepository(client),
			products:  repository.NewFirestoreProductRepository(client),
			ads:       repository.NewFirestoreAdvertisementRepository(client),
			payments:  repository.NewFirestorePaymentRepository(client),
			watchList: repository.NewFirestoreWatchListRepository(client),
			reviews:   repository.NewFirestoreReviewRepository(client),
			close:     func() { client.Close() },
		}, nil

	default:
		logger.Warn("Using in-memory store, data is lost on restart")
		return &repositories{
			users:     repository.NewMemoryUserRepository(),
			products:  repository.NewMemoryProductRepository(),
			ads:       repository.NewMemoryAdvertisementRepository(),
			payments:  repository.NewMemoryPaymentRepository(),
			watchList: repository.NewMemoryWatchListRepository(),
			reviews:   repository.NewMemoryReviewRepository(),
			close:     func() {},
		}, nil
	}
}

func buildVerifier(ctx context.Context, cfg *config.Config, app *fbapp.App) (service.IdentityVerifier, service.TokenIssuer, error) {
	if cfg.IdentityProvider == config.IdentityJWT {
		logger.Info("Verifying bearer tokens with the local HS256 secret")
		v := jwtauth.NewVerifier(cfg.JWTSecret, tokenIssuer)
		return v, v, nil
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, err
	}
	return firebase.NewFirebaseAuthClient(authClient), nil, nil
}

func buildFileService(ctx context.Context, cfg *config.Config) (service.FileUploadService, error) {
	if cfg.StorageBucket == "" {
		logger.Warn("STORAGE_BUCKET not set, uploads are disabled")
		return nil, nil
	}

	if cfg.StorageDriver == config.StorageMinio {
		return storage.NewMinioStorageClient(ctx, cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.StorageBucket, cfg.MinioUseSSL)
	}
	return storage.NewCloudStorageClient(ctx, cfg.StorageBucket, firebaseOptions(cfg)...)
}

// buildLimiters shares counters through Redis when REDIS_URL is set, otherwise keeps them per process.
func buildLimiters(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, ratelimit.Limiter) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to reach Redis: %v", err)
		}
		logger.Info("Rate limits shared through Redis")
		return ratelimit.NewRedisLimiter(client, "general", cfg.RateLimitPerMinute),
			ratelimit.NewRedisLimiter(client, "chat", cfg.ChatRateLimitPerMinute)
	}

	general := ratelimit.NewRateLimiter(cfg.RateLimitPerMinute)
	chat := ratelimit.NewRateLimiter(cfg.ChatRateLimitPerMinute)
	general.StartCleanupRoutine(ctx, 10*time.Minute)
	chat.StartCleanupRoutine(ctx, 10*time.Minute)
	return general, chat
}
