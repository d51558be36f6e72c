package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/localboost/backend/config"
	"github.com/localboost/backend/internal/domain"
	"github.com/localboost/backend/internal/repository"
	"github.com/localboost/backend/pkg/authenticator"
	"github.com/localboost/backend/pkg/logger"
	"github.com/localboost/backend/pkg/router"
	"github.com/localboost/backend/pkg/storage"
	"github.com/localboost/backend/pkg/xcontext"
	"github.com/localboost/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo           repository.UserRepository
	refreshTokenRepo   repository.RefreshTokenRepository
	sponsorProfileRepo repository.SponsorProfileRepository
	creatorProfileRepo repository.CreatorProfileRepository
	offeringRepo       repository.OfferingRepository
	campaignRepo       repository.CampaignRepository
	deliverableRepo    repository.DeliverableRepository
	proofRepo          repository.ProofRepository
	creditRepo         repository.CreditRepository
	fileRepo           repository.FileRepository

	authDomain        domain.AuthDomain
	userDomain        domain.UserDomain
	sponsorDomain     domain.SponsorDomain
	creatorDomain     domain.CreatorDomain
	offeringDomain    domain.OfferingDomain
	campaignDomain    domain.CampaignDomain
	deliverableDomain domain.DeliverableDomain
	proofDomain       domain.ProofDomain
	creditDomain      domain.CreditDomain
	statisticDomain   domain.StatisticDomain
	fileDomain        domain.FileDomain

	identityService authenticator.IIdentityService
	storage         storage.Storage
	redisClient     xredis.Client

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Not found .env file, use environment variables instead")
	}

	cfg := config.Configs{
		Env: getEnv("ENV", "local"),
		Database: config.DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "localboost"),
			Password: getEnv("MYSQL_PASSWORD", "localboost"),
			Database: getEnv("MYSQL_DATABASE", "localboost"),
		},
		ApiServer: config.ServerConfigs{
			Host:         getEnv("API_HOST", ""),
			Port:         getEnv("API_PORT", "8080"),
			AllowCORS:    strings.Split(getEnv("API_ALLOW_CORS", "http://localhost:3000"), ","),
			DefaultLimit: parseInt(getEnv("API_DEFAULT_LIMIT", "10")),
			MaxLimit:     parseInt(getEnv("API_MAX_LIMIT", "50")),
		},
		Auth: config.AuthConfigs{
			TokenSecret: getEnv("TOKEN_SECRET", "token_secret"),
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "5m")),
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: parseDuration(getEnv("REFRESH_TOKEN_DURATION", "20m")),
			},
			Identity: config.IdentityConfigs{
				Name:      getEnv("IDENTITY_NAME", "localboost"),
				SecretKey: getEnv("IDENTITY_SECRET", ""),
				VerifyURL: getEnv("IDENTITY_VERIFY_URL", ""),
				IDField:   getEnv("IDENTITY_ID_FIELD", "id"),
			},
		},
		Session: config.SessionConfigs{
			Secret: getEnv("AUTH_SESSION_SECRET", "secret"),
			Name:   "auth_session",
		},
		Storage: config.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", "http://localhost:9000"),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
			SSLDisabled:    parseBool(getEnv("STORAGE_SSL_DISABLED", "true")),
		},
		File: config.FileConfigs{
			MaxSize:     int64(parseInt(getEnv("MAX_UPLOAD_FILE_SIZE", "2097152"))),
			ImageBucket: getEnv("IMAGE_BUCKET", "images"),
		},
		Redis: config.RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
	}

	// A config file overrides whatever came from the environment.
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			panic(err)
		}
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if xcontext.Configs(s.ctx).Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadEndpoint() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.ctx = xcontext.WithSessionStore(s.ctx, sessions.NewCookieStore([]byte(cfg.Session.Secret)))
	s.identityService = authenticator.NewIdentityService(cfg.Auth.Identity)
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx)
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       cfg.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadDatabase() {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(xcontext.Configs(s.ctx).Storage)
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx, xcontext.Configs(s.ctx).Redis)
	if err != nil {
		// Redis only backs leaderboards, the service runs without it.
		xcontext.Logger(s.ctx).Warnf("Cannot connect to redis: %v", err)
		return
	}

	s.redisClient = client
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.sponsorProfileRepo = repository.NewSponsorProfileRepository()
	s.creatorProfileRepo = repository.NewCreatorProfileRepository()
	s.offeringRepo = repository.NewOfferingRepository()
	s.campaignRepo = repository.NewCampaignRepository()
	s.deliverableRepo = repository.NewDeliverableRepository()
	s.proofRepo = repository.NewProofRepository()
	s.creditRepo = repository.NewCreditRepository()
	s.fileRepo = repository.NewFileRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo, s.identityService)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.fileRepo, s.storage)
	s.sponsorDomain = domain.NewSponsorDomain(s.sponsorProfileRepo, s.userRepo)
	s.creatorDomain = domain.NewCreatorDomain(s.creatorProfileRepo, s.userRepo)
	s.offeringDomain = domain.NewOfferingDomain(s.offeringRepo, s.creatorProfileRepo, s.userRepo)
	s.campaignDomain = domain.NewCampaignDomain(
		s.campaignRepo, s.deliverableRepo, s.proofRepo,
		s.sponsorProfileRepo, s.creatorProfileRepo, s.userRepo)
	s.deliverableDomain = domain.NewDeliverableDomain(
		s.deliverableRepo, s.campaignRepo,
		s.sponsorProfileRepo, s.creatorProfileRepo, s.userRepo)
	s.proofDomain = domain.NewProofDomain(
		s.proofRepo, s.deliverableRepo, s.campaignRepo,
		s.sponsorProfileRepo, s.creatorProfileRepo, s.userRepo, s.redisClient)
	s.creditDomain = domain.NewCreditDomain(
		s.creditRepo, s.campaignRepo, s.sponsorProfileRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.creatorProfileRepo, s.redisClient)
	s.fileDomain = domain.NewFileDomain(s.fileRepo, s.storage)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}

	return n
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		panic(err)
	}

	return b
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}
