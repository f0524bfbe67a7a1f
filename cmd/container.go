package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Abraxas-365/sift/pkg/fsx"
	"github.com/Abraxas-365/sift/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/sift/pkg/iam/auth"
	"github.com/Abraxas-365/sift/pkg/logx"
	"github.com/Abraxas-365/sift/screening/jobspec/jobspecapi"
	"github.com/Abraxas-365/sift/screening/jobspec/jobspecinfra"
	"github.com/Abraxas-365/sift/screening/jobspec/jobspecsrv"
	"github.com/Abraxas-365/sift/screening/objective"
	"github.com/Abraxas-365/sift/screening/parser"
	"github.com/Abraxas-365/sift/screening/profile/profileapi"
	"github.com/Abraxas-365/sift/screening/profile/profileinfra"
	"github.com/Abraxas-365/sift/screening/profile/profilesrv"
	"github.com/Abraxas-365/sift/screening/scoring"
	"github.com/Abraxas-365/sift/screening/screener/screenerapi"
	"github.com/Abraxas-365/sift/screening/screener/screenerinfra"
	"github.com/Abraxas-365/sift/screening/screener/screenersrv"
	"github.com/Abraxas-365/sift/screening/screener/worker"
	"github.com/Abraxas-365/sift/screening/taxonomy"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Config
	AuthConfig auth.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Core screening components
	Taxonomy *taxonomy.Taxonomy
	Parser   *parser.Parser
	Engine   *scoring.Engine

	// Services
	TokenService     auth.TokenService
	ScreeningService *screenersrv.Service
	JobSpecService   *jobspecsrv.Service
	ProfileService   *profilesrv.Service

	// API Handlers
	ScreeningHandlers *screenerapi.ScreeningHandlers
	JobSpecHandlers   *jobspecapi.JobSpecHandlers
	ProfileHandlers   *profileapi.ProfileHandlers

	// Background processing
	ScreeningWorker *worker.Worker

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	awsRegion := os.Getenv("AWS_REGION")
	awsBucket := os.Getenv("AWS_BUCKET")
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")

	// 4. Auth Config
	c.AuthConfig = auth.DefaultConfig()
	c.AuthConfig.JWT.SecretKey = os.Getenv("JWT_SECRET")
	if c.AuthConfig.JWT.SecretKey == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.AuthConfig.JWT.SecretKey = "super-secret-key-please-change-me-in-production"
	}
	c.AuthConfig.ServiceKeyHash = os.Getenv("SERVICE_API_KEY_HASH")
	if c.AuthConfig.ServiceKeyHash == "" {
		logx.Warn("SERVICE_API_KEY_HASH is not set, API key access is disabled")
	}
}

func (c *Container) initServices() {
	// --- Core screening components ---
	c.Taxonomy = taxonomy.Default()
	c.Parser = parser.New(c.Taxonomy)
	c.Engine = scoring.NewEngine()
	generator := objective.NewGenerator()

	// --- Repositories ---
	screeningRepo := screenerinfra.NewPostgresScreeningRepository(c.DB)
	jobSpecRepo := jobspecinfra.NewPostgresJobSpecRepository(c.DB)
	profileRepo := profileinfra.NewPostgresProfileRepository(c.DB)

	// --- Queue ---
	queueName := os.Getenv("SCREENING_QUEUE")
	if queueName == "" {
		queueName = "screenings"
	}
	screeningQueue := screenerinfra.NewRedisQueue(c.Redis, queueName)

	// --- Token Service ---
	c.TokenService = auth.NewJWTService(
		c.AuthConfig.JWT.SecretKey,
		c.AuthConfig.JWT.AccessTokenTTL,
		c.AuthConfig.JWT.RefreshTokenTTL,
		c.AuthConfig.JWT.Issuer,
	)

	// --- Domain Services ---
	c.ScreeningService = screenersrv.New(screeningRepo, screeningQueue, c.FileSystem, c.Parser, c.Engine)
	c.JobSpecService = jobspecsrv.New(jobSpecRepo)
	c.ProfileService = profilesrv.New(profileRepo, generator)

	// --- Background Worker ---
	concurrency := 3
	if raw := os.Getenv("WORKER_CONCURRENCY"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			concurrency = n
		}
	}
	c.ScreeningWorker = worker.New(c.ScreeningService, screeningQueue, concurrency)

	// --- Handlers ---
	c.ScreeningHandlers = screenerapi.NewScreeningHandlers(c.ScreeningService, c.FileSystem)
	c.JobSpecHandlers = jobspecapi.NewJobSpecHandlers(c.JobSpecService)
	c.ProfileHandlers = profileapi.NewProfileHandlers(c.ProfileService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewAuthMiddleware(c.TokenService, c.AuthConfig.ServiceKeyHash)
}
