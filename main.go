package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "investory/docs"
)

// @title Investory API
// @version 1.0
// @description Backend for the Investory personal-finance app: spending-persona analysis proxy, avatar relay, Google sign-in and dashboard data.
// @host localhost:8080
// @BasePath /

func main() {
	cfg := loadConfig()

	// Connect to database with retry logic
	pool, err := connectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer pool.Close()

	// Run database migrations
	migrationsPath := filepath.Join(".", "db", "migrations")
	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		log.Println("Running database migrations...")
		sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}
		if err := runMigrations(sqlDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}
		if version, dirty, err := getMigrationVersion(sqlDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		sqlDB.Close()
		log.Println("Database migrations completed successfully")
	}

	store := newPgxUserStore(pool)
	r := setupRouter(cfg, store)

	log.Printf("Server starting on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}

// connectDB opens the shared pgx pool, retrying while the database comes up
func connectDB(databaseURL string) (*pgxpool.Pool, error) {
	maxRetries := 30
	retryInterval := time.Second * 2

	var pool *pgxpool.Pool
	var err error

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), databaseURL)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = pool.Ping(context.Background()); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			pool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		return pool, nil
	}

	return nil, err
}

// setupRouter wires all routes; tests build their router through this too
func setupRouter(cfg Config, store UserStore) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "ok")
	})

	auth := NewAuthHandler(cfg, store)

	// Routes
	r.POST("/api/cluster", clusterCSV(cfg.ClusteringAPIURL))
	r.GET("/api/proxy-image", proxyImage())
	r.GET("/api/auth/google", auth.GoogleLogin)
	r.GET("/api/auth/google/callback", auth.GoogleCallback)
	r.GET("/api/auth/session", auth.GetSession)
	r.POST("/api/auth/logout", auth.Logout)
	r.GET("/api/transactions", getTransactions)
	r.GET("/api/tips", getTips)
	r.GET("/api/goals", getGoals)
	r.GET("/api/badges", getBadges)
	r.GET("/api/personas", getPersonas)
	r.GET("/api/dashboard/summary", getDashboardSummary)
	r.GET("/api/dashboard/spending-by-category", getSpendingByCategory)
	r.GET("/api/dashboard/trend", getSpendingTrend)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
