package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/zeyadesperado/GymMaster/models"
)

type Config struct {
	Env               string
	HTTPAddr          string
	DB                DBConfig
	JWTSecret         string
	JWTTTL            time.Duration
	AWSRegion         string
	SESSender         string
	SubscriptionSweep string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// Load reads .env (if present) and the process environment. Missing
// required keys are returned as an error.
func Load(log *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system env")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "72h"))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_TTL: %w", err)
	}

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTL:            ttl,
		AWSRegion:         getEnv("AWS_REGION", "ap-south-1"),
		SESSender:         os.Getenv("SES_EMAIL"),
		SubscriptionSweep: getEnv("SUBSCRIPTION_SWEEP", "0 3 * * *"),
	}

	for key, val := range map[string]string{
		"JWT_SECRET": cfg.JWTSecret,
		"DB_USER":    cfg.DB.User,
		"DB_NAME":    cfg.DB.Name,
	} {
		if val == "" {
			log.Error("required environment variable not set", zap.String("key", key))
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func OpenDB(cfg DBConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("database connected", zap.String("host", cfg.Host), zap.String("name", cfg.Name))
	return db, nil
}

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.Coach{},
		&models.Supplement{},
		&models.Payment{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
