package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
)

// Config holds the server settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel slog.Level

	// Entitlement unlocks stats, history, CSV export and backups at level 2.
	Entitlement kernel.Entitlement

	// BackupFile is where the backup job writes; empty disables the job.
	BackupFile     string
	BackupSchedule string

	// SeedCouriers creates the default couriers on the very first start.
	SeedCouriers bool
}

// LoadConfig reads an optional .env file from envFile and then the
// environment. Variables already set in the environment win over the file.
// Every missing or malformed key is reported in one error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      getEnv("DB_SSLMODE", "disable"),
		BackupFile:     os.Getenv("BACKUP_FILE"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "@every 5m"),
	}

	var problems []error

	var missing []string
	for key, value := range map[string]string{
		"DB_HOST": cfg.DBHost,
		"DB_USER": cfg.DBUser,
		"DB_NAME": cfg.DBName,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		problems = append(problems, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	level, err := strconv.Atoi(getEnv("ENTITLEMENT_LEVEL", "0"))
	if err != nil {
		problems = append(problems, fmt.Errorf("ENTITLEMENT_LEVEL: %w", err))
	} else if cfg.Entitlement, err = kernel.NewEntitlement(level); err != nil {
		problems = append(problems, fmt.Errorf("ENTITLEMENT_LEVEL: %w", err))
	}

	if cfg.SeedCouriers, err = strconv.ParseBool(getEnv("SEED_COURIERS", "true")); err != nil {
		problems = append(problems, fmt.Errorf("SEED_COURIERS: %w", err))
	}

	if err := errors.Join(problems...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN renders the Postgres connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// getEnv returns the value of key, or fallback when it is unset or empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
