package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"clinique-navette-core/internal/infrastructure/database/mongodb"
	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/infrastructure/database/redis"

	"github.com/joho/godotenv"
)

// Configuration uniquement via variables d'environnement.
// Deux bases PostgreSQL logiques : la base principale (fiches navette,
// conventions, companies, services) et la base patients. Les médecins
// vivent dans MongoDB et ne sont jamais joints en SQL.

// Config structure unifiée
type Config struct {
	Environment      string
	Server           ServerConfig
	Database         DatabaseConfig
	PatientsDatabase DatabaseConfig
	Redis            RedisConfig
	MongoDB          MongoConfig
	Import           ImportConfig
	Logging          LoggingConfig
	CORS             CORSConfig
}

// ServerConfig configuration serveur HTTP
type ServerConfig struct {
	Host         string        `env:"SERVER_HOST"`
	Port         int           `env:"SERVER_PORT"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT"`
}

// DatabaseConfig configuration PostgreSQL
type DatabaseConfig struct {
	Host           string        `env:"DB_HOST"`
	Port           int           `env:"DB_PORT"`
	Database       string        `env:"DB_NAME"`
	Username       string        `env:"DB_USERNAME"`
	Password       string        `env:"DB_PASSWORD"`
	MaxConnections int           `env:"DB_MAX_CONNECTIONS"`
	QueryTimeout   time.Duration `env:"DB_QUERY_TIMEOUT"`
	SSLMode        string        `env:"DB_SSL_MODE"`
}

// RedisConfig configuration Redis
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD"`
	Database int    `env:"REDIS_DATABASE"`
}

// MongoConfig configuration MongoDB (base médecins)
type MongoConfig struct {
	URI      string `env:"MONGODB_URI"`
	Database string `env:"MONGODB_DATABASE"`
}

// ImportConfig configuration import Excel/CSV des conventions
type ImportConfig struct {
	MaxFileSizeBytes int64 `env:"IMPORT_MAX_FILE_SIZE"`
}

// LoggingConfig configuration logging
type LoggingConfig struct {
	Level string `env:"LOG_LEVEL"`
}

// CORSConfig configuration CORS
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `env:"CORS_MAX_AGE"`
}

func NewConfig() (*Config, error) {
	// Charger le fichier .env (optionnel)
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("[CONFIG] Warning: Fichier .env non trouvé: %v\n", err)
	}

	config := &Config{}

	config.Environment = getEnv("APP_ENV", "development")

	config.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "localhost"),
		Port:         getEnvInt("SERVER_PORT", 4000),
		ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 30) * time.Second,
		WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 30) * time.Second,
	}

	config.Database = DatabaseConfig{
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           getEnvInt("DB_PORT", 5432),
		Database:       getEnv("DB_NAME", "clinique_navette"),
		Username:       getEnv("DB_USERNAME", "postgres"),
		Password:       getEnv("DB_PASSWORD", ""),
		MaxConnections: getEnvInt("DB_MAX_CONNECTIONS", 25),
		QueryTimeout:   getEnvDuration("DB_QUERY_TIMEOUT", 30) * time.Second,
		SSLMode:        getEnv("DB_SSL_MODE", "disable"),
	}

	// Base patients : connexion logique distincte (mêmes défauts d'hôte)
	config.PatientsDatabase = DatabaseConfig{
		Host:           getEnv("PATIENTS_DB_HOST", config.Database.Host),
		Port:           getEnvInt("PATIENTS_DB_PORT", config.Database.Port),
		Database:       getEnv("PATIENTS_DB_NAME", "clinique_patients"),
		Username:       getEnv("PATIENTS_DB_USERNAME", config.Database.Username),
		Password:       getEnv("PATIENTS_DB_PASSWORD", config.Database.Password),
		MaxConnections: getEnvInt("PATIENTS_DB_MAX_CONNECTIONS", 10),
		QueryTimeout:   getEnvDuration("PATIENTS_DB_QUERY_TIMEOUT", 30) * time.Second,
		SSLMode:        getEnv("PATIENTS_DB_SSL_MODE", config.Database.SSLMode),
	}

	config.Redis = RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnvInt("REDIS_PORT", 6379),
		Password: getEnv("REDIS_PASSWORD", ""),
		Database: getEnvInt("REDIS_DATABASE", 0),
	}

	config.MongoDB = MongoConfig{
		URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGODB_DATABASE", "clinique_medical"),
	}

	config.Import = ImportConfig{
		MaxFileSizeBytes: int64(getEnvInt("IMPORT_MAX_FILE_SIZE", 10*1024*1024)),
	}

	config.Logging = LoggingConfig{
		Level: getEnv("LOG_LEVEL", "debug"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validation configuration échouée: %w", err)
	}

	fmt.Printf("[CONFIG] ✅ Configuration chargée pour environnement: %s\n", config.Environment)
	return config, nil
}

// Getters pour accès externe
func (c *Config) GetServer() ServerConfig   { return c.Server }
func (c *Config) GetCORS() CORSConfig       { return c.CORS }
func (c *Config) GetImport() ImportConfig   { return c.Import }
func (c *Config) GetLogging() LoggingConfig { return c.Logging }

// Convertisseurs vers configurations infrastructure

func NewPostgresConfig(config *Config) *postgres.DatabaseConfig {
	return &postgres.DatabaseConfig{
		Host:     config.Database.Host,
		Port:     config.Database.Port,
		Database: config.Database.Database,
		Username: config.Database.Username,
		Password: config.Database.Password,
		SSLMode:  config.Database.SSLMode,
		MaxConns: config.Database.MaxConnections,
	}
}

func NewPatientsPostgresConfig(config *Config) *postgres.PatientsDatabaseConfig {
	return &postgres.PatientsDatabaseConfig{
		Host:     config.PatientsDatabase.Host,
		Port:     config.PatientsDatabase.Port,
		Database: config.PatientsDatabase.Database,
		Username: config.PatientsDatabase.Username,
		Password: config.PatientsDatabase.Password,
		SSLMode:  config.PatientsDatabase.SSLMode,
		MaxConns: config.PatientsDatabase.MaxConnections,
	}
}

func NewRedisConfig(config *Config) *redis.RedisConfig {
	return &redis.RedisConfig{
		Host:     config.Redis.Host,
		Port:     config.Redis.Port,
		Password: config.Redis.Password,
		Database: config.Redis.Database,
	}
}

func NewMongoConfig(config *Config) *mongodb.MongoConfig {
	return &mongodb.MongoConfig{
		URI:      config.MongoDB.URI,
		Database: config.MongoDB.Database,
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT invalide: %d", config.Server.Port)
	}
	if config.Database.Database == "" {
		return fmt.Errorf("DB_NAME requis")
	}
	if config.PatientsDatabase.Database == "" {
		return fmt.Errorf("PATIENTS_DB_NAME requis")
	}
	if config.MongoDB.URI == "" {
		return fmt.Errorf("MONGODB_URI requis")
	}
	return nil
}

// Helpers pour parsing variables d'environnement
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultSeconds int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return time.Duration(intValue)
		}
	}
	return time.Duration(defaultSeconds)
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
