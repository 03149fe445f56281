package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreDriverSQLite = "sqlite"
	StoreDriverMySQL  = "mysql"
	StoreDriverMongo  = "mongo"
)

type Config struct {
	AppPort            string
	StoreDriver        string
	SqlitePath         string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbParams           string
	MongoURI           string
	MongoDatabase      string
	TranslationFolder  string
	CorsAllowedOrigins []string
	TrustedProxies     []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:            getEnv("APP_PORT", getEnv("PORT", "5000")),
		StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", StoreDriverSQLite)),
		SqlitePath:         getEnv("SQLITE_PATH", "taskmanager.db"),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "taskmanager"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "taskmanager"),
		DbName:             getEnv("MYSQL_DATABASE", "taskmanager"),
		DbParams:           getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017/taskmanager"),
		MongoDatabase:      getEnv("MONGODB_DATABASE", "taskmanager"),
		TranslationFolder:  os.Getenv("TRANSLATION_FOLDER"),
		CorsAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
