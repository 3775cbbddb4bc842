package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	JWTSecret   string
	JWTTTLHours int
	BcryptCost  int
	AgeMin      int
	AgeMax      int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		DBPath:      getEnv("DB_PATH", ":memory:"),
		JWTSecret:   getEnv("JWT_SECRET", "eduvibe_dev_secret_2026"),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 168), // 7 days
		BcryptCost:  getEnvInt("BCRYPT_COST", 12),
		AgeMin:      getEnvInt("AGE_MIN", 18),
		AgeMax:      getEnvInt("AGE_MAX", 30),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
