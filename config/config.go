package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config 환경변수 조회 (.env는 최초 호출 시 한 번만 로드)
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
		loaded = true
	}
	return os.Getenv(key)
}

func ConfigOr(key, defaultValue string) string {
	v := Config(key)
	if v == "" {
		return defaultValue
	}
	return v
}
