package initializers

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL         = "http://localhost:8080/api"
	defaultDeliveryAPIBaseURL = "http://localhost:8085/delivery-service/api/v1"
)

type Config struct {
	APIBaseURL         string
	DeliveryAPIBaseURL string
	DataDir            string
	CallbackAddr       string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}
}

func LoadConfig() Config {
	return Config{
		APIBaseURL:         getenv("API_BASE_URL", defaultAPIBaseURL),
		DeliveryAPIBaseURL: getenv("DELIVERY_API_BASE_URL", defaultDeliveryAPIBaseURL),
		DataDir:            getenv("FOOD_DELIVERY_DATA_DIR", defaultDataDir()),
		CallbackAddr:       getenv("PAYMENT_CALLBACK_ADDR", "127.0.0.1:8790"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".food-delivery"
	}
	return filepath.Join(home, ".food-delivery")
}
