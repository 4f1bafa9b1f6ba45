package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file if one exists. Real deployments set the
// variables directly, so a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

func EnvMongoURI() string {
	return getEnv("MONGOURI", "mongodb://localhost:27017")
}

func EnvMongoDatabase() string {
	return getEnv("MONGO_DATABASE", "essenStore")
}

func EnvPort() string {
	return getEnv("PORT", "3000")
}

func EnvLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

func EnvJwtSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvRazorpayKeyId() string {
	return os.Getenv("RAZORPAY_KEY_ID")
}

func EnvRazorpayKeySecret() string {
	return os.Getenv("RAZORPAY_KEY_SECRET")
}

// EnvWebhookSecret is the shared secret the gateway signs webhook bodies with.
func EnvWebhookSecret() string {
	return os.Getenv("PAYMENT_WEBHOOK_SECRET")
}

// EnvBaseURL is the public origin of this API, used to build the webhook
// callback URL handed to the payment gateway.
func EnvBaseURL() string {
	return getEnv("BASE_URL", "http://localhost:3000")
}

// EnvStoreURL is the storefront origin customers are redirected back to
// after checkout.
func EnvStoreURL() string {
	return getEnv("STORE_URL", "http://localhost:5173")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
