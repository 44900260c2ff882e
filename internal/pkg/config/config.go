package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "ghostbank")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "ghostbank")

	// Telegram bot config
	configs.Telegram.BotToken = GetEnv("TELEGRAM_BOT_TOKEN", "")
	configs.Telegram.APIBaseURL = GetEnv("TELEGRAM_API_BASE_URL", "https://api.telegram.org")
	configs.Telegram.Relays = GetEnvAsSlice("TELEGRAM_RELAYS",
		"https://api.allorigins.win/raw?url=,https://corsproxy.io/?,direct")
	configs.Telegram.PollInterval = GetEnvAsInt("TELEGRAM_POLL_INTERVAL", 3)
	configs.Telegram.OTPTTL = GetEnvAsInt("TELEGRAM_OTP_TTL", 300)

	// Payment gateway config
	configs.Payment.PublicKey = GetEnv("PAYMENT_PUBLIC_KEY", "")
	configs.Payment.SecretKey = GetEnv("PAYMENT_SECRET_KEY", "")
	configs.Payment.ChargeURL = GetEnv("PAYMENT_CHARGE_URL", "https://api.lxpay.com.br/api/v1/gateway/pix/receive")
	configs.Payment.StatusURL = GetEnv("PAYMENT_STATUS_URL", "https://api.lxpay.com.br/api/v1/gateway/transactions")
	configs.Payment.Relays = GetEnvAsSlice("PAYMENT_RELAYS", "https://corsproxy.io/?,direct")
	configs.Payment.QRRenderURL = GetEnv("PAYMENT_QR_RENDER_URL", "https://api.qrserver.com/v1/create-qr-code/?size=300x300&margin=10&data=")
	configs.Payment.ChargeTTL = GetEnvAsInt("PAYMENT_CHARGE_TTL", 600)
	configs.Payment.PollInterval = GetEnvAsInt("PAYMENT_POLL_INTERVAL", 10)
	configs.Payment.WithdrawFeePct = GetEnvAsFloat("PAYMENT_WITHDRAW_FEE_PCT", 0.12)
	configs.Payment.SuccessCloseMs = GetEnvAsInt("PAYMENT_SUCCESS_CLOSE_MS", 3500)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.Topic = GetEnv("NSQ_DEPOSIT_TOPIC", "wallet.deposit.completed")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "logs/ghostbank.log")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsSlice reads a comma-separated list, trimming empty entries
func GetEnvAsSlice(key string, defaultValue string) []string {
	valueStr := GetEnv(key, defaultValue)
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
