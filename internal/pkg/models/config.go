package models

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Telegram TelegramConfig
	Payment  PaymentConfig
	NSQ      NSQConfig
	Logger   LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	SSLMode   string `json:"ssl_mode"`
	MaxConns  int    `json:"max_conns"`
	IdleConns int    `json:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"pool_size"`
}

// JWTConfig holds JWT token configuration
type JWTConfig struct {
	Secret     string `json:"secret"`
	Expiration int    `json:"expiration"` // minutes
	Issuer     string `json:"issuer"`
}

// TelegramConfig holds Telegram bot API configuration.
// Relays is the ordered list of relay specs used for every outbound call;
// each entry is either a proxy URL prefix or the literal "direct".
type TelegramConfig struct {
	BotToken     string   `json:"bot_token"`
	APIBaseURL   string   `json:"api_base_url"`
	Relays       []string `json:"relays"`
	PollInterval int      `json:"poll_interval"` // seconds
	OTPTTL       int      `json:"otp_ttl"`       // seconds
}

// PaymentConfig holds Pix gateway configuration
type PaymentConfig struct {
	PublicKey      string   `json:"public_key"`
	SecretKey      string   `json:"secret_key"`
	ChargeURL      string   `json:"charge_url"`
	StatusURL      string   `json:"status_url"`
	Relays         []string `json:"relays"`
	QRRenderURL    string   `json:"qr_render_url"`
	ChargeTTL      int      `json:"charge_ttl"`       // seconds
	PollInterval   int      `json:"poll_interval"`    // seconds
	WithdrawFeePct float64  `json:"withdraw_fee_pct"` // e.g. 0.12
	SuccessCloseMs int      `json:"success_close_ms"` // delay before the success callback fires
}

// NSQConfig holds NSQ producer configuration
type NSQConfig struct {
	Address string `json:"address"`
	Topic   string `json:"topic"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
