package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config armazena todas as configurações da aplicação.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr string
	CacheTTL  time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	TokenExpiry  time.Duration // Derivado de JWT_EXPIRATION_MS

	// Notificação (SMTP) — opcional; vazio desativa o envio de e-mails
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// Load carrega as configurações a partir das variáveis de ambiente.
// O arquivo .env (quando existir) já deve ter sido carregado pelo cmd
// via godotenv antes desta chamada.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_TIMEOUT_SEC", 5)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CACHE_TTL_SEC", 300)
	// 24h em milissegundos, mantendo a chave usada pelos clientes existentes
	viper.SetDefault("JWT_EXPIRATION_MS", 86400000)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)

	databaseURL := viper.GetString("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida")
	}

	jwtSecret := viper.GetString("JWT_SECRET_KEY")
	if jwtSecret == "" {
		return nil, fmt.Errorf("a variável de ambiente JWT_SECRET_KEY deve ser definida")
	}

	cfg := &Config{
		Port:        viper.GetString("PORT"),
		Environment: viper.GetString("ENV"),
		LogLevel:    viper.GetString("LOG_LEVEL"),

		DatabaseURL: databaseURL,
		DBTimeout:   time.Duration(viper.GetInt("DB_TIMEOUT_SEC")) * time.Second,

		RedisAddr: viper.GetString("REDIS_ADDR"),
		CacheTTL:  time.Duration(viper.GetInt("CACHE_TTL_SEC")) * time.Second,

		JWTSecretKey: jwtSecret,
		TokenExpiry:  time.Duration(viper.GetInt64("JWT_EXPIRATION_MS")) * time.Millisecond,

		SMTPHost:     viper.GetString("SMTP_HOST"),
		SMTPPort:     viper.GetInt("SMTP_PORT"),
		SMTPUsername: viper.GetString("SMTP_USERNAME"),
		SMTPPassword: viper.GetString("SMTP_PASSWORD"),

		RateLimitMaxRequests: viper.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(viper.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute,
	}

	return cfg, nil
}
