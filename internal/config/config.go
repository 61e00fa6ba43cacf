package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	DB          DBConfig
	Redis       RedisConfig
	Cache       CacheConfig
	Mail        MailConfig
	Backup      BackupConfig
	GoogleOAuth GoogleOAuthConfig
	JWT         JWTConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheConfig struct {
	ContentTTL   time.Duration
	DashboardTTL time.Duration
}

// MailConfig holds the Resend credentials and the addresses the two
// transactional emails are sent from and to.
type MailConfig struct {
	ResendAPIKey      string
	NotificationsFrom string // sender for internal lead/quiz alerts
	OnboardingFrom    string // sender for client-facing confirmations
	AdminEmail        string // inbox that receives new lead alerts
}

// BackupConfig points at the legacy Apps Script endpoint that mirrors
// contact leads into a spreadsheet. An empty URL disables the mirror.
type BackupConfig struct {
	ScriptURL string
	Timeout   time.Duration
}

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AdminEmails  []string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("db.ssl_mode", "disable")
	viper.SetDefault("cache.content_ttl", 300)
	viper.SetDefault("cache.dashboard_ttl", 30)
	viper.SetDefault("backup.timeout", 10)
	viper.SetDefault("jwt.access_token_ttl", 15)
	viper.SetDefault("jwt.refresh_token_ttl", 10080)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Name:     viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.ssl_mode"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			ContentTTL:   viper.GetDuration("cache.content_ttl") * time.Second,
			DashboardTTL: viper.GetDuration("cache.dashboard_ttl") * time.Second,
		},
		Mail: MailConfig{
			ResendAPIKey:      viper.GetString("mail.resend_api_key"),
			NotificationsFrom: viper.GetString("mail.notifications_from"),
			OnboardingFrom:    viper.GetString("mail.onboarding_from"),
			AdminEmail:        viper.GetString("mail.admin_email"),
		},
		Backup: BackupConfig{
			ScriptURL: viper.GetString("backup.script_url"),
			Timeout:   viper.GetDuration("backup.timeout") * time.Second,
		},
		GoogleOAuth: GoogleOAuthConfig{
			ClientID:     viper.GetString("google_oauth.client_id"),
			ClientSecret: viper.GetString("google_oauth.client_secret"),
			RedirectURL:  viper.GetString("google_oauth.redirect_url"),
			AdminEmails:  viper.GetStringSlice("google_oauth.admin_emails"),
		},
		JWT: JWTConfig{
			SecretKey:       viper.GetString("jwt.secret_key"),
			AccessTokenTTL:  viper.GetDuration("jwt.access_token_ttl") * time.Minute,
			RefreshTokenTTL: viper.GetDuration("jwt.refresh_token_ttl") * time.Minute,
		},
	}

	// Environment variables take precedence over the config file so the
	// same binary runs unchanged across deploy targets.
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.Name = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		config.Mail.ResendAPIKey = apiKey
	}
	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		config.Mail.AdminEmail = adminEmail
	}
	if scriptURL := os.Getenv("GOOGLE_SCRIPT_URL"); scriptURL != "" {
		config.Backup.ScriptURL = scriptURL
	}
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if admins := os.Getenv("ADMIN_EMAILS"); admins != "" {
		config.GoogleOAuth.AdminEmails = strings.Split(admins, ",")
	}

	return config, nil
}

// GetDSN builds the Postgres connection string for pgx.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
