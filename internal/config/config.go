package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type FilesConfig struct {
	UploadsDir string `yaml:"uploads_dir"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	// TTL in seconds; 24h if unset
	TokenTTLSeconds int           `yaml:"token_ttl_seconds"`
	TokenTTL        time.Duration `yaml:"-"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
	// base URL embedded in password-reset links, e.g. http://localhost:8080
	ResetBaseURL string `yaml:"reset_base_url"`
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email EmailConfig `yaml:"email"`
	JWT   JWTConfig   `yaml:"jwt"`
	Files FilesConfig `yaml:"files"`
	CORS  CORSConfig  `yaml:"cors"`
}

func LoadConfig() *Config {
	// .env is optional; environment wins over the yaml file
	_ = godotenv.Load()

	f, err := os.Open(configPath())
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	applyEnvOverrides(&cfg)

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Files.UploadsDir == "" {
		cfg.Files.UploadsDir = "./uploads/tax_forms"
	}
	if cfg.Email.ResetBaseURL == "" {
		cfg.Email.ResetBaseURL = "http://localhost:8080"
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"http://localhost:8080"}
	}
	if cfg.JWT.TokenTTLSeconds <= 0 {
		cfg.JWT.TokenTTLSeconds = 86400
	}
	cfg.JWT.TokenTTL = time.Duration(cfg.JWT.TokenTTLSeconds) * time.Second

	return &cfg
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config/config.yaml"
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("JWT_SECRET_KEY"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_ACCESS_TOKEN_EXPIRES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.JWT.TokenTTLSeconds = n
		}
	}
	if v := os.Getenv("UPLOADS_DIR"); v != "" {
		cfg.Files.UploadsDir = v
	}
	if v := os.Getenv("EMAIL_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("EMAIL_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Email.SMTPPort = n
		}
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.SMTPUser = v
		if cfg.Email.FromEmail == "" {
			cfg.Email.FromEmail = v
		}
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.Email.SMTPPassword = v
	}
}
