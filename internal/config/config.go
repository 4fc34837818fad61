package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no -config flag is given.
const DefaultConfigPath = "config.yaml"

// Load reads and normalizes the YAML config file. A missing file yields
// the defaults, so a bare binary still boots against localhost services.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && path == DefaultConfigPath:
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	normalize(cfg)
	return cfg, nil
}

func normalize(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = 2323
	}
	if cfg.Env == "" {
		cfg.Env = envOr("DXN_ENV", "development")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = envOr("REDIS_URL", "redis://localhost:6379/0")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = os.Getenv("DXN_JWT_SECRET")
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = envOr("DXN_SITE_URL", "http://localhost:2323")
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	if cfg.DSN == "" {
		cfg.DSN = buildDSN(cfg.Database)
	}
}

// buildDSN assembles a go-sql-driver MySQL DSN from structured fields.
func buildDSN(db DatabaseConfig) string {
	host := db.Host
	if host == "" {
		host = "localhost"
	}
	port := db.Port
	if port == 0 {
		port = 3306
	}
	user := db.User
	if user == "" {
		user = "root"
	}
	name := db.Name
	if name == "" {
		name = "dxn"
	}
	charset := db.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	loc := db.Loc
	if loc == "" {
		loc = "Local"
	}

	cred := user
	if db.Password != "" {
		cred += ":" + db.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=%s&parseTime=true&loc=%s",
		cred, host, port, name, charset, loc)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
