// Package config carga la configuración en capas: defaults, archivo .env opcional y
// variables de entorno (la de mayor prioridad).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const EnvFileVar = "ENV_FILE"

type Config struct {
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	Log    LogConfig    `koanf:"log"`
	HTTP   HTTPConfig   `koanf:"http"`
	Client ClientConfig `koanf:"client"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DBConfig struct {
	// DSN explícito; si viene, ignora user/password/host/port/name.
	DSN      string `koanf:"dsn"`
	User     string `koanf:"user"`
	Password string `koanf:"pass"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`

	MaxConns       int           `koanf:"max_conns"`
	MinConns       int           `koanf:"min_conns"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	App    string `koanf:"app"`
}

type HTTPConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
}

type ClientConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		DB: DBConfig{
			Port:           5432,
			SSLMode:        "disable",
			MaxConns:       4,
			MinConns:       0,
			QueryTimeout:   10 * time.Second,
			ConnectTimeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			App:    "shelter-admin",
		},
		HTTP: HTTPConfig{
			CORSOrigins:       []string{},
			RateLimitRequests: 300,
			RateLimitWindow:   time.Minute,
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 10 * time.Second,
		},
	}
}

// Load aplica defaults -> .env (si existe) -> entorno.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	// CORS llega como CSV en env.
	if s, ok := k.Get("http.cors_origins").(string); ok {
		if err := k.Set("http.cors_origins", splitCSV(s)); err != nil {
			return Config{}, fmt.Errorf("config: cors origins: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// godotenv.Load no pisa variables ya definidas en el proceso, así que el entorno real
// sigue ganando sobre el archivo.
func loadDotEnv() error {
	path := strings.TrimSpace(os.Getenv(EnvFileVar))
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("config: load %s: %w", path, err)
}

var sections = map[string]string{
	"SERVER_": "server.",
	"DB_":     "db.",
	"LOG_":    "log.",
	"HTTP_":   "http.",
	"CLIENT_": "client.",
}

// envKey traduce DB_HOST -> db.host, HTTP_RATE_LIMIT_REQUESTS -> http.rate_limit_requests.
// Variables de otros prefijos se ignoran (devolver "" las descarta).
func envKey(s string) string {
	switch s {
	case "PORT":
		return "server.port"
	case "APP_NAME":
		return "log.app"
	}
	for prefix, path := range sections {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return path + strings.ToLower(strings.TrimPrefix(s, prefix))
		}
	}
	return ""
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// HasDatabase indica si hay datos suficientes para conectarse a Postgres.
// Sin DB el servidor corre en modo dev con el store en memoria.
func (c DBConfig) HasDatabase() bool {
	return strings.TrimSpace(c.DSN) != "" || strings.TrimSpace(c.Host) != ""
}

// ConnString arma el DSN postgres:// a partir de las partes, salvo que haya DSN explícito.
func (c DBConfig) ConnString() string {
	if dsn := strings.TrimSpace(c.DSN); dsn != "" {
		return dsn
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.User != "" {
		if c.Password != "" {
			u.User = url.UserPassword(c.User, c.Password)
		} else {
			u.User = url.User(c.User)
		}
	}
	q := url.Values{}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	if c.ConnectTimeout > 0 {
		q.Set("connect_timeout", strconv.Itoa(int(c.ConnectTimeout.Seconds())))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (c ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
