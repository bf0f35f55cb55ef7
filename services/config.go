package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	beegoconfig "github.com/beego/beego/v2/core/config"
)

// DefaultBaseURL es el origen fijo del API de SmartHire.
const DefaultBaseURL = "https://api.smarthire.com.co/api"

// Config centraliza la configuración del cliente del API.
type Config struct {
	AppName   string `validate:"required"`
	BaseURL   string `validate:"required,url"`
	StorePath string `validate:"required"`
	// RequestTimeout 0 deja los valores por defecto del transporte.
	RequestTimeout time.Duration `validate:"gte=0"`
	CorrelationIDs bool
}

var (
	cfg  Config
	once sync.Once
)

// DefaultConfigPath es el ini que se usa cuando SMARTHIRE_CONFIG no está definido.
const DefaultConfigPath = "conf/app.conf"

// GetConfig devuelve la configuración cargada desde variables de entorno, .env o el archivo ini
// indicado en SMARTHIRE_CONFIG (conf/app.conf si existe).
func GetConfig() Config {
	once.Do(func() {
		loaded, err := LoadConfig(configPath())
		if err != nil {
			panic(err)
		}
		cfg = loaded
	})
	return cfg
}

func configPath() string {
	if path := strings.TrimSpace(os.Getenv("SMARTHIRE_CONFIG")); path != "" {
		return path
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return DefaultConfigPath
	}
	return ""
}

// LoadConfig resuelve cada clave en orden: entorno (incluyendo .env), archivo ini, valor por defecto.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	var conf beegoconfig.Configer
	if strings.TrimSpace(path) != "" {
		c, err := beegoconfig.NewConfig("ini", path)
		if err != nil {
			return Config{}, fmt.Errorf("leyendo configuración %s: %w", path, err)
		}
		conf = c
	}

	loaded := Config{
		AppName:        getString(conf, "SMARTHIRE_APP_NAME", "appname", "smarthire_client"),
		BaseURL:        normalizeBase(getString(conf, "SMARTHIRE_BASE_URL", "base_url", DefaultBaseURL)),
		StorePath:      getString(conf, "SMARTHIRE_STORE_PATH", "store_path", "smarthire.db"),
		RequestTimeout: time.Duration(getInt(conf, "SMARTHIRE_TIMEOUT_MS", "timeout_ms", 0)) * time.Millisecond,
		CorrelationIDs: getBool(conf, "SMARTHIRE_CORRELATION_IDS", "correlation_ids", true),
	}

	if err := validator.New().Struct(loaded); err != nil {
		return Config{}, fmt.Errorf("configuración inválida: %w", err)
	}
	return loaded, nil
}

func getString(conf beegoconfig.Configer, envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if conf != nil {
		if val, err := conf.String(confKey); err == nil && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return def
}

func getInt(conf beegoconfig.Configer, envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if conf != nil {
		if val, err := conf.Int(confKey); err == nil {
			return val
		}
	}
	return def
}

func getBool(conf beegoconfig.Configer, envKey, confKey string, def bool) bool {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	if conf != nil {
		if val, err := conf.Bool(confKey); err == nil {
			return val
		}
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
