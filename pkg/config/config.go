package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Metrics MetricsConfig
	Report  ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string // vacío = según el modo (shell: warn, serve: info)
	Currency string // código ISO 4217 para mostrar precios
}

// HTTPConfig configuración del servidor HTTP (subcomando serve).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MetricsConfig configuración de métricas Prometheus.
type MetricsConfig struct {
	Prefix string
}

// ReportConfig configuración de la exportación de reportes.
type ReportConfig struct {
	PDFPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

// FromMap construye la configuración a partir de pares clave/valor (tests y overrides).
func FromMap(values map[string]string) (*Config, error) {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "estoque"),
			LogLevel: getString(v, "LOG_LEVEL", ""),
			Currency: strings.ToUpper(getString(v, "APP_CURRENCY", "BRL")),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Metrics: MetricsConfig{
			Prefix: getString(v, "METRICS_PREFIX", "estoque"),
		},
		Report: ReportConfig{
			PDFPath: getString(v, "REPORT_PDF_PATH", "reporte-stock.pdf"),
		},
	}
	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	return cfg, nil
}

// LogLevelFor devuelve el nivel configurado o el por defecto del modo.
func (c *Config) LogLevelFor(def string) string {
	if c.App.LogLevel != "" {
		return c.App.LogLevel
	}
	return def
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return -1
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
