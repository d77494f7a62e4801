package app

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	CORSOrigins string        `envconfig:"CORS_ORIGINS" default:"http://localhost:4200,http://localhost:8000"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"300s"`

	Snowflake SnowflakeConfig
}

type SnowflakeConfig struct {
	Account        string `envconfig:"SNOWFLAKE_ACCOUNT" required:"true"`
	User           string `envconfig:"SNOWFLAKE_USER" required:"true"`
	Role           string `envconfig:"SNOWFLAKE_ROLE" default:"ACCOUNTADMIN"`
	Warehouse      string `envconfig:"SNOWFLAKE_WAREHOUSE" default:"COMPUTE_WH"`
	Database       string `envconfig:"SNOWFLAKE_DATABASE" default:"ECOMMERCE_PROD"`
	PrivateKeyPath string `envconfig:"SNOWFLAKE_PRIVATE_KEY_PATH" default:"rsa_key.p8"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Origins splits the comma-separated CORS origin list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
