package src

import (
	"os"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Config struct {
	DatabaseURL        string        `env:"DATABASE_URL,required=true"`
	Debug              bool          `env:"DEBUG,default=false"`
	LogLevel           string        `env:"LOG_LEVEL,default=info"`
	LogFormat          string        `env:"LOG_FORMAT,default=text"`
	CORSAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS,default=*"`
	MaxPageSize        int           `env:"MAX_PAGE_SIZE,default=2000"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

// LoadConfig reads the environment, a .env file in the working directory is loaded first when present.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	var config Config
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return config, errors.Wrap(err, "error loading .env")
	}
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return config, errors.Wrap(err, "config error")
	}
	if config.DatabaseURL == "" {
		return config, errors.New("config error: DATABASE_URL is empty")
	}
	return config, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into trimmed non empty origins
func (c Config) AllowedOrigins() []string {
	origins := lo.Map(strings.Split(c.CORSAllowedOrigins, ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	})
	return lo.Compact(origins)
}
