package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port      int    `default:"8080"`
	PublicURL string `default:"http://localhost:8080"`
}

type Integrations struct {
	Beer []string `default:"untappd_web"`
}

type Auth struct {
	AdminPassword string        `default:"CDERF"`
	SecretKey     string        `validate:"required"`
	SessionTTL    time.Duration `default:"12h"`
}

type Cache struct {
	Driver   string `default:"memory"`
	Address  string `default:"localhost:6379"`
	Password string
	DB       int
}

type Storage struct {
	ImageDir      string `default:"./images"`
	ImagePath     string `default:"/images/"`
	MaxImageBytes int64  `default:"5242880"`
}

type Wizard struct {
	IdleTimeout time.Duration `default:"15s"`
	OptionLimit int           `default:"6"`
}

type Usage struct {
	FlushSchedule string `default:"@every 1m"`
}

type Config struct {
	DB           DB
	Server       Server
	Auth         Auth
	Cache        Cache
	Storage      Storage
	Wizard       Wizard
	Usage        Usage
	Integrations Integrations
}

const (
	envPrefix = "BEERFINDER" // env prefix for env vars
	envFile   = ".env"
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Could not load env file", zap.String("file", envFile), zap.Error(err))
	}

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if config.Cache.Driver != "memory" && config.Cache.Driver != "redis" {
		return nil, fmt.Errorf("%w: unknown cache driver %q", ErrConfiguration, config.Cache.Driver)
	}

	return &config, nil
}
