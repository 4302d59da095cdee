package config

import (
	"errors"
	"io/fs"
	"log"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	v *viper.Viper
}

// New returns the process-wide config, loading ./configs/.env on first use
// when the file exists.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envPath into the process environment (a missing file is not an
// error) and returns a config looking keys up in the environment.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		err := godotenv.Load(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("API_ADDRESS", ":8000")
	v.SetDefault("POSTGRES_DB_ADDRESS", "localhost:5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "postgres")
	v.SetDefault("POSTGRES_MAX_CONNS", 10)
	v.SetDefault("KEY_PATH", "/key/id_ed25519")
	v.SetDefault("TOKEN_TTL", "600s")
	v.SetDefault("EVALUATION_SCHEDULE", "0 0 * * *")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	return &Config{v: v}, nil
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetDuration(key string) time.Duration {
	return c.v.GetDuration(key)
}
