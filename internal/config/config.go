package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const EnvProd = "prod"

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	BasePath   string     `yaml:"base_path" env:"BASE_PATH" env-default:""`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Uploads    Uploads    `yaml:"uploads"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Database struct {
	Host       string `yaml:"host" env:"DB_HOST" env-default:""`
	Port       int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	User       string `yaml:"user" env:"DB_USER" env-default:"user"`
	Password   string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	DBName     string `yaml:"dbname" env:"DB_NAME" env-default:"smart_invite"`
	PoolSize   int    `yaml:"pool_size" env:"DB_POOL_SIZE" env-default:"10"`
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"data/smart-invite.db"`
}

type Uploads struct {
	Dir         string `yaml:"dir" env:"UPLOAD_DIR" env-default:"public/uploads"`
	MaxFileSize int64  `yaml:"max_file_size" env:"UPLOAD_MAX_FILE_SIZE" env-default:"5242880"`
	MaxFiles    int    `yaml:"max_files" env:"UPLOAD_MAX_FILES" env-default:"10"`
}

// UseMySQL picks the backend once at startup: the networked store when a DB
// host is configured or the app runs in prod, the embedded file store
// otherwise.
func (c *Config) UseMySQL() bool {
	return c.Database.Host != "" || c.Env == EnvProd
}

func MustLoad() *Config {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}

		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
