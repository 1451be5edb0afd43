package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string       `yaml:"env" env:"ENV" env-default:"local"`
	DatabaseUrl string       `yaml:"database_url" env:"DATABASE_URL"`
	Server      ServerConfig `yaml:"rest"`
	JWT         JWTSecret    `yaml:"jwt"`
	Admin       AdminConfig  `yaml:"admin"`
	CORS        CORSConfig   `yaml:"cors"`
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

type JWTSecret struct {
	Secret string `yaml:"secret" env:"JWT_SECRET" env-default:"serviceatlas-dev-secret"`
}

// AdminConfig is the single admin identity. An empty password leaves the auth
// gate in degraded mode: login always fails, the process still serves reads.
type AdminConfig struct {
	Username string `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASSWORD"`
}

type CORSConfig struct {
	Origin string `yaml:"origin" env:"CORS_ORIGIN" env-default:"http://localhost:3000"`
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Printf("config file %s not found, using environment only", path)
			path = ""
		}
	}

	var config Config
	if path == "" {
		if err := cleanenv.ReadEnv(&config); err != nil {
			panic(err)
		}
		return &config
	}

	log.Printf("Loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		panic(err)
	}
	return &config
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
