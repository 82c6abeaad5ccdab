package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ShoplyConfig struct {
	Env          string `yaml:"env" env:"SHOPLY_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	StoreDB      `yaml:"store_db"`
	JWT          `yaml:"jwt"`
	KafkaService `yaml:"kafka-service"`
	LogConfig    `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

type StoreDB struct {
	Dsn            string `yaml:"dsn" env:"STORE_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type JWT struct {
	Secret string `yaml:"secret" env:"JWT_SECRET"`
}

type KafkaService struct {
	Host string `yaml:"host" env:"KAFKA_HOST"`
	Port string `yaml:"port" env:"KAFKA_PORT"`
}

type LogConfig struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

func MustLoad() *ShoplyConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SHOPLY_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SHOPLY_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ShoplyConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
