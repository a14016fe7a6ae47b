package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ReconConfig struct {
	Env           string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	ReconDB       `yaml:"recon_db"`
	Paystack      `yaml:"paystack"`
	MailerService `yaml:"mailer-service"`
	KafkaService  `yaml:"kafka-service"`
	WorkerPool    `yaml:"worker_pool"`
	LogConfig     `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ReconDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type Paystack struct {
	BaseURL       string        `yaml:"base_url" env-default:"https://api.paystack.co"`
	VerifyTimeout time.Duration `yaml:"verify_timeout" env-default:"10s"`
}

type MailerService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payment-events"`
}

type WorkerPool struct {
	Workers   int `yaml:"workers" env-default:"4"`
	QueueSize int `yaml:"queue_size" env-default:"128"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

func MustLoad() *ReconConfig {

	// Processing env config variable and file
	configPath := os.Getenv("RECON_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("RECON_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ReconConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
