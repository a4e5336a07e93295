package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"inkwell/internal/infrastructure/broker"
	"inkwell/internal/infrastructure/database"
	"inkwell/internal/infrastructure/minio"
	"inkwell/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	MinIOGetter     minio.GetterConfig     `yaml:"minio_getter"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Tasks           TasksConfig            `yaml:"tasks"`
	Logger          logger.Config          `yaml:"logger"`
	Default         DefaultConfig          `yaml:"default"`
}

type DefaultConfig struct {
	Address       string `yaml:"address"`
	PublicAddress string `yaml:"public_address"`
}

type TasksConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address must be set")
	}
	if c.MinIOUploader.Bucket == "" {
		return errors.New("minio_uploader.bucket must be set")
	}
	if c.Default.PublicAddress == "" {
		c.Default.PublicAddress = "http://" + c.Default.Address
	}
	if c.MinIOUploader.PublicAddress == "" {
		c.MinIOUploader.PublicAddress = c.Default.PublicAddress
	}

	return nil
}
