package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/e-library/pkg/auth"
	"github.com/Astemirdum/e-library/pkg/kafka"
	"github.com/Astemirdum/e-library/pkg/logger"
	"github.com/Astemirdum/e-library/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8060"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Stripe struct {
	SecretKey  string `envconfig:"STRIPE_SECRET_KEY" json:"-"`
	SuccessURL string `envconfig:"STRIPE_SUCCESS_URL" default:"https://nhom-18-e-library.vercel.app/landing/transactionSuccess"`
	Currency   string `envconfig:"STRIPE_CURRENCY" default:"usd"`
}

type Config struct {
	Server   HTTPServer   `yaml:"server"`
	Database postgres.DB  `yaml:"db"`
	Kafka    kafka.Config `yaml:"kafka"`
	Auth     auth.Config  `yaml:"auth"`
	Stripe   Stripe       `yaml:"stripe"`
	Log      logger.Log   `yaml:"log"`
	// AppURL prefixes generated book photo urls.
	AppURL string `envconfig:"APP_URL" default:"http://localhost:8060"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		if config.Auth.Secret == "" {
			log.Fatal("NewConfig JWT_SECRET must not be empty")
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
