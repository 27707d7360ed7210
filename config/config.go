package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is loaded once at startup from the environment. A .env file in the
// working directory is applied first when present.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	GinMode       string `env:"GIN_MODE" envDefault:"debug"`
	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://127.0.0.1:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"jornal"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	CloudinaryURL string `env:"CLOUDINARY_URL"`

	// Only addresses under this suffix may sign in or sign up.
	AllowedEmailDomain string `env:"ALLOWED_EMAIL_DOMAIN" envDefault:"@prof.educacao.sp.gov.br"`

	// How many recent published posts a listing snapshot holds.
	ListingSnapshotSize int `env:"LISTING_SNAPSHOT_SIZE" envDefault:"50"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
