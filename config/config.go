package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration, read from the environment once at boot.
type App struct {
	Port string `envconfig:"PORT" default:"8080"`

	// Either a full DSN/URL or the individual DB_* parts below.
	MySQLURL string `envconfig:"MYSQL_URL"`
	DBUser   string `envconfig:"DB_USER" default:"root"`
	DBPass   string `envconfig:"DB_PASS"`
	DBHost   string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort   string `envconfig:"DB_PORT" default:"3306"`
	DBName   string `envconfig:"DB_NAME" default:"hammer_db"`

	// ACCESS_TOKEN keeps the secret's historical env name.
	JWTSecret string        `envconfig:"ACCESS_TOKEN" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"1h"`

	StripeSecretKey string `envconfig:"STRIPE_SECRET_KEY"`

	AdminEmail  string `envconfig:"ADMIN_EMAIL"`
	CORSOrigins string `envconfig:"CORS_ORIGINS"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
