package config

import "github.com/caarlos0/env/v10"

// Config holds all process configuration, parsed once at startup and handed
// to constructors explicitly. Nothing reads the environment after Load.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	DBURL     string `env:"DB_URL,required"`
	JWTSecret string `env:"JWT_SECRET,required"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	ReservationSweepEnabled bool   `env:"RESERVATION_SWEEP_ENABLED" envDefault:"true"`
	ReservationSweepSpec    string `env:"RESERVATION_SWEEP_SPEC" envDefault:"0 3 * * *"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
