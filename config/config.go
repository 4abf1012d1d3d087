package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	WsAddr            string        `env:"HEARTS_WS_ADDR" envDefault:":9998"`
	TcpAddr           string        `env:"HEARTS_TCP_ADDR" envDefault:":9999"`
	DeckCopies        int           `env:"HEARTS_DECK_COPIES" envDefault:"2"`
	RoundRestartDelay time.Duration `env:"HEARTS_ROUND_DELAY" envDefault:"10s"`
	Debug             bool          `env:"HEARTS_DEBUG" envDefault:"false"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
