package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	PostgresDSN string `env:"POSTGRES_DSN,required,notEmpty"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`

	// GameSlot names the persisted active-game row, so several score
	// boards can share one database.
	GameSlot string `env:"GAME_SLOT" envDefault:"active"`

	HistoryPageSize int `env:"HISTORY_PAGE_SIZE" envDefault:"50"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}
