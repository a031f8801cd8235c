package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	tomlconfig "dilemma/internal/adapters/config/toml"
	"dilemma/internal/adapters/render/standings"
	"dilemma/internal/application"
	"dilemma/internal/ports"
)

type app struct {
	configLoader      ports.ConfigLoader
	standingsRenderer func([]application.Standing, standings.RenderOptions) (string, error)
	clock             ports.Clock
}

func wireApp() (*app, error) {
	loader, err := tomlconfig.NewLoader(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire config loader: %w", err)
	}

	return &app{
		configLoader:      loader,
		standingsRenderer: standings.Render,
		clock:             ports.SystemClock{},
	}, nil
}
