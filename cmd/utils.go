package cmd

import (
	"github.com/rferrer/mundi/pkg/config"
	"github.com/rferrer/mundi/pkg/log"
	"github.com/rferrer/mundi/pkg/source"
	"github.com/urfave/cli/v3"
)

// loadSetup reads the config and builds a lookup client; shared by the
// commands that talk to the country data source.
func loadSetup(c *cli.Command) (*config.Config, *source.Client, error) {
	log.SetGlobalDebug(c.Bool("debug"))

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, err
	}
	client := source.NewClient(cfg.Source.BaseURL, cfg.Source.Timeout.Duration)
	return cfg, client, nil
}
