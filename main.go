package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"f1lapvisualiser/pkg/apps"
	"f1lapvisualiser/pkg/chart"
	"f1lapvisualiser/pkg/config"
	"f1lapvisualiser/pkg/prompt"
	"f1lapvisualiser/pkg/provider/openf1"
	"f1lapvisualiser/pkg/share"
)

var (
	configPath string
	debug      bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
}

func main() {
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	err := run(context.Background())
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrAbandoned):
		logrus.Debug("input closed, bye")
	default:
		fmt.Fprintf(os.Stderr, "Something went wrong: %s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if gap, ok := cfg.UncoveredSeasons(); ok {
		logrus.Warnf("OpenF1 has no data for %d-%d, pick a season from %d on", gap.First, gap.Last, openf1.FirstSeason)
	}

	client := openf1.NewClient(cfg.Provider.BaseURL, cfg.Provider.Timeout, cfg.Provider.Retries)
	renderer := chart.NewRenderer(cfg.Output.Dir, cfg.Output.Width, cfg.Output.Height)

	opts := apps.Options{
		Years:    cfg.Seasons.Years(),
		Progress: cfg.Output.Progress,
	}
	if cfg.Output.Open {
		opts.View = browser.OpenFile
	}
	if cfg.Telegram.Enabled() {
		tg, err := share.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			logrus.WithError(err).Error("telegram sharing disabled")
		} else {
			opts.Sharer = tg
		}
	}

	app := apps.NewApp(os.Stdin, os.Stdout, client, renderer, opts)
	return app.Run(ctx)
}
