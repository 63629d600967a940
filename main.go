package main

import (
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileview/config"
	"github.com/milk9111/tileview/levels"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Name = "tileview"
	app.Usage = "view a tile map and pan it by dragging"
	app.Version = "0.1.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			EnvVars: []string{"TILEVIEW_CONFIG"},
			Value:   "tileview.yaml",
			Usage:   "path to config file",
		},
		&cli.StringFlag{
			Name:  "tileset",
			Usage: "tileset image on disk (png, bmp or webp); default is the embedded one",
		},
		&cli.StringFlag{
			Name:  "level",
			Usage: "level name or path",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "trace, debug, info, warn or error",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "show the debug overlay",
		},
		&cli.BoolFlag{
			Name:    "base-monitor",
			Aliases: []string{"m"},
			Usage:   "use base monitor instead of primary (for multi-monitor setups)",
		},
	}

	app.Action = run

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("tileview")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	if c.IsSet("tileset") {
		cfg.Tileset = c.String("tileset")
	}
	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err, 1)
	}

	lvl, _ := cfg.ZerologLevel()
	zerolog.SetGlobalLevel(lvl)
	log.Info().Str("version", c.App.Version).Str("config", c.String("config")).Msg("starting tileview")

	level, err := levels.Load(cfg.Level)
	if err != nil {
		return cli.Exit(err, 1)
	}
	log.Debug().Str("level", level.Name).Int("width", level.Width()).Int("height", level.Height()).Msg("level loaded")

	if c.Bool("base-monitor") {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	game := NewGame(cfg, level.Tiles)
	game.Start(ctx)

	if err := ebiten.RunGame(game); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
