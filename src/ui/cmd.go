package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"slicepuzzle/src/loader"
	"slicepuzzle/src/logx"
	"slicepuzzle/src/puzzle"
	clic "slicepuzzle/src/ui/cli"
	"slicepuzzle/src/ui/gui"
	"slicepuzzle/src/ui/gui/gbase"
	"slicepuzzle/src/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

const logfile string = "slicepuzzle.log"

// GetLogger builds the logger from the log flags. Console mode ignores w.
func GetLogger(w io.Writer, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(w)
	return l
}

// loadConfig reads the config file and applies command line overrides on top.
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("image") {
		cfg.Image = c.String("image")
	}
	if c.IsSet("rows") {
		cfg.Rows = int(c.Int("rows"))
	}
	if c.IsSet("cols") {
		cfg.Cols = int(c.Int("cols"))
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("grid must be positive, got %dx%d", cfg.Rows, cfg.Cols)
	}
	return cfg, nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync()

	cfg, err := loadConfig(c)
	if err != nil {
		logger.Errorf("error load config: %v", err)
		return err
	}
	g, err := gui.NewGUI(cfg, logger)
	if err != nil {
		logger.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	logger.Infof("start gui: image %q grid %dx%d", cfg.Image, cfg.Rows, cfg.Cols)
	return g.Run()
}

func RunInfo(ctx context.Context, c *cli.Command) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := logx.NewNop()
	if c.Bool("console") {
		logger = GetLogger(nil, c)
	}
	info, err := clic.Inspect(ctx, loader.NewLoader(logger, nil), cfg.Image, puzzle.Grid{Rows: cfg.Rows, Cols: cfg.Cols})
	if err != nil {
		return fmt.Errorf("error inspect %q: %w", cfg.Image, err)
	}
	info.Print(c.Root().Writer)
	return nil
}

func runGUIAction(ctx context.Context, c *cli.Command) error {
	if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
		return fmt.Errorf("error GUI: %w", err)
	}
	return nil
}

func RunSlicePuzzle() error {
	imf := &cli.StringFlag{
		Name:    "image",
		Aliases: []string{"i"},
		Usage:   "image path, http(s) URL or generated:WxH",
	}
	cfgf := &cli.StringFlag{
		Name:  "config",
		Usage: "config file (.json or .yaml)",
		Value: gconf.DefaultFile,
	}
	rf := &cli.IntFlag{
		Name:  "rows",
		Usage: "grid rows",
	}
	colf := &cli.IntFlag{
		Name:  "cols",
		Usage: "grid columns",
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "level log",
		Value:   "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	return (&cli.Command{
		Name:  "slicepuzzle",
		Usage: "sliding tiles jigsaw",
		// root flags are inherited by the subcommands
		Flags: []cli.Flag{imf, cfgf, rf, colf, df, lf, cf},
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "play in a window",
				Action: runGUIAction,
			},
			{
				Name:   "info",
				Usage:  "print image and tile geometry",
				Action: RunInfo,
			},
		},
		Action: runGUIAction,
	}).Run(context.Background(), os.Args)
}
