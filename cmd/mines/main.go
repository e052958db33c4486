package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-engine/internal/app"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	flagBoard  string
	cfg        *config.Config

	flagRows, flagCols, flagMines int
	flagSeed                      uint64
	flagAddr                      string
)

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Play Minesweeper in the terminal or over HTTP",
	Long: `mines is a Minesweeper game. The first revealed cell is never a mine.

Run with no arguments to play in the terminal
	mines

Serve a single game over HTTP
	mines serve --addr localhost:8000
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if err := applyFlags(cmd); err != nil {
			return err
		}
		if err := cfg.Params().Validate(); err != nil {
			return err
		}
		if err := setupLogging(); err != nil {
			return err
		}
		log.WithFields(cfg.Fields()).Debug("config")
		return nil
	},
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the terminal",
	RunE:  runPlay,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a single game session over HTTP",
	RunE:  runServe,
}

func applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("board") {
		if err := cfg.SetBoard(flagBoard); err != nil {
			return err
		}
	}
	if flags.Changed("rows") {
		cfg.Rows = flagRows
	}
	if flags.Changed("cols") {
		cfg.Cols = flagCols
	}
	if flags.Changed("mines") {
		cfg.Mines = flagMines
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("addr") {
		cfg.Addr = flagAddr
	}
	return nil
}

func setupLogging() error {
	log.SetLevel(cfg.LogLevel())
	log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development()})

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Level:      cfg.LogLevel(),
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to set up log file: %w", err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	g, err := mines.NewGame(cfg.Params(), cfg.Rand())
	if err != nil {
		return err
	}
	log.WithField("params", cfg.Params().Seed()).Debug("starting game")
	return play(cmd.InOrStdin(), cmd.OutOrStdout(), g)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	log.Info("starting up, mode = ", cfg.Mode)

	a, err := app.New(log, cfg)
	if err != nil {
		return err
	}
	return a.Start(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file path")
	flags.StringVarP(&flagBoard, "board", "b", "", "Board as rows:cols:mines, e.g. 16:30:99")
	flags.IntVarP(&flagRows, "rows", "r", mines.DefaultRows, "Number of board rows")
	flags.IntVarP(&flagCols, "cols", "w", mines.DefaultCols, "Number of board columns")
	flags.IntVarP(&flagMines, "mines", "m", mines.DefaultMineCount, "Number of mines to place on the board")
	flags.Uint64Var(&flagSeed, "seed", 0, "Seed for mine placement (0 picks a random one)")

	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Address to listen on")

	rootCmd.AddCommand(playCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
