package config

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Log struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"` // megabytes
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"` // days
}

type Config struct {
	Mode string `yaml:"mode"`
	Addr string `yaml:"addr"`
	// Board is a compact "rows:cols:mines" alternative to Rows, Cols and Mines.
	Board string `yaml:"board"`
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Mines int    `yaml:"mines"`
	Seed  uint64 `yaml:"seed"`
	Log   Log    `yaml:"log"`
}

func Default() *Config {
	p := mines.DefaultParams()
	return &Config{
		Mode:  "production",
		Addr:  "localhost:8000",
		Rows:  p.Rows,
		Cols:  p.Cols,
		Mines: p.MineCount,
		Log: Log{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// Load reads the optional YAML file at path over the defaults, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := Read(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Read(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	if cfg.Board != "" {
		return cfg.SetBoard(cfg.Board)
	}
	return nil
}

// SetBoard overrides Rows, Cols and Mines with a "rows:cols:mines" string.
func (c *Config) SetBoard(board string) error {
	p, err := mines.ParseSeed(board)
	if err != nil {
		return err
	}
	c.Board = board
	c.Rows, c.Cols, c.Mines = p.Unpack()
	return nil
}

func lookupInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	*dst = v
	return nil
}

func (c *Config) LoadEnv() error {
	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		c.Mode = mode
	}
	if addr, ok := os.LookupEnv("MINES_ADDR"); ok {
		c.Addr = addr
	}
	if file, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		c.Log.File = file
	}
	if level, ok := os.LookupEnv("MINES_LOG_LEVEL"); ok {
		c.Log.Level = level
	}
	if board, ok := os.LookupEnv("MINES_BOARD"); ok {
		if err := c.SetBoard(board); err != nil {
			return fmt.Errorf("unable to parse MINES_BOARD: %w", err)
		}
	}
	if err := lookupInt("MINES_ROWS", &c.Rows); err != nil {
		return err
	}
	if err := lookupInt("MINES_COLS", &c.Cols); err != nil {
		return err
	}
	if err := lookupInt("MINES_COUNT", &c.Mines); err != nil {
		return err
	}
	if s, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
		}
		c.Seed = seed
	}
	return nil
}

func (c Config) Params() mines.GameParams {
	return mines.GameParams{Rows: c.Rows, Cols: c.Cols, MineCount: c.Mines}
}

// Rand returns a source seeded with Seed, or a random one when Seed is 0.
func (c Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return mines.NewRand()
	}
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

func (c Config) LogLevel() logrus.Level {
	if c.Development() {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":      c.Mode,
		"addr":      c.Addr,
		"params":    c.Params().Seed(),
		"seed":      c.Seed,
		"log_level": c.Log.Level,
		"log_file":  c.Log.File,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}
