package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-elect/roster"
)

const (
	defaultChartWidth = 40
	minChartWidth     = 10
)

type Config struct {
	Candidates []string
	ChartWidth int
	NoColor    bool
	NoChart    bool
	LogLevel   slog.Level
	EnvFile    string
}

// ParseFlags reads flags, then the env file, then environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var candidates, logLevel string

	fs := flag.NewFlagSet("quickly-elect", flag.ContinueOnError)

	fs.StringVar(&candidates, "c", "", "Comma-separated candidate names")
	fs.IntVar(&cfg.ChartWidth, "w", 0, "Chart bar width in characters")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&cfg.NoChart, "no-chart", false, "Skip the results charts")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Path to a .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if candidates == "" {
		candidates = os.Getenv("CANDIDATES")
	}
	if candidates == "" {
		candidates = strings.Join(roster.DefaultCandidates, ",")
	}
	cfg.Candidates = splitList(candidates)
	if len(cfg.Candidates) == 0 {
		return Config{}, errors.New("at least one candidate required (use -c or CANDIDATES env)")
	}

	if cfg.ChartWidth == 0 {
		if widthStr := os.Getenv("CHART_WIDTH"); widthStr != "" {
			width, err := strconv.Atoi(widthStr)
			if err != nil {
				return Config{}, errors.New("invalid CHART_WIDTH env variable")
			}
			cfg.ChartWidth = width
		} else {
			cfg.ChartWidth = defaultChartWidth
		}
	}
	if cfg.ChartWidth < minChartWidth {
		return Config{}, fmt.Errorf("chart width must be at least %d", minChartWidth)
	}

	if !cfg.NoColor && os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel == "" {
		logLevel = "warn"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
