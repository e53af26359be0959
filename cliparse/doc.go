// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Candidates: candidate names (default: Obama, Robert, Kiiza, Aliwo)
  - ChartWidth: bar width of the results charts (default: 40, minimum 10)
  - NoColor: disable colored output
  - NoChart: skip the results charts
  - LogLevel: slog level (default: warn)
  - EnvFile: .env file to load (default: .env)

# CLI Flags

	-c           Comma-separated candidate names
	-w           Chart bar width
	-no-color    Disable colored output
	-no-chart    Skip the results charts
	-log-level   debug, info, warn or error
	-env-file    Path to a .env file

# Environment Variables

Flags fall back to environment variables:

	CANDIDATES  → -c
	CHART_WIDTH → -w
	NO_COLOR    → -no-color
	LOG_LEVEL   → -log-level

CLI flags take precedence over environment variables. The env file is loaded
with godotenv and never overrides variables that are already set. A missing
env file is not an error.
*/
package cliparse
