package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/devraulu/urlenc/pkg/cli"
	"github.com/devraulu/urlenc/pkg/config"
	"github.com/devraulu/urlenc/pkg/logger"
	"github.com/devraulu/urlenc/pkg/process"
	"github.com/devraulu/urlenc/pkg/urlcanon"
)

var (
	ErrDecodeUnsupported = errors.New("decoding is not supported")
)

// Run is the whole program: it parses args, executes the command and
// returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd, err := cli.Parse(args, stdout)
	if err != nil {
		cli.Report(stderr, err)
		return 1
	}

	if cmd.Action == cli.ActionNone {
		return 0
	}

	cfg, err := config.Load(cmd.ConfigPath)
	if err != nil {
		cli.Report(stderr, fmt.Errorf("couldn't load config: %w", err))
		return 1
	}

	logger.InitLogger(cfg, stderr, cmd.Verbose)

	out, err := Execute(cfg, cmd)
	if err != nil {
		slog.Debug("command failed", slog.String("action", cmd.Action.String()), slog.Any("err", err))
		cli.Report(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, out)
	return 0
}

// Execute carries out a parsed command and returns the line to print.
func Execute(cfg *config.Config, cmd cli.Command) (string, error) {
	switch cmd.Action {
	case cli.ActionEncode:
		out, err := encode(cfg, cmd)
		if err != nil {
			return "", fmt.Errorf("couldn't encode input: %w", err)
		}
		return out, nil
	case cli.ActionDecode:
		return "", fmt.Errorf("couldn't decode input: %w", ErrDecodeUnsupported)
	default:
		return "", cli.ErrInvalidSubcommand
	}
}

func encode(cfg *config.Config, cmd cli.Command) (string, error) {
	slog.Info("encoding input", slog.String("input", cmd.Input), slog.Bool("normalize", cmd.Normalize || cfg.Normalize.Enabled))

	input := cmd.Input
	if cmd.Normalize || cfg.Normalize.Enabled {
		// purell must not see input the URL grammar already rejects.
		if _, err := urlcanon.Parse(input); err != nil {
			return "", err
		}

		flags, err := process.ParseFlags(cfg.Normalize.Flags)
		if err != nil {
			return "", err
		}

		normalized, err := process.Normalize(input, flags)
		if err != nil {
			return "", fmt.Errorf("couldn't normalize: %w", err)
		}
		slog.Debug("normalized input", slog.String("input", input), slog.String("normalized", normalized))
		input = normalized
	}

	out, err := urlcanon.Canonical(input)
	if err != nil {
		return "", err
	}

	slog.Debug("encoded", slog.String("output", out))
	return out, nil
}
