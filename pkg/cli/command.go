package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	ErrMissingInput      = errors.New("input string required")
	ErrInvalidSubcommand = errors.New("not a valid subcommand")
)

type Action int

const (
	ActionNone Action = iota
	ActionEncode
	ActionDecode
)

func (a Action) String() string {
	switch a {
	case ActionEncode:
		return "encode"
	case ActionDecode:
		return "decode"
	default:
		return "none"
	}
}

// Command is the validated result of argument parsing.
type Command struct {
	Action     Action
	Input      string
	Verbose    bool
	ConfigPath string
	Normalize  bool
}

// MissingInputError is returned when a subcommand gets no input string.
type MissingInputError struct {
	Action Action
}

func (e *MissingInputError) Error() string {
	switch e.Action {
	case ActionEncode:
		return ErrMissingInput.Error() + " for encoding"
	case ActionDecode:
		return ErrMissingInput.Error() + " for decoding"
	}
	return ErrMissingInput.Error()
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// Parse runs args through the command tree. Help and usage go to out. When
// only help was requested the returned Command has ActionNone.
func Parse(args []string, out io.Writer) (Command, error) {
	var cmd Command

	root := &cobra.Command{
		Use:           "urlenc",
		Short:         "Percent encoding cli",
		Long:          "Canonicalize URLs by re-encoding their query string with percent encoding.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(c *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unknown command %q: %w", args[0], ErrInvalidSubcommand)
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			return ErrInvalidSubcommand
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.BoolVarP(&cmd.Verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.StringVar(&cmd.ConfigPath, "config", "", "path to a TOML config file")
	flags.BoolVar(&cmd.Normalize, "normalize", false, "normalize scheme, host and path before encoding")

	root.AddCommand(
		subcommand(&cmd, ActionEncode, "e", "encode string with percent encoding", "enter string to encode"),
		subcommand(&cmd, ActionDecode, "d", "decode string with percent encoding", "enter string to decode"),
	)

	if err := root.Execute(); err != nil {
		return Command{}, err
	}

	return cmd, nil
}

func subcommand(cmd *Command, action Action, alias, short, argHelp string) *cobra.Command {
	return &cobra.Command{
		Use:     action.String() + " <input>",
		Aliases: []string{alias},
		Short:   short,
		Long:    short + "\n\n<input>: " + argHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &MissingInputError{Action: action}
			}
			cmd.Action = action
			cmd.Input = args[0]
			return nil
		},
	}
}
