package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numvalid/pkg/checkapi"
	"github.com/dmitrymomot/numvalid/pkg/config"
	"github.com/dmitrymomot/numvalid/pkg/httpserver"
	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
)

// errInvalidValues signals that at least one checked value was rejected.
var errInvalidValues = errors.New("invalid values")

// AppConfig is the environment-driven configuration of the binary.
type AppConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Name         string `env:"APP_NAME" envDefault:"numvalid"`
	ProfilesFile string `env:"PROFILES_FILE"`

	Number numvalidator.Config
	HTTP   httpserver.Config
	Check  checkapi.Config
}

type app struct {
	cfg    AppConfig
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	envFiles     []string
	profilesFile string
}

// Execute runs the CLI and returns the process exit code:
// 0 on success, 1 when a checked value is invalid, 2 on usage or runtime errors.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInvalidValues):
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "numvalid",
		Short: "Validate decimal number strings against precision, scale and sign rules",
		Long: `numvalid checks whether strings are well-formed decimal numbers.

A number has an optional sign, integer digits and optional fractional digits
after '.' or ','. Precision limits the total digit count, scale limits the
digits after the separator, and --only-positive rejects a leading '-'.

Examples:
  numvalid check --precision 17 --scale 2 123.45 -10,5
  numvalid check --profile price < amounts.txt
  numvalid profiles --profiles-file profiles.yaml
  numvalid serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load before reading configuration")
	root.PersistentFlags().StringVar(&a.profilesFile, "profiles-file", "", "YAML profiles file (defaults to PROFILES_FILE)")

	root.AddCommand(a.checkCmd(), a.profilesCmd(), a.serveCmd())
	return root
}

func (a *app) loadConfig() error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}
	return config.Load(&a.cfg)
}
