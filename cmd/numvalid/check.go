package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numvalid/pkg/numvalidator"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		precision    int
		scale        int
		onlyPositive bool
		profileName  string
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "check [flags] [--] [values...]",
		Short: "Check values, one result per line",
		Long: `Check prints "<value>\t<reason>" for every value, where reason is "ok" or
the first failed rule. Values are read from stdin, one per line, when none
are given as arguments; blank lines are reported as "empty". The exit code
is 1 if any value is invalid.

Flags must come before the values. Everything after the first value is
treated as a value, but a leading negative number still looks like a flag,
so separate it with "--":

  numvalid check --precision 17 --scale 2 -- -1 2,50

Constraints default to NUMBER_PRECISION, NUMBER_SCALE and NUMBER_ONLY_POSITIVE.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.checkValidator(cmd, profileName, precision, scale, onlyPositive)
			if err != nil {
				return err
			}

			values := args
			if len(values) == 0 {
				values, err = a.readLines()
				if err != nil {
					return err
				}
			}

			invalid := 0
			for _, value := range values {
				reason := v.Inspect(value)
				if !reason.Valid() {
					invalid++
				}
				if !quiet {
					fmt.Fprintf(a.stdout, "%s\t%s\n", value, reason)
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidValues, invalid, len(values))
			}
			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntVar(&precision, "precision", 0, "maximum number of digits")
	cmd.Flags().IntVar(&scale, "scale", 0, "maximum number of digits after the separator")
	cmd.Flags().BoolVar(&onlyPositive, "only-positive", false, "reject values with a leading '-'")
	cmd.Flags().StringVar(&profileName, "profile", "", "use a named profile instead of explicit constraints")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing, report through the exit code only")
	cmd.MarkFlagsMutuallyExclusive("profile", "precision")
	cmd.MarkFlagsMutuallyExclusive("profile", "scale")
	cmd.MarkFlagsMutuallyExclusive("profile", "only-positive")

	return cmd
}

// checkValidator resolves constraints: named profile, then flags over env config.
func (a *app) checkValidator(cmd *cobra.Command, profileName string, precision, scale int, onlyPositive bool) (*numvalidator.Validator, error) {
	if profileName != "" {
		registry, err := a.registry(cmd.Context())
		if err != nil {
			return nil, err
		}
		p, err := registry.Get(profileName)
		if err != nil {
			return nil, err
		}
		return p.Validator(), nil
	}

	cfg := a.cfg.Number
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = scale
	}
	if cmd.Flags().Changed("only-positive") {
		cfg.OnlyPositive = onlyPositive
	}
	return numvalidator.NewFromConfig(cfg)
}

// maxLineBytes bounds a single stdin line.
const maxLineBytes = 1 << 20

// readLines returns every stdin line, blank ones included, so output stays
// aligned with input.
func (a *app) readLines() ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(a.stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}
