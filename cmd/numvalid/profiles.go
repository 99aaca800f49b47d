package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numvalid/pkg/profile"
)

func (a *app) profilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List validator profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := a.registry(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPRECISION\tSCALE\tONLY POSITIVE\tDESCRIPTION")
			for _, p := range registry.All() {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%t\t%s\n", p.Name, p.Precision, p.Scale, p.OnlyPositive, p.Description)
			}
			return tw.Flush()
		},
	}
}

// registry loads the --profiles-file flag or PROFILES_FILE, falling back to the built-in profiles.
func (a *app) registry(ctx context.Context) (*profile.Registry, error) {
	path := a.profilesFile
	if path == "" {
		path = a.cfg.ProfilesFile
	}
	if path == "" {
		return profile.Default(), nil
	}
	return profile.LoadFile(ctx, path)
}
