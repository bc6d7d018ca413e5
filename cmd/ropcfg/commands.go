package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/httpx"
	"github.com/ib-77/ropx/pkg/rop/solo"
)

var errInvalidConfig = errors.New("one or more config files are invalid")

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ropcfg",
		Short:         "Inspect result adapter configuration files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCommand(), newShowCommand())
	return root
}

// loadConfig tags load failures with the file they came from.
func loadConfig(ctx context.Context, path string) rop.Result[httpx.Config] {
	return solo.MapErrors(ctx, rop.FromTuple(httpx.LoadConfig(path)),
		func(_ context.Context, e rop.Error) rop.Error {
			return rop.NewError(e.Message()).WithTag("File", path)
		})
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate adapter config files",
		Example: `  # Validate several files at once
  ropcfg validate orders.yaml billing.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcomes := make([]rop.Outcome, len(args))
			for i, path := range args {
				r := loadConfig(cmd.Context(), path)
				if r.IsSuccess() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (namespace %s)\n", path, r.Value().Namespace)
				}
				outcomes[i] = r
			}

			all := rop.Merge(outcomes...)
			for _, e := range all.Errors() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", rop.GetString(e, "File", "?"), e.Message())
			}
			if all.IsFailure() {
				return errInvalidConfig
			}
			return nil
		},
	}
}

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print a config file with its defaults applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := solo.Try(cmd.Context(), loadConfig(cmd.Context(), args[0]),
				func(_ context.Context, cfg httpx.Config) ([]byte, error) {
					return yaml.Marshal(cfg)
				})
			if r.IsFailure() {
				return r.Err()
			}
			_, err := cmd.OutOrStdout().Write(r.Value())
			return err
		},
	}
}
