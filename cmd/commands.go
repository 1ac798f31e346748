package main

import (
	"fmt"

	"github.com/restartfu/bottleneck/internal/adapters/tui"
	"github.com/restartfu/bottleneck/internal/bottleneck"
	"github.com/restartfu/bottleneck/internal/catalog"
	"github.com/restartfu/bottleneck/internal/logging"
	"github.com/restartfu/bottleneck/internal/report"
	"github.com/spf13/cobra"
)

func newCalcCmd(env *runtimeEnv) *cobra.Command {
	var cpu, gpu, output string
	cmd := &cobra.Command{
		Use:   "calc [cpu] [gpu]",
		Short: "Compute the bottleneck of a CPU and GPU pairing",
		Example: `  bottleneck calc "Intel i9-13900K" "RTX 4090"
  bottleneck calc --cpu "AMD Ryzen 5 3600" --gpu "RTX 3060" --output json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(output)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cpu = args[0]
			}
			if len(args) > 1 {
				gpu = args[1]
			}
			result, err := env.service.Bottleneck(cmd.Context(), cpu, gpu)
			if err != nil {
				logger := logging.Component(env.logger, "cli")
				logger.Error().Err(err).
					Str("cpu", cpu).
					Str("gpu", gpu).
					Msg("compute bottleneck")
				return err
			}
			return report.Write(cmd.OutOrStdout(), result, format)
		},
	}
	cmd.Flags().StringVar(&cpu, "cpu", "", "CPU model name")
	cmd.Flags().StringVar(&gpu, "gpu", "", "GPU model name")
	cmd.Flags().StringVarP(&output, "output", "o", string(report.FormatText), "output format: text, json or yaml")
	return cmd
}

func newListCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:       "list <cpus|gpus>",
		Short:     "List catalog models with their benchmark scores",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"cpus", "gpus"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := env.service.Catalog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return report.WriteComponents(cmd.OutOrStdout(), cat.Components)
		},
	}
}

func newHostCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Detect the local CPU and match it against the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := env.service.HostCPU(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "model:\t%s\n", host.Model)
			if host.Matched {
				fmt.Fprintf(out, "match:\t%s\n", host.Match)
			} else {
				fmt.Fprintln(out, "match:\tnone")
			}
			return nil
		},
	}
}

func newTUICmd(env *runtimeEnv) *cobra.Command {
	var detect bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick a CPU and GPU interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.Component(env.logger, "tui")
			var opts []tui.Option
			if detect {
				var sel bottleneck.Selection
				host, err := env.service.HostCPU(cmd.Context())
				if err != nil {
					logger.Warn().Err(err).Msg("host cpu detection failed")
				} else if host.Matched {
					if err := sel.Select(env.catalog, catalog.CPUs, host.Match); err != nil {
						return err
					}
					opts = append(opts, tui.WithSelection(sel))
				}
			}
			return tui.Run(tui.New(cmd.Context(), env.service, logger, opts...))
		},
	}
	cmd.Flags().BoolVar(&detect, "detect-host", false, "preselect the CPU of this machine when it is in the catalog")
	return cmd
}
