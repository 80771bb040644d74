package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bricker/pbxproj-formatter/pkg/errors"
	"github.com/bricker/pbxproj-formatter/pkg/pbxproj"
)

// NewFormatCommand creates the format command.
func (a *App) NewFormatCommand() *cobra.Command {
	var (
		policy   string
		check    bool
		toStdout bool
		report   bool
	)

	cmd := &cobra.Command{
		Use:   "format <file>...",
		Short: "Normalize project files in place",
		Long: `Format normalizes one or more project-descriptor files.

List sections are deduplicated and sorted, and conflicting
CURRENT_PROJECT_VERSION declarations collapse to the value chosen by
--policy. Each file is replaced atomically via a sibling temp file; any
fatal parse error aborts the run with the original file untouched.`,
		Example: `  pbxfmt format MyApp.xcodeproj/project.pbxproj
  pbxfmt format --policy lowest project.pbxproj
  pbxfmt format --check project.pbxproj`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.formatOptions(policy)
			if err != nil {
				return err
			}

			needFormat := 0
			for _, path := range args {
				switch {
				case check:
					rep, err := pbxproj.CheckFile(path, opts)
					if err != nil {
						return err
					}
					if rep.Changed {
						needFormat++
						fmt.Fprintln(cmd.OutOrStdout(), path)
					}
				case toStdout:
					src, err := os.ReadFile(path)
					if err != nil {
						return errors.WrapIO("read", path, err)
					}
					out, _, err := pbxproj.Format(src, opts)
					if err != nil {
						return err
					}
					if _, err := cmd.OutOrStdout().Write(out); err != nil {
						return errors.WrapIO("write", "stdout", err)
					}
				default:
					rep, err := pbxproj.FormatFile(path, opts)
					if err != nil {
						return err
					}
					if report {
						out, err := rep.YAML()
						if err != nil {
							return err
						}
						fmt.Fprint(cmd.OutOrStdout(), out)
					} else if rep.Changed {
						fmt.Fprintf(cmd.OutOrStdout(), "normalized %s\n", path)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "%s already normalized\n", path)
					}
				}
			}

			if check && needFormat > 0 {
				return fmt.Errorf("%d file(s) need formatting", needFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "version resolution policy: highest or lowest (default highest)")
	cmd.Flags().BoolVar(&check, "check", false, "report files that would change without writing anything")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "write the result to stdout instead of replacing the file")
	cmd.Flags().BoolVar(&report, "report", false, "print a YAML normalization report per file")

	return cmd
}

// NewScanCommand creates the scan command.
func (a *App) NewScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>",
		Short: "Show version tokens without modifying the file",
		Long: `Scan lists every CURRENT_PROJECT_VERSION token found in the file, in
source order, together with the value each policy would resolve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := pbxproj.ScanFile(args[0])
			if err != nil {
				return err
			}
			out, err := report.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// NewWatchCommand creates the watch command.
func (a *App) NewWatchCommand() *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Re-normalize files whenever they change",
		Long: `Watch re-runs format on each file whenever it changes on disk, which
keeps a project file canonical while a rebase or merge tool rewrites it.
A malformed intermediate state is logged and skipped rather than ending
the watch. Stops on interrupt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.formatOptions(policy)
			if err != nil {
				return err
			}
			return a.watch(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&policy, "policy", "", "version resolution policy: highest or lowest (default highest)")

	return cmd
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pbxfmt %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

// formatOptions builds pbxproj options from flags and config. The flag wins
// over the config file value.
func (a *App) formatOptions(policyFlag string) (pbxproj.Options, error) {
	selector := policyFlag
	if selector == "" {
		selector = a.config.Policy
	}
	policy, err := pbxproj.ParsePolicy(selector)
	if err != nil {
		return pbxproj.Options{}, err
	}
	return pbxproj.Options{Policy: policy, Logger: a.logger}, nil
}
