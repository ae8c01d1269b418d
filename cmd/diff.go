package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ms-henglu/valkit/internal/log"
	"github.com/ms-henglu/valkit/internal/value"
	"github.com/spf13/cobra"
)

// ErrDifferenceFound is returned by diff --exit-code when the documents differ.
var ErrDifferenceFound = errors.New("documents differ")

func NewDiffCmd() *cobra.Command {
	var opts documentOptions
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "diff <prev> <current>",
		Short: "Reports the first field that differs between two documents",
		Long: `Compares two mapping documents and prints the first difference found.

Only fields of <prev> are visited, in order. Arrays and date-times are compared
as a whole and reported with their current value. Nested mappings are reported
as a chain of fields ending at the differing one. A field missing from
<current> is reported without a value.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			current, err := opts.load(cmd.Context(), args[1])
			if err != nil {
				return err
			}

			d, err := value.Diff(prev, current)
			if err != nil {
				return err
			}
			if d == nil {
				log.Success("No difference found")
				return nil
			}

			log.Section(fmt.Sprintf("Difference at %s", strings.Join(d.Path(), ".")))
			if err := opts.write(cmd.OutOrStdout(), "difference", d.ToValue()); err != nil {
				return err
			}
			if exitCode {
				return ErrDifferenceFound
			}
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit with an error when a difference is found")
	return cmd
}
