package cmd

import (
	"fmt"

	"github.com/ms-henglu/valkit/internal/log"
	"github.com/ms-henglu/valkit/internal/options"
	"github.com/ms-henglu/valkit/internal/value"
	"github.com/spf13/cobra"
)

func NewGroupCmd() *cobra.Command {
	var opts documentOptions
	var groupBy string
	var label string

	cmd := &cobra.Command{
		Use:   "group <document>",
		Short: "Groups records into a headed option list",
		Long: `Sorts the records of a document by a numeric key and groups the records
sharing it. Every group is preceded by a header record {"header": <label>},
where <label> is the first non-null label of the group, and its records are
copied with "header" set to null.

The document is a list of records, or a mapping whose "records" attribute holds
the list (the form HCL documents use).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			records, err := recordsOf(doc)
			if err != nil {
				return err
			}

			groups, err := options.BuildGroupedList(records, groupBy, label)
			if err != nil {
				return fmt.Errorf("failed to group records: %w", err)
			}
			log.Debug("Grouped %d record(s) into %d list entries", len(records), len(groups))
			return opts.write(cmd.OutOrStdout(), "groups", value.SequenceVal(groups...))
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&groupBy, "group-by", "id", "Field holding the numeric group key")
	cmd.Flags().StringVar(&label, "label", "name", "Field holding the group header label")
	return cmd
}
