package cmd

import (
	"github.com/ms-henglu/valkit/internal/log"
	"github.com/ms-henglu/valkit/internal/options"
	"github.com/ms-henglu/valkit/internal/value"
	"github.com/spf13/cobra"
)

func NewFilterCountriesCmd() *cobra.Command {
	var opts documentOptions

	cmd := &cobra.Command{
		Use:   "filter-countries <document> <search>",
		Short: "Filters country records by name or calling code",
		Long: `Keeps the records whose "name" or "countryCode" contains <search>, ignoring case.

The document is a list of records, or a mapping whose "records" attribute holds
the list.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			records, err := recordsOf(doc)
			if err != nil {
				return err
			}

			matched := options.FilterPhoneCountry(records, args[1])
			if len(matched) == 0 {
				log.Hint("No country matches " + args[1])
			}
			return opts.write(cmd.OutOrStdout(), RecordsAttribute, value.SequenceVal(matched...))
		},
	}

	opts.addFlags(cmd)
	return cmd
}
