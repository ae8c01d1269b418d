package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ms-henglu/valkit/internal/datefmt"
	"github.com/spf13/cobra"
)

func NewDateCmd() *cobra.Command {
	var location string
	f := &datefmt.Formatter{Location: time.UTC, Now: time.Now}

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Formats dates for display",
		Long: `Formats a date the way the display helpers do: the wall clock found in the
input is kept and treated as UTC. Inputs carrying a zone are converted into
--location first.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root := cmd.Root(); root.PersistentPreRun != nil {
				root.PersistentPreRun(cmd, args)
			}
			loc, err := time.LoadLocation(location)
			if err != nil {
				return fmt.Errorf("failed to load location %q: %w", location, err)
			}
			f.Location = loc
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&location, "location", "l", "UTC", "IANA time zone zoned inputs are converted into")

	cmd.AddCommand(dateCmd("format <date>", "Prints the day as \"Jan 2, 2006\"", func(s string) (string, error) {
		return f.FormatDate(s), nil
	}))
	cmd.AddCommand(dateCmd("json <date>", "Prints the start of the day as a JSON date-time", f.UTCJSONDate))
	cmd.AddCommand(dateCmd("only-date <date>", "Prints the calendar date", f.UTCOnlyDate))
	cmd.AddCommand(dateCmd("date-time <date>", "Prints the date and time as \"Jan 2, 2006 3:04 PM\"", f.DateAndTime))
	cmd.AddCommand(dateCmd("from-now <date>", "Describes the date relative to now", f.DateFromNow))

	cmd.AddCommand(&cobra.Command{
		Use:   "next-saturday <date> <weeks>",
		Short: "Prints the Saturday closing the week <weeks> weeks after the date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weeks, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of weeks %q: %w", args[1], err)
			}
			out, err := f.NextSaturdayByWeek(args[0], weeks)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	})

	return cmd
}

func dateCmd(use, short string, format func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := format(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
