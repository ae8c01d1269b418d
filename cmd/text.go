package cmd

import (
	"fmt"
	"strings"

	"github.com/ms-henglu/valkit/internal/text"
	"github.com/spf13/cobra"
)

func NewSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <text...>",
		Short: "Converts text into a URL slug",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text.Slug(strings.Join(args, " ")))
			return err
		},
	}
}

func NewCapitalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize <text...>",
		Short: "Upper-cases the first letter of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text.Capitalize(strings.Join(args, " ")))
			return err
		},
	}
}

func NewYouTubeIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "youtube-id <url>",
		Short: "Extracts the video ID from a YouTube URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := text.YouTubeID(args[0])
			if !ok {
				return fmt.Errorf("no YouTube video ID found in %s", args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), id)
			return err
		},
	}
}
