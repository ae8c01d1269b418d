package cmd

import (
	"github.com/ms-henglu/valkit/internal/value"
	"github.com/spf13/cobra"
)

func NewCopyCmd() *cobra.Command {
	var opts documentOptions

	cmd := &cobra.Command{
		Use:   "copy <document>",
		Short: "Prints a deep copy of a document",
		Long: `Reads a JSON or HCL document and prints an independent deep copy of it.

The document may be a local path, "-" for stdin, or any go-getter address
(https, git, s3, gcs...). Remote documents are cached under VALKIT_CACHE_DIR.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			copied, err := value.Copy(doc)
			if err != nil {
				return err
			}
			return opts.write(cmd.OutOrStdout(), "document", copied)
		},
	}

	opts.addFlags(cmd)
	return cmd
}
