package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLinesCmd(a *app) *cobra.Command {
	var pages string

	cmd := &cobra.Command{
		Use:   "lines <file>",
		Short: "Print the cleaned line sequence with page numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ext, err := a.extractor(args[0], pages)
			if err != nil {
				return err
			}
			lines, warnings, err := ext.Lines()
			if err != nil {
				return err
			}
			logWarnings(args[0], warnings)

			w := cmd.OutOrStdout()
			for i, l := range lines {
				fmt.Fprintf(w, "[%03d] p%d %s\n", i, l.Page, l.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pages, "pages", "", "Pages to read, e.g. 2-31 or 1,3,5")
	return cmd
}
