package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"verse-tui/internal/bible"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "List books with their menu abbreviations",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tKEY\tBOOK\tCHAPTERS")
		for _, b := range bible.Books() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", b.Rank(), b.Prefix(), b.Name(), b.MaxChapter())
		}
		return w.Flush()
	},
}
