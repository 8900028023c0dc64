package cmd

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/HossFir/GECKO/internal/gecko"
	"github.com/spf13/cobra"
)

// proteinsCmd is for listing the records of a protein table. Useful for
// checking which gene keys will resolve before running a build.
var proteinsCmd = &cobra.Command{
	Use:   "proteins",
	Short: "List the records in a protein table",
	Long: `Lists the records of a tab-separated protein table by gene key along with
their protein id, molecular weight, and sequence length.

	<Key>: <Protein> <MW> <Sequence length>`,
	Run: runProteins,
}

var proteinsPath string

func init() {
	RootCmd.AddCommand(proteinsCmd)

	proteinsCmd.Flags().StringVarP(&proteinsPath, "proteins", "p", "", "path to the tab-separated protein table")
	proteinsCmd.MarkFlagRequired("proteins")
}

func runProteins(cmd *cobra.Command, args []string) {
	db, err := gecko.LoadProteinDB(proteinsPath)
	if err != nil {
		log.Fatalf("failed to load protein table: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	for _, key := range db.Keys() {
		rec, _ := db.Get(key)
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\n", key, rec.Enzyme, rec.MW, len(rec.Sequence))
	}
	w.Flush()
}
