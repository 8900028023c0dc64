package cmd

import (
	"os"
	"path/filepath"

	"github.com/HossFir/GECKO/config"
	"github.com/HossFir/GECKO/internal/gecko"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// buildCmd rebuilds a plain stoichiometric model into an enzyme-constrained one
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build an enzyme-constrained model from a model and a protein table",
	Long: `Build an enzyme-constrained model from a stoichiometric model JSON file
and a tab-separated protein table (gene key, protein id, molecular weight,
optional sequence).

"gecko build" normalizes reaction directions, splits reversible reactions into
irreversible pairs, expands isoenzyme-catalyzed reactions (full mode), parses
each reaction's gene-protein-reaction rule into enzyme complexes, and injects
the protein pool, protein pseudometabolites, and usage reactions. The result
is written back as JSON with an attached enzyme_constraints section, ready for
a downstream stage to assign kcat values and proteome budgets.`,
	Run: runBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("model", "m", "", "path to the input model JSON")
	buildCmd.Flags().StringP("proteins", "p", "", "path to the tab-separated protein table")
	buildCmd.Flags().StringP("fasta", "f", "", "optional FASTA file with protein sequences")
	buildCmd.Flags().StringP("out", "o", "", "path for the rebuilt model (default: <model>_ec.json)")
	buildCmd.Flags().BoolP("light", "l", false, "build the light variant (no physical isoenzyme expansion)")
	buildCmd.Flags().String("key-suffix", "", "strip gene id suffixes from this separator before lookup, e.g. \".\"")
	buildCmd.Flags().Float64("pool-ub", 0, "upper bound on the protein pool exchange (0 = open)")

	buildCmd.MarkFlagRequired("model")
	buildCmd.MarkFlagRequired("proteins")

	viper.BindPFlag("model", buildCmd.Flags().Lookup("model"))
	viper.BindPFlag("proteins", buildCmd.Flags().Lookup("proteins"))
	viper.BindPFlag("fasta", buildCmd.Flags().Lookup("fasta"))
	viper.BindPFlag("out", buildCmd.Flags().Lookup("out"))
	viper.BindPFlag("light", buildCmd.Flags().Lookup("light"))
	viper.BindPFlag("key-suffix", buildCmd.Flags().Lookup("key-suffix"))
	viper.BindPFlag("pool-ub", buildCmd.Flags().Lookup("pool-ub"))
}

// runBuild reads the model and protein table, runs the transformation, and
// writes the rebuilt model
func runBuild(cmd *cobra.Command, args []string) {
	c := config.New()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	model, err := gecko.ReadModel(c.Model)
	if err != nil {
		log.Fatalf("failed to read model: %v", err)
	}

	db, err := gecko.LoadProteinDB(c.Proteins)
	if err != nil {
		log.Fatalf("failed to load protein table: %v", err)
	}
	if c.Fasta != "" {
		f, err := os.Open(c.Fasta)
		if err != nil {
			log.Fatalf("failed to open FASTA file: %v", err)
		}
		merged, err := db.LoadFasta(f)
		f.Close()
		if err != nil {
			log.Fatalf("failed to read FASTA file: %v", err)
		}
		log.Infow("merged protein sequences", "fasta", c.Fasta, "merged", merged)
	}

	mode := gecko.ModeFull
	if c.Light {
		mode = gecko.ModeLight
	}
	adapter := gecko.Adapter{BasePath: filepath.Dir(c.Model)}
	if c.KeySuffix != "" {
		adapter.KeyFunc = gecko.TrimSuffixKey(c.KeySuffix)
	}

	report, err := gecko.MakeECModel(model, gecko.Options{
		Mode:    mode,
		DB:      db,
		Adapter: adapter,
		Logger:  log,
		PoolUB:  c.PoolUB,
	})
	if err != nil {
		log.Fatalf("failed to build enzyme-constrained model: %v", err)
	}

	out := c.OutPath()
	if err := gecko.WriteModel(out, model); err != nil {
		log.Fatalf("failed to write model: %v", err)
	}
	log.Infow("wrote enzyme-constrained model",
		"path", out,
		"ecEntries", report.ECEntries,
		"enzymes", report.Enzymes,
	)
}
