package cmd

import (
	"github.com/HossFir/GECKO/internal/gecko"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd validates a model without rebuilding it. Useful before committing
// to a long build: it reports reserved-identifier collisions, incompatible
// import formats, and ambiguous GPR logic.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a model's identifiers and GPR rules without rebuilding it",
	Run:   runCheck,
}

var checkModelPath string

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkModelPath, "model", "m", "", "path to the input model JSON")
	checkCmd.MarkFlagRequired("model")
}

func runCheck(cmd *cobra.Command, args []string) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	model, err := gecko.ReadModel(checkModelPath)
	if err != nil {
		log.Fatalf("failed to read model: %v", err)
	}

	if err := gecko.Check(model, log); err != nil {
		log.Fatalf("model failed validation: %v", err)
	}
	log.Infow("model passed validation",
		"reactions", len(model.Rxns),
		"metabolites", len(model.Mets),
		"genes", len(model.Genes),
	)
}
