// Package cmd is for command line interactions with the gecko application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gecko",
	Short: `Rebuild a genome-scale metabolic model into an enzyme-constrained one.
Reversible reactions are split, isoenzymes expanded, and protein usage
reactions added so kcat and molecular-weight constraints can be applied`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
