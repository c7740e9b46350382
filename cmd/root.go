package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eabc2acep",
	Short: "EABC to ACE Studio encoder",
	Long:  `Converts EABC notation (ABC with {key:value} parameter tags) into ACE Studio project envelopes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
