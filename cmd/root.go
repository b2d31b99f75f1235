/*
Copyright © 2025 Aalify-X
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "progrify-be",
	Short: "Document-intelligence backend",
	Long: `progrify-be turns uploaded PDF and Word documents into study
material: a concise summary plus exam-style question/answer pairs generated
through an external language-model API. Access is gated behind Whop
subscription verification.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
