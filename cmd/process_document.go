/*
Copyright © 2025 Aalify-X
*/
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aalify-X/progrify-be/config"
	"github.com/Aalify-X/progrify-be/service"
	"github.com/Aalify-X/progrify-be/types"
)

// processDocumentCmd runs the study-material pipeline on a local file and
// prints the result, which is handy for trying prompts without the server.
var processDocumentCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Process a local document into study material",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		aiService, err := newCompletionService(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize AI provider: %w", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		pipeline := service.NewPipelineService(
			service.NewExtractService(),
			service.NewStudyService(aiService),
			service.DefaultPipelineConfig,
		)

		result, err := pipeline.Process(context.Background(), filepath.Base(args[0]), data, types.DefaultProcessDocumentOptions)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processDocumentCmd)
}
