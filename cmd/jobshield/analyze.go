package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/config"
	"github.com/jonathan/jobshield/internal/observability"
	"github.com/jonathan/jobshield/internal/types"
)

var (
	analyzeJobPath    string
	analyzeConfigPath string
	analyzeTimeout    int
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting file for scam risk",
	Long:  `Analyze reads a posting from a JSON file, runs the full risk pipeline once, and prints the composite result as JSON.`,
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to posting JSON file")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config JSON file")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 0, "External classifier timeout in seconds")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:             analyzeJobPath,
		APIKey:          os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		ClassifyTimeout: analyzeTimeout,
		Verbose:         analyzeVerbose,
	}
	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required")
	}

	data, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read posting file: %w", err)
	}

	var req types.AnalyzeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse posting JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid posting: %w", err)
	}

	if cfg.DisableClassifier {
		cfg.APIKey = ""
	}

	ctx := cmd.Context()
	svcs, err := buildServices(ctx, cfg.APIKey, cfg.DatabaseURL, time.Duration(cfg.ClassifyTimeout)*time.Second)
	if err != nil {
		return err
	}
	defer svcs.close()

	posting := req.Posting()
	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintPosting(posting)
	}

	result, err := svcs.analysis.GetOrAnalyze(ctx, posting)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		printer.PrintAnalysisResult(result)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
