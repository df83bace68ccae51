// Package main provides the entry point for the jobshield scam analysis service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobshield",
	Short: "Job posting scam analysis",
	Long:  "jobshield assigns a fraud-risk score to job postings by combining pattern matching, employer verification, salary plausibility, and an external classifier.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
