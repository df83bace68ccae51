package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobshield/internal/server"
)

var (
	servePort    int
	serveTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the analysis pipeline and report counters as REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&serveTimeout, "timeout", 0, "External classifier timeout in seconds")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	svcs, err := buildServices(ctx,
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("DATABASE_URL"),
		time.Duration(serveTimeout)*time.Second,
	)
	if err != nil {
		return err
	}
	defer svcs.close()

	srv := server.New(server.Config{
		Port:    servePort,
		Service: svcs.analysis,
		Index:   svcs.index,
		Reports: svcs.reports,
	})

	return srv.Start()
}
