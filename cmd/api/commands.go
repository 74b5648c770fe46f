package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"buyit/internal/config"
	"buyit/internal/database"
	"buyit/internal/intake"
	"buyit/internal/service"

	"github.com/spf13/cobra"
)

var (
	envFile    string
	reportPath string

	rootCmd = &cobra.Command{
		Use:          "buyit",
		Short:        "BuyIT Hub procurement backend",
		SilenceUsage: true,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, websocket feed and metrics endpoint",
		RunE:  runServe,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE:  runMigrate,
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Drive a demo scenario through the lifecycle services",
		RunE:  runSeed,
	}

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Write the full report workbook to a file",
		RunE:  runReport,
	}

	intakeCmd = &cobra.Command{
		Use:   "intake [text]",
		Short: "Print the request fields extracted from free text",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runIntake,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "configs/.env", "dotenv file loaded before the environment")
	reportCmd.Flags().StringVarP(&reportPath, "out", "o", service.ReportFileName, "output .xlsx path")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(intakeCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	log := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.close()
	go a.hub.Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "port", cfg.Port, "db_driver", cfg.DBDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	log := cfg.NewLogger()

	// NewConnection migrates on open.
	db, err := database.NewConnection(cfg, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("schema migrated", "db_driver", cfg.DBDriver)
	return nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, cfg.NewLogger())
	if err != nil {
		return err
	}
	defer a.close()

	report, err := a.seed.Seed(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, report)
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	a, err := newApp(cfg, cfg.NewLogger())
	if err != nil {
		return err
	}
	defer a.close()

	buf, err := a.reports.Workbook(cmd.Context())
	if err != nil {
		return err
	}
	if err := os.WriteFile(reportPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	a.log.Info("report written", "path", reportPath, "bytes", buf.Len())
	return nil
}

func runIntake(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	fields := intake.NewExtractor(cfg.KnownVendors).Extract(strings.Join(args, " "))
	return printJSON(cmd, fields)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
