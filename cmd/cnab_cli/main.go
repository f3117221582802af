package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/desafiodev/cnab_import_app/internal/adapters/database/pgsql"
	"github.com/desafiodev/cnab_import_app/internal/core/services"
	"github.com/desafiodev/cnab_import_app/pkg/config"
	"github.com/desafiodev/cnab_import_app/pkg/database"
)

var ignoreErrors bool

var rootCmd = &cobra.Command{
	Use:   "cnab_cli",
	Short: "CNAB import tooling for operators",
	Long:  "Imports fixed-width CNAB transaction files into the store database without going through the HTTP API.",
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a CNAB file from disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbPool.Close()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open CNAB file: %w", err)
	}
	defer file.Close()

	storeRepo := pgsql.NewStoreRepository(dbPool)
	txnRepo := pgsql.NewTransactionRepository(dbPool)
	importService := services.NewCnabImportService(storeRepo, txnRepo)

	result, err := importService.ImportFile(ctx, file, ignoreErrors)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if !result.IsSuccess {
		return fmt.Errorf("import did not commit (%d of %d lines failed)", result.InvalidLines, result.TotalLines)
	}
	return nil
}

func main() {
	importCmd.Flags().BoolVar(&ignoreErrors, "ignore-errors", false, "commit successful lines even when some lines failed")
	rootCmd.AddCommand(importCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
