package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lendledger/internal/config"
	"lendledger/internal/ids"
	"lendledger/internal/ledger"
	"lendledger/internal/logging"
	"lendledger/internal/seed"
	"lendledger/internal/web"
)

func main() {
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "lendledger",
		Short:         "Peer-to-peer item-lending ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the lending ledger HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}
	serve.Flags().StringVar(&cfg.ListenAddr, "addr", cfg.ListenAddr, "listen address")
	serve.Flags().BoolVar(&cfg.SeedDemo, "seed", cfg.SeedDemo, "load the demo data set on startup")
	serve.Flags().Int64Var(&cfg.RandSeed, "rand-seed", cfg.RandSeed, "fixed id generator seed (0 = seed from clock)")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Load the demo data set and print the resulting ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cfg)
		},
	}
	demo.Flags().Int64Var(&cfg.RandSeed, "rand-seed", cfg.RandSeed, "fixed id generator seed (0 = seed from clock)")

	root.AddCommand(serve, demo)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newService(cfg *config.Config, logger *slog.Logger) *ledger.Service {
	gen := ids.New()
	if cfg.RandSeed != 0 {
		gen = ids.NewSeeded(cfg.RandSeed)
	}
	return ledger.NewService(gen, logger)
}

func runServe(cfg *config.Config) error {
	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer cleanup()

	svc := newService(cfg, logger)

	if cfg.SeedDemo {
		if err := (seed.Demo{}).Load(svc); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info("demo data loaded",
			"members", len(svc.ListMembers()),
			"items", len(svc.ListItems()),
			"contracts", len(svc.ListContracts()),
		)
	}

	server := web.NewServer(svc, logger)
	return server.ListenAndServe(cfg.ListenAddr)
}

func runDemo(cfg *config.Config) error {
	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer cleanup()

	svc := newService(cfg, logger)
	if err := (seed.Demo{}).Load(svc); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}

	fmt.Printf("Day %d\n\nMembers:\n", svc.CurrentDay())
	for _, m := range svc.ListMembers() {
		fmt.Printf("  %-6s %-28s %4d credits  %d items\n", m.ID, m.Name, m.Credits, len(m.OwnedItemIDs))
	}
	fmt.Println("\nItems:")
	for _, i := range svc.ListItems() {
		fmt.Printf("  %-8s %-8s %-6s %3d/day  owner %s\n", i.ID, i.Name, i.Category, i.CostPerDay, i.OwnerID)
	}
	fmt.Println("\nContracts:")
	for _, c := range svc.ListContracts() {
		fmt.Printf("  %-6s %-8s borrowed by %-28s days [%d, %d)  %s\n",
			c.ID, c.ItemName, c.BorrowerName, c.StartDay, c.EndDay, c.Status)
	}
	return nil
}
