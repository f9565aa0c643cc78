package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-plan-sync/internal/app"
	"github.com/vfg2006/sales-plan-sync/internal/config"
)

var (
	logLevel    string
	application *app.App

	rootCmd = &cobra.Command{
		Use:   "salesync",
		Short: "Sincroniza o giro do MoySklad com o plano de vendas no Google Sheets",
		Long: `salesync executa os mesmos ciclos da API a partir do terminal:
sincronização do período, relatórios diários e exportação em xlsx.`,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "nível de log (debug, info, warn, error)")

	rootCmd.AddCommand(periodCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(rangeCmd())
	rootCmd.AddCommand(efficiencyCmd())
	rootCmd.AddCommand(storesCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("nível de log inválido: %s", logLevel)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	application, err = app.New(cmd.Context(), cfg)
	return err
}

func teardown(_ *cobra.Command, _ []string) error {
	if application != nil {
		application.Close()
	}
	return nil
}
