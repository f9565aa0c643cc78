package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/internal/usecases/reporting"
	"github.com/vfg2006/sales-plan-sync/pkg/utils"
)

func printJSON(cmd *cobra.Command, v any) {
	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(v))
}

func periodCmd() *cobra.Command {
	var (
		dryRun   bool
		xlsxPath string
	)

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Sincroniza as vendas do período da planilha",
		Long: `Lê o período e o catálogo da planilha, soma o giro de todas as lojas
e grava a coluna "Продано". Com --dry-run nada é gravado.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := application.Synchronizer

			run := service.SynchronizePeriod
			if dryRun {
				run = service.PeriodReport
			}

			result, err := run(cmd.Context())
			if err != nil {
				return err
			}

			if xlsxPath != "" {
				data, err := reporting.ExportXLSX(result.Snapshots, result.Products, result.Period.Label())
				if err != nil {
					return err
				}
				if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
					return fmt.Errorf("erro ao salvar %s: %w", xlsxPath, err)
				}
			}

			printJSON(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "calcula sem gravar na planilha")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "salva o relatório do período neste arquivo xlsx")

	return cmd
}

func dayCmd() *cobra.Command {
	var (
		date   string
		notify bool
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Relatório de vendas por loja de um dia",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := utils.ParseDate(date, utils.TodayUTC())
			if err != nil {
				return err
			}

			result, err := application.Synchronizer.SynchronizeDay(cmd.Context(), day)
			if err != nil {
				return err
			}

			message := reporting.SalesTableMessage(result.Reports, result.Day)
			if notify {
				chatID := application.Config.Telegram.ReportChatID
				if err := application.Telegram.NotifyMarkdown(cmd.Context(), chatID, message); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "dia no formato YYYY-MM-DD (padrão: hoje)")
	cmd.Flags().BoolVar(&notify, "notify", false, "envia o relatório ao chat configurado")

	return cmd
}

func rangeCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "range",
		Short: "Relatórios diários entre duas datas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := utils.TodayUTC()

			start, err := utils.ParseDate(from, today)
			if err != nil {
				return err
			}
			end, err := utils.ParseDate(to, today)
			if err != nil {
				return err
			}

			results, err := application.Synchronizer.SynchronizeRange(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			printJSON(cmd, results)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "primeiro dia (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "último dia (YYYY-MM-DD)")

	return cmd
}

func efficiencyCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "efficiency",
		Short: "Eficiência das lojas nos produtos de marcas próprias",
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := utils.ParseDate(date, utils.TodayUTC())
			if err != nil {
				return err
			}

			reports, err := application.Synchronizer.Efficiency(cmd.Context(), day)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), reporting.EfficiencyMessage(reports, day.Format(domain.PeriodDateLayout)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "dia no formato YYYY-MM-DD (padrão: hoje)")

	return cmd
}

func storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "Lista os pontos de venda do MoySklad",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stores, err := application.Synchronizer.RetailStores(cmd.Context())
			if err != nil {
				return err
			}

			printJSON(cmd, stores)
			return nil
		},
	}
}
