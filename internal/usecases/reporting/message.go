package reporting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

const noSalesLine = "❌ За указанный период продаж не было\n"

// SalesTableMessage agrupa as vendas por produto e, dentro de cada produto, por endereço.
// Produtos sem venda em nenhuma loja não aparecem.
func SalesTableMessage(reports []domain.StoreReport, period string) string {
	products := make(map[string]struct{})
	for _, report := range reports {
		for name := range report.Sales {
			products[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(products))
	for name := range products {
		names = append(names, name)
	}
	sort.Strings(names)

	var message strings.Builder
	message.WriteString("📊 **ОТЧЕТ ПО ПРОДАЖАМ**\n")
	message.WriteString("📅 " + period + "\n\n")
	message.WriteString("**ТОВАРЫ ПО АДРЕСАМ:**\n\n")

	for _, name := range names {
		var block strings.Builder
		for _, report := range reports {
			count := salesCount(report, name)
			if !count.IsPositive() {
				continue
			}
			block.WriteString("  • " + report.Address + ": **" + count.String() + "** шт.\n")
		}

		if block.Len() == 0 {
			continue
		}
		message.WriteString("**" + name + ":**\n")
		message.WriteString(block.String())
		message.WriteString("\n")
	}

	return message.String()
}

// StoreReportMessage detalha as linhas do ERP vendidas em uma loja
func StoreReportMessage(address string, lines map[string]decimal.Decimal, date string) string {
	var message strings.Builder
	message.WriteString("**" + address + "**\n")
	message.WriteString("📅 " + date + "\n\n")

	if len(lines) == 0 {
		message.WriteString(noSalesLine)
		return message.String()
	}

	names := make([]string, 0, len(lines))
	for name := range lines {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		message.WriteString("• " + name + ": **" + lines[name].String() + "** шт.\n")
	}

	return message.String()
}

// StoreLines junta as linhas que contribuíram para todos os produtos da loja
func StoreLines(report domain.StoreReport) map[string]decimal.Decimal {
	lines := make(map[string]decimal.Decimal)
	for _, sales := range report.Sales {
		for name, quantity := range sales.ContributingLines {
			lines[name] = lines[name].Add(quantity)
		}
	}
	return lines
}

// EfficiencyMessage resume a eficiência de cada loja no dia
func EfficiencyMessage(reports []*domain.EfficiencyReport, date string) string {
	var message strings.Builder
	message.WriteString("🎯 **ЭФФЕКТИВНОСТЬ ПРОДАЖ**\n")
	message.WriteString("📅 " + date + "\n\n")

	if len(reports) == 0 {
		message.WriteString(noSalesLine)
		return message.String()
	}

	for _, report := range reports {
		message.WriteString("**" + report.RetailStore + "**\n")
		message.WriteString("  • Целевые: **" + report.TargetSales.String() + "** из **" + report.TotalSales.String() + "** шт.\n")
		message.WriteString("  • Эффективность: **" + decimal.NewFromFloat(report.EfficiencyPercentage).StringFixed(2) + "%**\n\n")
	}

	return message.String()
}

func salesCount(report domain.StoreReport, product string) decimal.Decimal {
	sales, ok := report.Sales[product]
	if !ok || sales == nil {
		return decimal.Zero
	}
	return sales.SalesCount
}
