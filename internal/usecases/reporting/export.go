package reporting

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Продажи"

// ExportXLSX monta uma planilha produto x loja com a coluna de total.
// Os produtos seguem a ordem do catálogo e as lojas a ordem alfabética.
func ExportXLSX(snapshots []*domain.StoreSalesSnapshot, productNames []string, period string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, err
	}

	stores := make([]*domain.StoreSalesSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot != nil {
			stores = append(stores, snapshot)
		}
	}
	sort.SliceStable(stores, func(i, j int) bool {
		return storeLabel(stores[i]) < storeLabel(stores[j])
	})

	if err := setCell(f, 1, 1, "Период"); err != nil {
		return nil, err
	}
	if err := setCell(f, 2, 1, period); err != nil {
		return nil, err
	}

	const headerRow = 3
	headers := []string{domain.ColumnProduct}
	for _, store := range stores {
		headers = append(headers, storeLabel(store))
	}
	headers = append(headers, "Итого")

	for i, header := range headers {
		if err := setCell(f, i+1, headerRow, header); err != nil {
			return nil, err
		}
	}

	totalColumn := len(headers)
	grandTotal := decimal.Zero

	for i, name := range productNames {
		row := headerRow + 1 + i
		if err := setCell(f, 1, row, name); err != nil {
			return nil, err
		}

		total := decimal.Zero
		for j, store := range stores {
			count := decimal.Zero
			if sales, ok := store.Products[name]; ok {
				count = sales.SalesCount
			}
			total = total.Add(count)
			if err := setCell(f, j+2, row, CellValue(count)); err != nil {
				return nil, err
			}
		}

		grandTotal = grandTotal.Add(total)
		if err := setCell(f, totalColumn, row, CellValue(total)); err != nil {
			return nil, err
		}
	}

	footer := headerRow + 1 + len(productNames)
	if err := setCell(f, 1, footer, "Итого"); err != nil {
		return nil, err
	}
	if err := setCell(f, totalColumn, footer, CellValue(grandTotal)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar o arquivo xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, column, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(exportSheet, cell, value)
}

func storeLabel(snapshot *domain.StoreSalesSnapshot) string {
	if snapshot.Address != "" {
		return snapshot.Address
	}
	return snapshot.StoreName
}

// ExportFilename gera "sales_2025-03-01_2025-03-31.xlsx"
func ExportFilename(period domain.SalesPeriod) string {
	return fmt.Sprintf("sales_%s_%s.xlsx",
		period.StartDate.Format("2006-01-02"),
		period.EndDate.Format("2006-01-02"),
	)
}
