package domain

// Colunas da tabela do plano de vendas, na ordem em que aparecem na planilha
const (
	ColumnCategory      = "Категория"
	ColumnProduct       = "Товар"
	ColumnPlan          = "План"
	ColumnSold          = "Продано"
	ColumnRemaining     = "Осталось до плана"
	ColumnCompletion    = "Выполнено в %"
	ColumnRequiredDaily = "Необходимая средневная продажа"
)

func SalesPlanColumns() []string {
	return []string{
		ColumnCategory,
		ColumnProduct,
		ColumnPlan,
		ColumnSold,
		ColumnRemaining,
		ColumnCompletion,
		ColumnRequiredDaily,
	}
}
