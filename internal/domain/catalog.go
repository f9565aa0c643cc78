package domain

// CatalogEntry é um produto planejado da tabela do plano de vendas.
// O catálogo é sempre uma slice ordenada: a ordem define qual entrada
// vence quando mais de uma casa com a mesma linha do ERP.
type CatalogEntry struct {
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
}

// ProductNames devolve os nomes na mesma ordem do catálogo
func ProductNames(catalog []CatalogEntry) []string {
	names := make([]string, 0, len(catalog))
	for _, entry := range catalog {
		names = append(names, entry.ProductName)
	}
	return names
}
