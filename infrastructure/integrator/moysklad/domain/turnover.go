package moyskladdomain

// Meta é o bloco de metadados presente em toda entidade da API
type Meta struct {
	Href         string `json:"href"`
	MetadataHref string `json:"metadataHref,omitempty"`
	Type         string `json:"type"`
	MediaType    string `json:"mediaType"`
	UUIDHref     string `json:"uuidHref,omitempty"`
}

// MetaPagination acompanha relatórios e listas paginadas
type MetaPagination struct {
	Href      string `json:"href"`
	Type      string `json:"type"`
	MediaType string `json:"mediaType"`
	Size      int    `json:"size"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
}

type NamedRef struct {
	Meta Meta   `json:"meta"`
	Name string `json:"name"`
}

type Assortment struct {
	Meta          Meta      `json:"meta"`
	Name          string    `json:"name"`
	Code          string    `json:"code,omitempty"`
	Article       string    `json:"article,omitempty"`
	ProductFolder *NamedRef `json:"productFolder,omitempty"`
	UOM           *NamedRef `json:"uom,omitempty"`
}

// CategoryName devolve o nome do grupo do produto ou vazio
func (a Assortment) CategoryName() string {
	if a.ProductFolder == nil {
		return ""
	}
	return a.ProductFolder.Name
}

// Indicators trazem a soma (em copeques) e a quantidade
type Indicators struct {
	Sum      float64 `json:"sum"`
	Quantity float64 `json:"quantity"`
}

type TurnoverRow struct {
	Assortment    Assortment `json:"assortment"`
	OnPeriodStart Indicators `json:"onPeriodStart"`
	OnPeriodEnd   Indicators `json:"onPeriodEnd"`
	Income        Indicators `json:"income"`
	Outcome       Indicators `json:"outcome"`
}

type TurnoverReport struct {
	Meta MetaPagination `json:"meta"`
	Rows []TurnoverRow  `json:"rows"`

	// preenchido a partir do cabeçalho X-Lognex-Content-Timezone
	ContentTimezone string `json:"-"`
}
