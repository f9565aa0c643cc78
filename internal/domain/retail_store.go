package domain

// RetailStore é um ponto de venda do ERP
type RetailStore struct {
	ID       string `json:"id"`
	Href     string `json:"href"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Archived bool   `json:"archived"`
}

// DisplayAddress é o texto usado nos relatórios
func (s RetailStore) DisplayAddress() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Address
}
