package moyskladdomain

type AddressFull struct {
	PostalCode string    `json:"postalCode,omitempty"`
	Country    *NamedRef `json:"country,omitempty"`
	Region     *NamedRef `json:"region,omitempty"`
	City       string    `json:"city,omitempty"`
	Street     string    `json:"street,omitempty"`
	House      string    `json:"house,omitempty"`
	Apartment  string    `json:"apartment,omitempty"`
	AddInfo    string    `json:"addInfo,omitempty"`
	Comment    string    `json:"comment,omitempty"`
}

type RetailStore struct {
	Meta         Meta         `json:"meta"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Code         string       `json:"code,omitempty"`
	ExternalCode string       `json:"externalCode,omitempty"`
	Archived     bool         `json:"archived"`
	Address      string       `json:"address,omitempty"`
	AddressFull  *AddressFull `json:"addressFull,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	Timezone     string       `json:"timezone,omitempty"`
	Owner        *NamedRef    `json:"owner,omitempty"`
	PriceType    *NamedRef    `json:"priceType,omitempty"`
}

type RetailStoreList struct {
	Meta MetaPagination `json:"meta"`
	Rows []RetailStore  `json:"rows"`
}
