package domain

// Status possíveis de uma marca vinculada à agência
const (
	BrandActive   = "active"
	BrandInactive = "inactive"
	BrandPending  = "pending"
)

// AgencyBrand é a projeção de uma marca usada pelo seletor de marcas
type AgencyBrand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo,omitempty"`
	Status  string `json:"status"`
}
