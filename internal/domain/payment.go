package domain

// PaymentMethod é um meio de pagamento cadastrado da agência/marca
type PaymentMethod struct {
	ID         string `json:"id"`
	Type       string `json:"type"` // card | bank_account | pix
	Brand      string `json:"brand,omitempty"`
	Last4      string `json:"last4,omitempty"`
	ExpMonth   int    `json:"exp_month,omitempty"`
	ExpYear    int    `json:"exp_year,omitempty"`
	HolderName string `json:"holder_name,omitempty"`
	IsDefault  bool   `json:"is_default"`
}

// SavePaymentMethodRequest cobre criação e atualização de meios de pagamento
type SavePaymentMethodRequest struct {
	Type       string `json:"type"`
	Token      string `json:"token,omitempty"` // Token do gateway, nunca dados brutos de cartão
	HolderName string `json:"holder_name,omitempty"`
	IsDefault  bool   `json:"is_default,omitempty"`
}
