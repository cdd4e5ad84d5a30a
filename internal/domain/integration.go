package domain

// Status possíveis de uma integração externa
const (
	IntegrationConnected    = "connected"
	IntegrationDisconnected = "disconnected"
)

// IntegrationStatus é a projeção de uma integração externa da agência
type IntegrationStatus struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	LastSync string `json:"last_sync"`
	Icon     string `json:"icon,omitempty"`
}

// DefaultIntegrations é a lista fixa exibida quando o serviço de integrações
// está indisponível: tudo desconectado
func DefaultIntegrations() []IntegrationStatus {
	return []IntegrationStatus{
		{Name: "TikTok Shop", Status: IntegrationDisconnected, LastSync: "Never", Icon: "tiktok"},
		{Name: "Instagram", Status: IntegrationDisconnected, LastSync: "Never", Icon: "instagram"},
		{Name: "Shopify", Status: IntegrationDisconnected, LastSync: "Never", Icon: "shopify"},
		{Name: "Stripe", Status: IntegrationDisconnected, LastSync: "Never", Icon: "stripe"},
		{Name: "Discord", Status: IntegrationDisconnected, LastSync: "Never", Icon: "discord"},
	}
}
