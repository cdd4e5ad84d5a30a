package domain

import "time"

// Notification é um aviso exibido no sino do dashboard
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Category  string    `json:"category,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// SendNotificationRequest é o corpo do envio de notificação para um usuário
type SendNotificationRequest struct {
	RecipientID string `json:"recipient_id"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	Category    string `json:"category,omitempty"`
}
