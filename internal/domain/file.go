package domain

import "time"

// UploadedFile é o resultado de um upload no serviço compartilhado
type UploadedFile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
