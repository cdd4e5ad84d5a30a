// Package domain contém as estruturas de dados trafegadas entre os serviços
// de backend e a camada de apresentação. São projeções de leitura: o dono de
// cada entidade é sempre um serviço de backend.
package domain

import "time"

// Status possíveis de uma candidatura de criador a uma campanha
const (
	ApplicationPending   = "pending"
	ApplicationApproved  = "approved"
	ApplicationRejected  = "rejected"
	ApplicationInterview = "interview"
	ApplicationWaitlist  = "waitlist"
)

// Application é o pedido de um criador para participar de uma campanha
type Application struct {
	ID         string           `json:"id"`
	CreatorID  string           `json:"creator_id"`
	CampaignID string           `json:"campaign_id"`
	Status     string           `json:"status"`
	Note       string           `json:"note,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Creator    *CreatorSummary  `json:"creator,omitempty"`
	Campaign   *CampaignSummary `json:"campaign,omitempty"`
}

// CreatorSummary é a projeção mínima do criador embutida em outras entidades
type CreatorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Handle    string `json:"handle,omitempty"`
}

// CreateApplicationRequest é o corpo do POST de candidatura
type CreateApplicationRequest struct {
	CampaignID string `json:"campaign_id"`
	Note       string `json:"note,omitempty"`
}
