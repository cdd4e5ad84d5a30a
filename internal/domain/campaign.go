package domain

import "time"

// Status possíveis de uma campanha
const (
	CampaignDraft     = "draft"
	CampaignActive    = "active"
	CampaignPaused    = "paused"
	CampaignCompleted = "completed"
	CampaignCancelled = "cancelled"
)

// Campaign é a projeção de leitura de uma campanha de marketing de
// influência. O backend pode devolver projeções parciais dependendo do
// endpoint.
type Campaign struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	Budget          float64    `json:"budget"`
	TargetGMV       float64    `json:"target_gmv"`
	CurrentGMV      float64    `json:"current_gmv"`
	TargetCreators  int        `json:"target_creators"`
	CurrentCreators int        `json:"current_creators"`
	TargetPosts     int        `json:"target_posts"`
	CurrentPosts    int        `json:"current_posts"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	BrandID         string     `json:"brand_id,omitempty"`
}

// CampaignSummary é a projeção mínima embutida em candidaturas
type CampaignSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}
