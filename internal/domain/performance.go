package domain

// CreatorPerformance é o DTO bruto do serviço de analytics. Os scores chegam
// serializados como string e precisam ser convertidos na camada de stores.
type CreatorPerformance struct {
	CreatorID         string  `json:"creator_id"`
	TotalGMV          float64 `json:"total_gmv"`
	MonthGMV          float64 `json:"month_gmv"`
	PostCount         int     `json:"post_count"`
	ConsistencyScore  string  `json:"consistency_score"`
	ReliabilityRating string  `json:"reliability_rating"`
	AvgEngagementRate string  `json:"avg_engagement_rate"`
}

// PerformanceMetrics é a visão derivada consumida pelo dashboard de
// performance. Confirmed vem do backend; Estimated são valores provisórios
// enquanto o backend não serve esses agregados.
type PerformanceMetrics struct {
	Confirmed ConfirmedMetrics `json:"confirmed"`
	Estimated EstimatedMetrics `json:"estimated"`
}

// ConfirmedMetrics são os indicadores medidos pelo backend
type ConfirmedMetrics struct {
	TotalGMV          float64 `json:"total_gmv"`
	MonthGMV          float64 `json:"month_gmv"`
	PostCount         int     `json:"post_count"`
	ConsistencyScore  float64 `json:"consistency_score"`
	ReliabilityRating float64 `json:"reliability_rating"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// EstimatedMetrics são os indicadores ainda não servidos pelo backend,
// preenchidos com valores provisórios fixos
type EstimatedMetrics struct {
	TotalCampaigns  int `json:"total_campaigns"`
	ActiveCampaigns int `json:"active_campaigns"`
	Followers       int `json:"followers"`
	TotalViews      int `json:"total_views"`
	TotalLikes      int `json:"total_likes"`
	TotalComments   int `json:"total_comments"`
	TotalShares     int `json:"total_shares"`
}
