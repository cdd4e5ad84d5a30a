package domain

// RawLeaderboardEntry é a entrada como devolvida pelo serviço de analytics,
// na ordem de classificação escolhida pelo backend (GMV decrescente)
type RawLeaderboardEntry struct {
	CreatorID string  `json:"creator_id"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	GMV       float64 `json:"gmv"`
}

// LeaderboardEntry é a visão derivada exibida no ranking. Rank é derivado da
// posição no array (index+1), nunca um campo armazenado: o desempate é a
// ordem que o backend devolver.
type LeaderboardEntry struct {
	Rank          int     `json:"rank"`
	CreatorID     string  `json:"creator_id"`
	Name          string  `json:"name"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	GMV           float64 `json:"gmv"`
	Badge         string  `json:"badge"`
	IsCurrentUser bool    `json:"is_current_user"`
}

// Faixas de badge por GMV acumulado
const (
	BadgeUnder1K = "<$1K"
	Badge1KTo5K  = "$1K-$5K"
	Badge5KTo10K = "$5K-$10K"
	Badge10KPlus = "$10K+"
)

// BadgeForGMV devolve o rótulo de faixa para o GMV informado
func BadgeForGMV(gmv float64) string {
	switch {
	case gmv >= 10000:
		return Badge10KPlus
	case gmv >= 5000:
		return Badge5KTo10K
	case gmv >= 1000:
		return Badge1KTo5K
	default:
		return BadgeUnder1K
	}
}
