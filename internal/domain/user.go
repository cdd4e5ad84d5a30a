package domain

import "github.com/golang-jwt/jwt/v5"

// User é a projeção do usuário autenticado devolvida pelo serviço de usuários
type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"` // creator | agency | brand
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Claims são os dados de identidade extraídos do bearer token ambiente.
// A verificação de assinatura é responsabilidade do backend; aqui o token só
// alimenta a identidade local (endpoints "my", flag isCurrentUser, defaults
// de configurações).
type Claims struct {
	UserID    string `json:"sub"`
	UserName  string `json:"name"`
	UserEmail string `json:"email"`
	UserRole  string `json:"role"`
	jwt.RegisteredClaims
}
