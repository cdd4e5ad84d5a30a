package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRequestID gera o identificador enviado no header X-Request-ID de
// cada chamada aos serviços de backend
func GenerateRequestID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
