// Package envelope contém o envelope de resposta padronizado dos serviços de
// backend e o decodificador compartilhado de formatos de payload.
package envelope

import "encoding/json"

// Response é o envelope uniforme retornado pelo cliente HTTP para toda
// requisição. Success=true implica Data preenchido; Success=false implica
// Error ou Message preenchido.
type Response struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
	Message    string          `json:"message,omitempty"`
	StatusCode int             `json:"statusCode,omitempty"`
}

// Ok cria um envelope de sucesso com o payload bruto informado
func Ok(data json.RawMessage, statusCode int) Response {
	return Response{
		Success:    true,
		Data:       data,
		StatusCode: statusCode,
	}
}

// Fail cria um envelope de falha com a mensagem de erro informada
func Fail(errMsg string, statusCode int) Response {
	return Response{
		Success:    false,
		Error:      errMsg,
		StatusCode: statusCode,
	}
}

// ErrorMessage retorna a melhor mensagem de erro disponível no envelope
func (r Response) ErrorMessage() string {
	if r.Error != "" {
		return r.Error
	}

	if r.Message != "" {
		return r.Message
	}

	return "unexpected error"
}
