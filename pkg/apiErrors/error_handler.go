package apiErrors

import (
	"fmt"
	"net/http"
)

// Códigos de erro da camada de cliente
const (
	// Falhas de transporte e decodificação (camada de rede)
	ErrNetwork       = "NET_001" // Falha de rede (DNS, conexão, timeout)
	ErrRequestBuild  = "NET_002" // Falha ao montar a requisição
	ErrDecode        = "DEC_001" // Corpo de resposta malformado/inesperado
	ErrEncode        = "DEC_002" // Falha ao serializar o corpo da requisição
	ErrDomainReject  = "DOM_001" // Backend respondeu success=false com mensagem
	ErrUnknownStatus = "HTTP_000"

	// Erros HTTP mais comuns dos serviços (status -> código)
	ErrBadRequest   = "HTTP_400"
	ErrUnauthorized = "HTTP_401"
	ErrForbidden    = "HTTP_403"
	ErrNotFound     = "HTTP_404"
	ErrConflict     = "HTTP_409"
	ErrServer       = "HTTP_500"
	ErrBadGateway   = "HTTP_502"
	ErrUnavailable  = "HTTP_503"
)

var statusCodeMap = map[int]string{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrServer,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrUnavailable,
}

// Mensagens padrão exibíveis ao usuário quando o backend não informa nada
var defaultMessages = map[string]string{
	ErrNetwork:      "Falha de comunicação com o serviço",
	ErrRequestBuild: "Requisição inválida",
	ErrDecode:       "Resposta inesperada do serviço",
	ErrEncode:       "Dados inválidos para envio",
	ErrDomainReject: "Operação recusada pelo serviço",
}

// APIError representa uma falha classificada da camada de cliente
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}

func (e APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Code
}

// ClassifyStatus mapeia um status HTTP não-2xx para um código de erro
func ClassifyStatus(status int) string {
	if code, ok := statusCodeMap[status]; ok {
		return code
	}
	return ErrUnknownStatus
}

// New cria um erro classificado com mensagem explícita
func New(code string, message string) APIError {
	if message == "" {
		message = defaultMessages[code]
	}

	return APIError{
		Code:    code,
		Message: message,
	}
}

// FromStatus cria um erro classificado a partir de um status HTTP não-2xx
func FromStatus(status int, message string) APIError {
	err := New(ClassifyStatus(status), message)
	err.StatusCode = status

	if err.Message == "" {
		err.Message = http.StatusText(status)
	}

	return err
}

// FromError envolve um erro Go em um erro classificado
func FromError(err error, code string) APIError {
	if err == nil {
		return New(code, "")
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
