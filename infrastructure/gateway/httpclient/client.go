// Package httpclient implementa o núcleo de requisições da camada de
// gateways. Toda chamada resolve em um envelope uniforme: falha de rede,
// status não-2xx, corpo malformado e recusa de domínio nunca chegam ao
// chamador como erro Go.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/creatorlift/dashboard-client/internal/auth"
	"github.com/creatorlift/dashboard-client/pkg/apiErrors"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
	"github.com/creatorlift/dashboard-client/pkg/log"
	"github.com/creatorlift/dashboard-client/pkg/utils"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o cliente HTTP genérico de um serviço de backend
type Client struct {
	service    string
	baseURL    string
	httpClient *http.Client
	tokens     auth.TokenSource
}

// New cria o cliente de um serviço a partir da URL base configurada
func New(service string, baseURL string, timeout time.Duration, tokens auth.TokenSource) *Client {
	return &Client{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// Get faz um GET com query params opcionais
func (c *Client) Get(ctx context.Context, path string, params url.Values) envelope.Response {
	return c.do(ctx, http.MethodGet, path, params, nil, "")
}

// Post faz um POST com corpo JSON opcional
func (c *Client) Post(ctx context.Context, path string, body any) envelope.Response {
	reader, resp, ok := c.encodeBody(body)
	if !ok {
		return resp
	}
	return c.do(ctx, http.MethodPost, path, nil, reader, "application/json")
}

// Put faz um PUT com corpo JSON opcional
func (c *Client) Put(ctx context.Context, path string, body any) envelope.Response {
	reader, resp, ok := c.encodeBody(body)
	if !ok {
		return resp
	}
	return c.do(ctx, http.MethodPut, path, nil, reader, "application/json")
}

// Delete faz um DELETE sem corpo
func (c *Client) Delete(ctx context.Context, path string) envelope.Response {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "")
}

func (c *Client) encodeBody(body any) (io.Reader, envelope.Response, bool) {
	if body == nil {
		return http.NoBody, envelope.Response{}, true
	}

	raw, err := codec.Marshal(body)
	if err != nil {
		log.L.WithError(err).WithField("service", c.service).Error("httpclient: erro ao serializar corpo da requisição")
		return nil, envelope.Fail(apiErrors.FromError(err, apiErrors.ErrEncode).Error(), 0), false
	}

	return bytes.NewReader(raw), envelope.Response{}, true
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body io.Reader, contentType string) envelope.Response {
	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL = requestURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"service": c.service,
			"path":    path,
		}).Error("httpclient: erro ao criar a requisição")
		return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrRequestBuild).Error(), 0)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if requestID, err := utils.GenerateRequestID(); err == nil {
		req.Header.Set("X-Request-ID", requestID)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"service": c.service,
			"method":  method,
			"path":    path,
		}).Error("httpclient: erro ao fazer a requisição")
		return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrNetwork).Error(), 0)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"service": c.service,
			"method":  method,
			"path":    path,
		}).Error("httpclient: erro ao ler corpo da resposta")
		return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrNetwork).Error(), resp.StatusCode)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"service":     c.service,
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	}).Debug("httpclient: requisição concluída")

	return c.normalize(ctx, method, path, resp.StatusCode, rawBody)
}

// normalize colapsa as quatro classes de falha no mesmo envelope e tolera
// backends que respondem com ou sem o campo success
func (c *Client) normalize(ctx context.Context, method, path string, statusCode int, rawBody []byte) envelope.Response {
	var probe struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}

	envelopeShaped := len(rawBody) > 0 && codec.Unmarshal(rawBody, &probe) == nil && probe.Success != nil

	ok := statusCode >= 200 && statusCode < 300

	if envelopeShaped {
		response := envelope.Response{
			Success:    *probe.Success && ok,
			Data:       probe.Data,
			Error:      probe.Error,
			Message:    probe.Message,
			StatusCode: statusCode,
		}

		if !response.Success && response.Error == "" && response.Message == "" {
			response.Error = apiErrors.FromStatus(statusCode, "").Error()
		}

		if !response.Success {
			c.logFailure(ctx, method, path, statusCode, response.ErrorMessage())
		}

		return response
	}

	if !ok {
		message := strings.TrimSpace(string(rawBody))
		if len(message) > 200 {
			message = message[:200]
		}

		response := envelope.Fail(apiErrors.FromStatus(statusCode, message).Error(), statusCode)
		c.logFailure(ctx, method, path, statusCode, response.Error)
		return response
	}

	// 2xx sem envelope: o corpo inteiro é o payload
	return envelope.Ok(rawBody, statusCode)
}

func (c *Client) logFailure(ctx context.Context, method, path string, statusCode int, message string) {
	log.ForContext(ctx).WithFields(log.Fields{
		"service":     c.service,
		"method":      method,
		"path":        path,
		"status_code": statusCode,
		"error":       message,
	}).Warn("httpclient: resposta de falha do serviço")
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}
