package httpclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/creatorlift/dashboard-client/pkg/apiErrors"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
	"github.com/creatorlift/dashboard-client/pkg/log"
)

// Upload envia um arquivo como multipart/form-data. fields são campos de
// formulário adicionais enviados junto com o arquivo.
func (c *Client) Upload(ctx context.Context, path string, fieldName string, filename string, content io.Reader, fields map[string]string) envelope.Response {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)

	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("service", c.service).Error("httpclient: erro ao montar formulário multipart")
		return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrRequestBuild).Error(), 0)
	}

	if _, err := io.Copy(part, content); err != nil {
		log.ForContext(ctx).WithError(err).WithField("service", c.service).Error("httpclient: erro ao copiar conteúdo do arquivo")
		return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrRequestBuild).Error(), 0)
	}

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrRequestBuild).Error(), 0)
		}
	}

	if err := writer.Close(); err != nil {
		return envelope.Fail(apiErrors.FromError(err, apiErrors.ErrRequestBuild).Error(), 0)
	}

	return c.do(ctx, http.MethodPost, path, nil, &buffer, writer.FormDataContentType())
}
