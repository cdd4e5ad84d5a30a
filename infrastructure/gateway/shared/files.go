package shared

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/creatorlift/dashboard-client/internal/domain"
	"github.com/creatorlift/dashboard-client/pkg/envelope"
)

// UploadFile envia um arquivo para o serviço compartilhado. purpose indica o
// destino do arquivo (brand_logo, avatar, attachment, ...).
func (c *SharedClient) UploadFile(ctx context.Context, filename string, content io.Reader, purpose string) (*domain.UploadedFile, error) {
	var fields map[string]string
	if purpose != "" {
		fields = map[string]string{"purpose": purpose}
	}

	resp := c.api.Upload(ctx, "/api/v1/files/upload", "file", filename, content, fields)
	if !resp.Success {
		return nil, errors.New(resp.ErrorMessage())
	}

	file := &domain.UploadedFile{}
	if err := envelope.DecodeObject(resp.Data, file); err != nil {
		logrus.WithError(err).WithField("filename", filename).Error("shared: erro ao decodificar arquivo enviado")
		return nil, errors.Wrap(err, "resposta inesperada ao enviar arquivo")
	}

	return file, nil
}

// DeleteFile remove um arquivo previamente enviado
func (c *SharedClient) DeleteFile(ctx context.Context, fileID string) error {
	resp := c.api.Delete(ctx, fmt.Sprintf("/api/v1/files/%s", fileID))
	if !resp.Success {
		return errors.New(resp.ErrorMessage())
	}

	return nil
}
