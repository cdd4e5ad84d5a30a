package stores

import (
	"context"
	"io"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/shared"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

// UploadsStore acumula os arquivos enviados durante a sessão (anexos de
// campanha, logos de marca). Não há refetch: a lista nasce vazia e cresce a
// cada upload confirmado.
type UploadsStore struct {
	state
	files     []domain.UploadedFile
	uploading bool
	gateway   shared.Client
}

type UploadsSnapshot struct {
	Files     []domain.UploadedFile `json:"files"`
	Uploading bool                  `json:"uploading"`
	Err       string                `json:"error,omitempty"`
}

func NewUploadsStore(gateway shared.Client) *UploadsStore {
	s := &UploadsStore{
		state:   newState(),
		gateway: gateway,
	}
	s.loading = false
	return s
}

// Upload envia o arquivo e adiciona o resultado à lista local
func (s *UploadsStore) Upload(ctx context.Context, filename string, content io.Reader, purpose string) ActionResult {
	s.mu.Lock()
	s.uploading = true
	s.err = ""
	s.mu.Unlock()

	file, err := s.gateway.UploadFile(ctx, filename, content, purpose)

	s.mu.Lock()
	s.uploading = false
	if err != nil {
		s.err = err.Error()
		s.mu.Unlock()
		return actionFailed(err)
	}
	s.files = append(s.files, *file)
	s.mu.Unlock()

	return actionOK()
}

// Remove apaga o arquivo no serviço e tira da lista local
func (s *UploadsStore) Remove(ctx context.Context, fileID string) ActionResult {
	if err := s.gateway.DeleteFile(ctx, fileID); err != nil {
		return actionFailed(err)
	}

	s.mu.Lock()
	kept := s.files[:0]
	for _, f := range s.files {
		if f.ID != fileID {
			kept = append(kept, f)
		}
	}
	s.files = kept
	s.mu.Unlock()

	return actionOK()
}

func (s *UploadsStore) Snapshot() UploadsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return UploadsSnapshot{
		Files:     append([]domain.UploadedFile(nil), s.files...),
		Uploading: s.uploading,
		Err:       s.err,
	}
}
