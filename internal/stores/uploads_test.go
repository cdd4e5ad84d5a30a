package stores

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	sharedmocks "github.com/creatorlift/dashboard-client/infrastructure/gateway/shared/mocks"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

func TestUploadsStore_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uploaded := &domain.UploadedFile{
		ID:         "file-1",
		Name:       "logo.png",
		URL:        "https://cdn.creatorlift.com/files/file-1",
		UploadedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}

	gateway := sharedmocks.NewMockClient(ctrl)
	gateway.EXPECT().UploadFile(gomock.Any(), "logo.png", gomock.Any(), "brand_logo").
		Return(uploaded, nil)

	store := NewUploadsStore(gateway)

	snapshot := store.Snapshot()
	assert.Empty(t, snapshot.Files, "lista nasce vazia")
	assert.False(t, snapshot.Uploading)

	result := store.Upload(context.Background(), "logo.png", strings.NewReader("png-bytes"), "brand_logo")
	assert.True(t, result.Success)

	snapshot = store.Snapshot()
	assert.False(t, snapshot.Uploading)
	assert.Empty(t, snapshot.Err)
	assert.Len(t, snapshot.Files, 1)
	assert.Equal(t, "file-1", snapshot.Files[0].ID)
}

func TestUploadsStore_UploadFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := sharedmocks.NewMockClient(ctrl)
	gateway.EXPECT().UploadFile(gomock.Any(), "media.mp4", gomock.Any(), "campaign_asset").
		Return(nil, errors.New("arquivo excede o limite"))

	store := NewUploadsStore(gateway)

	result := store.Upload(context.Background(), "media.mp4", strings.NewReader("mp4-bytes"), "campaign_asset")
	assert.False(t, result.Success)
	assert.Equal(t, "arquivo excede o limite", result.Error)

	snapshot := store.Snapshot()
	assert.False(t, snapshot.Uploading)
	assert.Equal(t, "arquivo excede o limite", snapshot.Err)
	assert.Empty(t, snapshot.Files)
}

func TestUploadsStore_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := sharedmocks.NewMockClient(ctrl)
	gateway.EXPECT().UploadFile(gomock.Any(), "logo.png", gomock.Any(), "brand_logo").
		Return(&domain.UploadedFile{ID: "file-1", Name: "logo.png"}, nil)
	gateway.EXPECT().DeleteFile(gomock.Any(), "file-1").Return(nil)

	store := NewUploadsStore(gateway)
	store.Upload(context.Background(), "logo.png", strings.NewReader("png-bytes"), "brand_logo")

	result := store.Remove(context.Background(), "file-1")
	assert.True(t, result.Success)
	assert.Empty(t, store.Snapshot().Files)
}
