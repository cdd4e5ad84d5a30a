package campaign

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorlift/dashboard-client/infrastructure/gateway/httpclient"
	"github.com/creatorlift/dashboard-client/internal/auth"
	"github.com/creatorlift/dashboard-client/internal/domain"
)

func newGateway(handler http.HandlerFunc) (Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	api := httpclient.New("campaign", server.URL, 5*time.Second, auth.NewStaticTokenSource(""))
	return NewClient(api), server
}

// O backend de campanhas não tem envelope uniforme: cada endpoint pode
// devolver array puro, campo nomeado ou campo data
func TestListCampaignsToleratesPayloadShapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantLen int
	}{
		{"Array puro", `{"success":true,"data":[{"id":"c1"},{"id":"c2"}]}`, 2},
		{"Campo nomeado", `{"success":true,"data":{"campaigns":[{"id":"c1"}]}}`, 1},
		{"Campo data aninhado", `{"success":true,"data":{"data":[{"id":"c1"}]}}`, 1},
		{"Sem envelope", `[{"id":"c1"},{"id":"c2"},{"id":"c3"}]`, 3},
		{"Formato desconhecido", `{"success":true,"data":{"total":0}}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway, server := newGateway(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.payload))
			})
			defer server.Close()

			campaigns, err := gateway.ListCampaigns(context.Background())
			require.NoError(t, err)
			assert.Len(t, campaigns, tt.wantLen)
		})
	}
}

func TestGetCampaign(t *testing.T) {
	gateway, server := newGateway(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/campaigns/c42", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":"c42","name":"Summer Launch","status":"active","current_gmv":12500.5}}`))
	})
	defer server.Close()

	campaign, err := gateway.GetCampaign(context.Background(), "c42")
	require.NoError(t, err)
	assert.Equal(t, "Summer Launch", campaign.Name)
	assert.Equal(t, domain.CampaignActive, campaign.Status)
	assert.Equal(t, 12500.5, campaign.CurrentGMV)
}

func TestCreateApplication(t *testing.T) {
	gateway, server := newGateway(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/applications/", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":"a1","campaign_id":"c1","status":"pending"}}`))
	})
	defer server.Close()

	application, err := gateway.CreateApplication(context.Background(), domain.CreateApplicationRequest{
		CampaignID: "c1",
		Note:       "tenho audiência no nicho",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, application.Status)
}

func TestFailurePropagatesMessage(t *testing.T) {
	gateway, server := newGateway(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"error":"serviço em manutenção"}`))
	})
	defer server.Close()

	_, err := gateway.ListAgencyBrands(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serviço em manutenção")
}
