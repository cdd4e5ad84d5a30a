package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorlift/dashboard-client/internal/auth"
	"github.com/creatorlift/dashboard-client/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New("campaign", server.URL, 5*time.Second, auth.NewStaticTokenSource("tok-123"))
	return client, server
}

func TestGetEnvelopeSuccess(t *testing.T) {
	var gotAuth, gotRequestID string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"success":true,"data":[{"id":"c1"}]}`))
	})
	defer server.Close()

	resp := client.Get(context.Background(), "/api/v1/campaigns", nil)

	assert.True(t, resp.Success)
	assert.JSONEq(t, `[{"id":"c1"}]`, string(resp.Data))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestGetWithoutEnvelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"c1"},{"id":"c2"}]`))
	})
	defer server.Close()

	resp := client.Get(context.Background(), "/api/v1/campaigns", nil)

	assert.True(t, resp.Success)
	assert.JSONEq(t, `[{"id":"c1"},{"id":"c2"}]`, string(resp.Data))
}

func TestGetQueryParams(t *testing.T) {
	var gotQuery url.Values

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"success":true,"data":[]}`))
	})
	defer server.Close()

	params := url.Values{}
	params.Add("status", "approved")
	params.Add("limit", "4")

	client.Get(context.Background(), "/api/v1/applications/", params)

	assert.Equal(t, "approved", gotQuery.Get("status"))
	assert.Equal(t, "4", gotQuery.Get("limit"))
}

func TestDomainRejection(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"quota de candidaturas atingida"}`))
	})
	defer server.Close()

	resp := client.Post(context.Background(), "/api/v1/applications/", map[string]string{"campaign_id": "c1"})

	assert.False(t, resp.Success)
	assert.Equal(t, "quota de candidaturas atingida", resp.ErrorMessage())
}

func TestHTTPErrorWithEnvelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"error":"acesso negado"}`))
	})
	defer server.Close()

	resp := client.Get(context.Background(), "/api/v1/agency/settings", nil)

	assert.False(t, resp.Success)
	assert.Equal(t, "acesso negado", resp.Error)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHTTPErrorWithoutEnvelope(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	defer server.Close()

	resp := client.Get(context.Background(), "/api/v1/campaigns/missing", nil)

	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "HTTP_404")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Mesmo com status 2xx, success=false do backend força falha; o inverso
// (success=true em status de erro) também não passa
func TestEnvelopeSuccessRequiresOkStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"success":true,"data":[]}`))
	})
	defer server.Close()

	resp := client.Get(context.Background(), "/api/v1/campaigns", nil)

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.ErrorMessage())
}

func TestNetworkFailureCollapses(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	server.Close() // derruba o servidor antes da chamada

	resp := client.Get(context.Background(), "/api/v1/campaigns", nil)

	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, 0, resp.StatusCode)
}

func TestPutAndDelete(t *testing.T) {
	var gotMethod, gotBody string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"success":true,"data":{}}`))
	})
	defer server.Close()

	resp := client.Put(context.Background(), "/api/v1/agency/settings", map[string]string{"currency": "BRL"})
	require.True(t, resp.Success)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.JSONEq(t, `{"currency":"BRL"}`, gotBody)

	resp = client.Delete(context.Background(), "/api/v1/payments/methods/pm1")
	require.True(t, resp.Success)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestUpload(t *testing.T) {
	var gotContentType, gotFile, gotPurpose string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		raw, _ := io.ReadAll(file)
		gotFile = header.Filename + ":" + string(raw)
		gotPurpose = r.FormValue("purpose")

		w.Write([]byte(`{"success":true,"data":{"id":"f1","url":"https://cdn/logo.png"}}`))
	})
	defer server.Close()

	resp := client.Upload(
		context.Background(),
		"/api/v1/files/upload",
		"file",
		"logo.png",
		strings.NewReader("png-bytes"),
		map[string]string{"purpose": "brand_logo"},
	)

	assert.True(t, resp.Success)
	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "logo.png:png-bytes", gotFile)
	assert.Equal(t, "brand_logo", gotPurpose)
}
