package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/marketplace-client/internal/core/domain"
	"github.com/skillbridge/marketplace-client/internal/core/ports"
)

// stubCreds is a fixed-token CredentialStore for client tests.
type stubCreds struct {
	token string
}

func (s *stubCreds) Token() string                  { return s.token }
func (s *stubCreds) SetToken(token string) error    { s.token = token; return nil }
func (s *stubCreds) CachedUser() *domain.User       { return nil }
func (s *stubCreds) SetUser(u *domain.User) error   { return nil }
func (s *stubCreds) Role() string                   { return "" }
func (s *stubCreds) Clear() error                   { s.token = ""; return nil }

var _ ports.CredentialStore = (*stubCreds)(nil)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, &stubCreds{token: token}, zerolog.Nop())
}

func TestClient_AttachesBearerCredential(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode([]domain.Job{})
	})

	_, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer T", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_OmitsAuthorizationWhenLoggedOut(t *testing.T) {
	var gotAuth string
	header := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, header = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]domain.Job{})
	})

	_, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, header, "Authorization header must be absent, not empty")
}

func TestClient_Login(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "secret1", body["password"])

		json.NewEncoder(w).Encode(map[string]any{
			"token": "T",
			"user":  map[string]any{"_id": "1", "name": "A", "role": "freelancer"},
		})
	})

	res, err := client.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "T", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "1", res.User.ID)
	assert.Equal(t, domain.RoleFreelancer, res.User.Role)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"single message", http.StatusBadRequest, `{"message":"email already registered"}`, "email already registered"},
		{"validation list", http.StatusUnprocessableEntity, `{"errors":[{"msg":"name is required"},{"msg":"invalid email"}]}`, "name is required, invalid email"},
		{"empty list falls back to message", http.StatusBadRequest, `{"message":"bad request","errors":[]}`, "bad request"},
		{"unparseable body", http.StatusInternalServerError, `<html>boom</html>`, "request failed"},
		{"empty body", http.StatusServiceUnavailable, ``, "request failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.CurrentUser(context.Background())
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClient_FreelancersBySkill(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/freelancers", r.URL.Path)
		assert.Equal(t, "web design", r.URL.Query().Get("skill"))
		json.NewEncoder(w).Encode([]domain.User{{ID: "1", Role: domain.RoleFreelancer}})
	})

	users, err := client.FreelancersBySkill(context.Background(), "web design")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "1", users[0].ID)
}

func TestClient_VerifyPayment(t *testing.T) {
	client := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/payments/verify/ref_123", r.URL.Path)
		json.NewEncoder(w).Encode(domain.Transaction{ID: "t1", Status: domain.TransactionFunded, Reference: "ref_123"})
	})

	tx, err := client.VerifyPayment(context.Background(), "ref_123")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionFunded, tx.Status)
}

func TestClient_FundEscrow(t *testing.T) {
	client := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions/fund", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "job1", body["jobId"])
		assert.Equal(t, 150.0, body["amount"])

		json.NewEncoder(w).Encode(domain.PaymentInit{AuthorizationURL: "https://pay.example/abc", Reference: "ref_1"})
	})

	init, err := client.FundEscrow(context.Background(), "job1", 150)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/abc", init.AuthorizationURL)
	assert.Equal(t, "ref_1", init.Reference)
}

func TestClient_AdminDeleteUser(t *testing.T) {
	client := newTestClient(t, "T", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/users/u1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.AdminDeleteUser(context.Background(), "u1"))
}

func TestClient_DefaultBaseURL(t *testing.T) {
	client := New("", &stubCreds{}, zerolog.Nop())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
