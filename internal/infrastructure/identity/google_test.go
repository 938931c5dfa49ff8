package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenInfoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("id_token"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func validBody(aud string) string {
	exp := time.Now().Add(time.Hour).Unix()
	return fmt.Sprintf(`{"sub":"108354","email":"reader@example.com","name":"Reader","aud":%q,"exp":"%d"}`, aud, exp)
}

func TestVerifyValidToken(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validBody("client-id"))

	v := NewGoogleVerifier(srv.URL, "client-id")
	info, err := v.Verify(context.Background(), "opaque-token")
	require.NoError(t, err)
	assert.Equal(t, "108354", info.Subject)
	assert.Equal(t, "reader@example.com", info.Email)
	assert.Equal(t, "Reader", info.Name)
}

func TestVerifyRejectedByProvider(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusBadRequest, `{"error":"invalid_token"}`)

	v := NewGoogleVerifier(srv.URL, "client-id")
	_, err := v.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongAudience(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validBody("someone-else"))

	v := NewGoogleVerifier(srv.URL, "client-id")
	_, err := v.Verify(context.Background(), "opaque-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyExpiredToken(t *testing.T) {
	exp := time.Now().Add(-time.Hour).Unix()
	body := fmt.Sprintf(`{"sub":"108354","email":"reader@example.com","aud":"client-id","exp":"%d"}`, exp)
	srv := tokenInfoServer(t, http.StatusOK, body)

	v := NewGoogleVerifier(srv.URL, "client-id")
	_, err := v.Verify(context.Background(), "opaque-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	v := NewGoogleVerifier(srv.URL, "client-id")
	_, err := v.Verify(context.Background(), "opaque-token")
	assert.ErrorIs(t, err, ErrVerifierUnavailable)
}

func TestVerifyProviderError(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusInternalServerError, "")

	v := NewGoogleVerifier(srv.URL, "client-id")
	_, err := v.Verify(context.Background(), "opaque-token")
	assert.ErrorIs(t, err, ErrVerifierUnavailable)
}

func TestVerifySkipsAudienceCheckWhenUnset(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK, validBody("whatever"))

	v := NewGoogleVerifier(srv.URL, "")
	_, err := v.Verify(context.Background(), "opaque-token")
	assert.NoError(t, err)
}
