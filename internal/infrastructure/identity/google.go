package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const verifyTimeout = 10 * time.Second

// GoogleVerifier validates ID tokens against Google's tokeninfo endpoint.
type GoogleVerifier struct {
	verifyURL string
	audience  string
	client    *http.Client
}

func NewGoogleVerifier(verifyURL, audience string) *GoogleVerifier {
	return &GoogleVerifier{
		verifyURL: verifyURL,
		audience:  audience,
		client:    &http.Client{Timeout: verifyTimeout},
	}
}

type tokenInfoResponse struct {
	Subject  string `json:"sub"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Audience string `json:"aud"`
	Expiry   string `json:"exp"` // unix seconds, as a string
}

func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*TokenInfo, error) {
	endpoint := v.verifyURL + "?id_token=" + url.QueryEscape(idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, ErrVerifierUnavailable
	}
	defer resp.Body.Close()

	// The endpoint answers 4xx for any token it rejects.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ErrVerifierUnavailable
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if v.audience != "" && info.Audience != v.audience {
		return nil, ErrInvalidToken
	}

	expSeconds, err := strconv.ParseInt(info.Expiry, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}
	expiry := time.Unix(expSeconds, 0)
	if time.Now().After(expiry) {
		return nil, ErrInvalidToken
	}

	if info.Subject == "" || info.Email == "" {
		return nil, ErrInvalidToken
	}

	return &TokenInfo{
		Subject: info.Subject,
		Email:   info.Email,
		Name:    info.Name,
		Expiry:  expiry,
	}, nil
}
