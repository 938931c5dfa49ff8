package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identitydomain "catalog-backend/internal/domains/identity"
	"catalog-backend/internal/domains/user"
	"catalog-backend/internal/infrastructure/identity"
	"catalog-backend/pkg/jwt"
)

type fakeVerifier struct {
	info *identity.TokenInfo
	err  error
}

func (v *fakeVerifier) Verify(ctx context.Context, idToken string) (*identity.TokenInfo, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.info, nil
}

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, user.ErrEmailTaken
	}
	created := *u
	created.ID = uuid.New()
	r.byEmail[created.Email] = &created
	return &created, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) error { return nil }

func validInfo() *identity.TokenInfo {
	return &identity.TokenInfo{
		Subject: "108354",
		Email:   "reader@example.com",
		Name:    "Reader",
	}
}

func TestTokenLoginCreatesAccountWithoutPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewIdentityService(&fakeVerifier{info: validInfo()}, repo, jwt.NewManager("secret", 60), "/api/v1/books")

	result, err := svc.TokenLogin(context.Background(), &identitydomain.TokenLoginRequest{IDToken: "tok"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/api/v1/books", result.Redirect)
	assert.NotEmpty(t, result.AccessToken)

	u := repo.byEmail["reader@example.com"]
	require.NotNil(t, u)
	assert.Nil(t, u.PasswordHash)
	require.NotNil(t, u.Provider)
	assert.Equal(t, "google", *u.Provider)
	require.NotNil(t, u.ProviderSubject)
	assert.Equal(t, "108354", *u.ProviderSubject)
}

func TestTokenLoginReusesExistingAccount(t *testing.T) {
	repo := newFakeUserRepo()
	hash := "someday-a-hash"
	existing, err := repo.Create(context.Background(), &user.User{
		Email:        "reader@example.com",
		FullName:     "Reader",
		PasswordHash: &hash,
	})
	require.NoError(t, err)

	svc := NewIdentityService(&fakeVerifier{info: validInfo()}, repo, jwt.NewManager("secret", 60), "/api/v1/books")

	result, err := svc.TokenLogin(context.Background(), &identitydomain.TokenLoginRequest{IDToken: "tok"})
	require.NoError(t, err)
	assert.True(t, result.Success)

	// Still one account, and the existing one kept its password hash
	assert.Len(t, repo.byEmail, 1)
	assert.Equal(t, existing.ID, repo.byEmail["reader@example.com"].ID)
	assert.NotNil(t, repo.byEmail["reader@example.com"].PasswordHash)
}

func TestTokenLoginInvalidToken(t *testing.T) {
	svc := NewIdentityService(&fakeVerifier{err: identity.ErrInvalidToken}, newFakeUserRepo(), jwt.NewManager("secret", 60), "/api/v1/books")

	_, err := svc.TokenLogin(context.Background(), &identitydomain.TokenLoginRequest{IDToken: "bad"})
	assert.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestTokenLoginMissingToken(t *testing.T) {
	svc := NewIdentityService(&fakeVerifier{info: validInfo()}, newFakeUserRepo(), jwt.NewManager("secret", 60), "/api/v1/books")

	_, err := svc.TokenLogin(context.Background(), &identitydomain.TokenLoginRequest{})
	assert.Error(t, err)
}

func TestTokenLoginNameFallsBackToEmail(t *testing.T) {
	repo := newFakeUserRepo()
	info := validInfo()
	info.Name = ""
	svc := NewIdentityService(&fakeVerifier{info: info}, repo, jwt.NewManager("secret", 60), "/api/v1/books")

	_, err := svc.TokenLogin(context.Background(), &identitydomain.TokenLoginRequest{IDToken: "tok"})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", repo.byEmail["reader@example.com"].FullName)
}
