package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/internal/core/ports"
	"github.com/infohub/infohub-api/internal/infrastructure/db/memory"
)

func newAuthService(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewAuthService(store, memory.NewRevoker(), AuthOptions{Secret: "secret", Issuer: "infohub", TokenTTL: time.Hour}, zerolog.Nop())
	return svc, store
}

func registerAlice(t *testing.T, svc *AuthService) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Password: "pass1234",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return user
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthService(t)

	user := registerAlice(t, svc)
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("expected new user to be active")
	}
	if len(user.ID) != 32 {
		t.Fatalf("unexpected id %q", user.ID)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: " ", Password: "x", Email: "a@b.c"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pass1234", Email: "b@b.c", Role: "root"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(t)
	registerAlice(t, svc)

	_, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Password: "pass1234", Email: "x@example.com"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	svc, _ := newAuthService(t)
	alice := registerAlice(t, svc)

	token, user, err := svc.Authenticate(context.Background(), "alice", "pass1234")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.ID != alice.ID || token == "" {
		t.Fatalf("unexpected result: %q %+v", token, user)
	}

	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return []byte("secret"), nil })
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not validate: %v", err)
	}
	if claims.Subject != alice.ID || claims.Role != "user" || claims.Issuer != "infohub" || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	for _, tc := range []struct{ username, password string }{
		{"alice", "wrong"},
		{"nobody", "pass1234"},
		{"", ""},
	} {
		if _, _, err := svc.Authenticate(context.Background(), tc.username, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s/%s: expected ErrInvalidCredentials, got %v", tc.username, tc.password, err)
		}
	}
}

func TestAuthService_Authenticate_InactiveUser(t *testing.T) {
	svc, store := newAuthService(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	_ = store.Do(context.Background(), func(tx ports.Tx) error {
		return tx.Users().Create(context.Background(), &domain.User{
			ID: newID(), Username: "ghost", Email: "g@example.com",
			PasswordHash: string(hash), Role: domain.RoleUser,
		})
	})

	if _, _, err := svc.Authenticate(context.Background(), "ghost", "pass1234"); !errors.Is(err, domain.ErrInactiveUser) {
		t.Fatalf("expected ErrInactiveUser, got %v", err)
	}
}

func TestAuthService_Resolve(t *testing.T) {
	svc, _ := newAuthService(t)
	alice := registerAlice(t, svc)
	token, _, _ := svc.Authenticate(context.Background(), "alice", "pass1234")

	user, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if user.ID != alice.ID {
		t.Fatalf("resolved wrong user: %+v", user)
	}
}

func TestAuthService_Resolve_RejectsBadTokens(t *testing.T) {
	svc, _ := newAuthService(t)
	alice := registerAlice(t, svc)

	sign := func(method jwt.SigningMethod, key any, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	valid := func() tokenClaims {
		return tokenClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   alice.ID,
			Issuer:    "infohub",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := valid()
	wrongIssuer.Issuer = "someone-else"
	noExpiry := valid()
	noExpiry.ExpiresAt = nil
	unknown := valid()
	unknown.Subject = "missing"

	cases := map[string]string{
		"garbage":      "not-a-token",
		"expired":      sign(jwt.SigningMethodHS256, []byte("secret"), expired),
		"wrong secret": sign(jwt.SigningMethodHS256, []byte("other"), valid()),
		"wrong alg":    sign(jwt.SigningMethodHS512, []byte("secret"), valid()),
		"wrong issuer": sign(jwt.SigningMethodHS256, []byte("secret"), wrongIssuer),
		"no expiry":    sign(jwt.SigningMethodHS256, []byte("secret"), noExpiry),
		"unknown user": sign(jwt.SigningMethodHS256, []byte("secret"), unknown),
	}
	for name, token := range cases {
		if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}

func TestAuthService_Revoke(t *testing.T) {
	svc, _ := newAuthService(t)
	registerAlice(t, svc)
	token, _, _ := svc.Authenticate(context.Background(), "alice", "pass1234")
	other, _, _ := svc.Authenticate(context.Background(), "alice", "pass1234")

	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected revoked token to be rejected, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), other); err != nil {
		t.Fatalf("other sessions must survive logout: %v", err)
	}
}

type stubRevoker struct{ err error }

func (r stubRevoker) Revoke(context.Context, string, time.Duration) error { return r.err }
func (r stubRevoker) IsRevoked(context.Context, string) (bool, error)     { return false, r.err }

func TestAuthService_Resolve_RevokerFailure(t *testing.T) {
	store := memory.NewStore()
	boom := errors.New("redis down")
	svc := NewAuthService(store, stubRevoker{err: boom}, AuthOptions{Secret: "secret"}, zerolog.Nop())
	registerAlice(t, svc)
	token, _, _ := svc.Authenticate(context.Background(), "alice", "pass1234")

	_, err := svc.Resolve(context.Background(), token)
	if !errors.Is(err, boom) || errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected infrastructure error, got %v", err)
	}
}
