package services

import (
	"context"
	"testing"
	"time"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/requestdata"
	"github.com/sic15/foodgram-project-react/internal/types"
)

func newAuthService(t *testing.T, te *testEnv) AuthService {
	t.Helper()
	log := logger.NewNop()
	return NewAuthService(te.db, log, repos.NewUserRepo(te.db, log), "test-secret", time.Hour)
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "alice@example.com",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Password:  "looking-glass",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	te := newTestEnv(t)
	auth := newAuthService(t, te)

	view, err := auth.Register(context.Background(), validRegisterInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if view.Username != "alice" || view.IsSubscribed {
		t.Fatalf("unexpected view: %+v", view)
	}

	// Passwords are stored hashed, never verbatim.
	var stored types.User
	if err := te.db.Where("username = ?", "alice").First(&stored).Error; err != nil {
		t.Fatalf("fetching user: %v", err)
	}
	if stored.Password == "looking-glass" {
		t.Fatalf("password stored in plain text")
	}

	token, err := auth.Login(context.Background(), "alice@example.com", "looking-glass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("empty token")
	}

	ctx, err := auth.SetContextFromToken(context.Background(), token)
	if err != nil {
		t.Fatalf("validating token: %v", err)
	}
	if requestdata.ViewerID(ctx) != stored.ID {
		t.Fatalf("token subject does not match the registered user")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	te := newTestEnv(t)
	auth := newAuthService(t, te)
	if _, err := auth.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	for name, attempt := range map[string][2]string{
		"wrong_password": {"alice@example.com", "nope"},
		"unknown_email":  {"ghost@example.com", "looking-glass"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), attempt[0], attempt[1])
			apiErr, ok := apierr.As(err)
			if !ok || apiErr.Code != apierr.CodeUnauthorized {
				t.Fatalf("expected unauthorized, got %v", err)
			}
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	te := newTestEnv(t)
	auth := newAuthService(t, te)

	cases := []struct {
		name      string
		mutate    func(*RegisterInput)
		wantField string
	}{
		{"missing_email", func(in *RegisterInput) { in.Email = "" }, "email"},
		{"not_an_email", func(in *RegisterInput) { in.Email = "alice.example.com" }, "email"},
		{"bad_username", func(in *RegisterInput) { in.Username = "bad name!" }, "username"},
		{"reserved_me", func(in *RegisterInput) { in.Username = "me" }, "username"},
		{"reserved_set_password", func(in *RegisterInput) { in.Username = "set_password" }, "username"},
		{"reserved_subscriptions", func(in *RegisterInput) { in.Username = "subscriptions" }, "username"},
		{"missing_password", func(in *RegisterInput) { in.Password = "" }, "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validRegisterInput()
			tc.mutate(&input)
			_, err := auth.Register(context.Background(), input)
			apiErr, ok := apierr.As(err)
			if !ok || apiErr.Code != apierr.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, present := apiErr.Fields[tc.wantField]; !present {
				t.Fatalf("expected field %q in %v", tc.wantField, apiErr.Fields)
			}
		})
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	te := newTestEnv(t)
	auth := newAuthService(t, te)
	if _, err := auth.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	duplicate := validRegisterInput()
	duplicate.Email = "other@example.com" // same username
	_, err := auth.Register(context.Background(), duplicate)
	apiErr, ok := apierr.As(err)
	if !ok || apiErr.Code != apierr.CodeAlreadyExists {
		t.Fatalf("expected already-exists, got %v", err)
	}
}

func TestSetPassword(t *testing.T) {
	te := newTestEnv(t)
	auth := newAuthService(t, te)
	if _, err := auth.Register(context.Background(), validRegisterInput()); err != nil {
		t.Fatalf("register: %v", err)
	}
	var user types.User
	if err := te.db.Where("username = ?", "alice").First(&user).Error; err != nil {
		t.Fatalf("fetching user: %v", err)
	}
	ctx := ctxAs(user.ID)

	if err := auth.SetPassword(ctx, "wrong", "new-password"); err == nil {
		t.Fatalf("expected rejection for a wrong current password")
	}
	if err := auth.SetPassword(ctx, "looking-glass", "looking-glass"); err == nil {
		t.Fatalf("expected rejection for an unchanged password")
	}
	if err := auth.SetPassword(ctx, "looking-glass", "new-password"); err != nil {
		t.Fatalf("set password: %v", err)
	}

	if _, err := auth.Login(context.Background(), "alice@example.com", "looking-glass"); err == nil {
		t.Fatalf("old password still accepted")
	}
	if _, err := auth.Login(context.Background(), "alice@example.com", "new-password"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestSetContextFromGarbageToken(t *testing.T) {
	te := newTestEnv(t)
	auth := newAuthService(t, te)

	_, err := auth.SetContextFromToken(context.Background(), "not-a-jwt")
	apiErr, ok := apierr.As(err)
	if !ok || apiErr.Code != apierr.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
