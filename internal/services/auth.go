package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sic15/foodgram-project-react/internal/platform/apierr"
	"github.com/sic15/foodgram-project-react/internal/platform/logger"
	"github.com/sic15/foodgram-project-react/internal/repos"
	"github.com/sic15/foodgram-project-react/internal/requestdata"
	"github.com/sic15/foodgram-project-react/internal/types"
)

type RegisterInput struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*types.UserView, error)
	Login(ctx context.Context, email, password string) (string, error)
	SetPassword(ctx context.Context, currentPassword, newPassword string) error
	// SetContextFromToken validates the access token and attaches the caller
	// identity to the context.
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	jwtSecret      []byte
	accessTokenTTL time.Duration
}

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// Route segments under /users that a username must not shadow.
var reservedUsernames = map[string]struct{}{
	"me":            {},
	"set_password":  {},
	"subscriptions": {},
	"subscribe":     {},
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, jwtSecret string, accessTokenTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:             db,
		log:            serviceLog,
		userRepo:       userRepo,
		jwtSecret:      []byte(jwtSecret),
		accessTokenTTL: accessTokenTTL,
	}
}

func validateRegisterInput(input RegisterInput) error {
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return apierr.Validation("email", "a valid email is required")
	}
	if len(input.Email) > 50 {
		return apierr.Validation("email", "email must be at most 50 characters")
	}
	if input.Username == "" || len(input.Username) > 40 || !usernameRe.MatchString(input.Username) {
		return apierr.Validation("username", "username contains an invalid character")
	}
	if _, reserved := reservedUsernames[strings.ToLower(input.Username)]; reserved {
		return apierr.Validation("username", "this username is not allowed")
	}
	if len(input.FirstName) > 30 {
		return apierr.Validation("first_name", "first name must be at most 30 characters")
	}
	if len(input.LastName) > 30 {
		return apierr.Validation("last_name", "last name must be at most 30 characters")
	}
	if input.Password == "" {
		return apierr.Validation("password", "a password is required")
	}
	return nil
}

func (as *authService) Register(ctx context.Context, input RegisterInput) (*types.UserView, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &types.User{
		Email:     input.Email,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  string(hash),
	}
	if _, err := as.userRepo.Create(ctx, nil, user); err != nil {
		if isUniqueViolation(err) {
			return nil, apierr.AlreadyExists("a user with this email or username already exists")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	as.log.Info("User registered", "user_id", user.ID, "username", user.Username)
	view := user.View(false)
	return &view, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := as.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if isNotFound(err) {
			return "", apierr.Unauthorized("invalid credentials")
		}
		return "", fmt.Errorf("fetching user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apierr.Unauthorized("invalid credentials")
	}
	return as.issueToken(user.ID)
}

func (as *authService) SetPassword(ctx context.Context, currentPassword, newPassword string) error {
	userID := requestdata.ViewerID(ctx)
	if userID == uuid.Nil {
		return apierr.Unauthorized("authentication required")
	}
	user, err := as.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return fmt.Errorf("fetching user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return apierr.Validation("current_password", "current password is incorrect")
	}
	if currentPassword == newPassword {
		return apierr.Validation("new_password", "new password must differ from the current one")
	}
	if newPassword == "" {
		return apierr.Validation("new_password", "a password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}
	return as.userRepo.UpdatePassword(ctx, nil, userID, string(hash))
}

func (as *authService) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return as.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return ctx, apierr.Unauthorized("invalid or expired token")
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return ctx, apierr.Unauthorized("invalid token claims")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, apierr.Unauthorized("invalid token subject")
	}
	rd := &requestdata.RequestData{TokenString: tokenString, UserID: userID}
	return requestdata.WithRequestData(ctx, rd), nil
}
