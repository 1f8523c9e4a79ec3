package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"motolog-api/models"
	"motolog-api/repositories"
	"motolog-api/utils"
)

const verificationTTL = 10 * time.Minute

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
)

// SignUpInput carries the fields of an email sign-up.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// ClientInfo is recorded on every session.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// AuthService handles email/password accounts and database-backed sessions.
// A session token is an HS256 JWT whose jti is the session row id; a token is only
// valid while that row exists and has not expired.
type AuthService struct {
	repo   *repositories.AuthRepository
	email  *EmailService
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService returns an AuthService whose sessions last ttl.
func NewAuthService(repo *repositories.AuthRepository, email *EmailService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		repo:   repo,
		email:  email,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SignUp creates the user with a credential account, mails a verification code
// and opens a session.
func (s *AuthService) SignUp(ctx context.Context, input SignUpInput, client ClientInfo) (*models.SessionView, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	var missing []string
	if input.Name == "" {
		missing = append(missing, "name")
	}
	if input.Email == "" {
		missing = append(missing, "email")
	}
	if input.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, missingFields(missing)
	}
	if !utils.IsValidEmail(input.Email) {
		return nil, &ValidationError{Fields: []string{"email"}, Message: "Invalid email address"}
	}
	if !utils.IsValidPassword(input.Password) {
		return nil, &ValidationError{
			Fields:  []string{"password"},
			Message: "Password must be at least 8 characters and mix upper case, lower case, digits or symbols",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashed := string(hash)

	now := s.now().UTC()
	user := models.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	account := models.Account{
		ID:         uuid.New().String(),
		AccountID:  user.ID,
		ProviderID: models.CredentialProvider,
		UserID:     user.ID,
		Password:   &hashed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.CreateUser(ctx, &user, &account); err != nil {
		return nil, err
	}

	if err := s.SendVerificationCode(ctx, user.Email); err != nil {
		log.Printf("Failed to send verification email to %s: %v", user.Email, err)
	}

	return s.openSession(ctx, &user, client)
}

func (s *AuthService) SignIn(ctx context.Context, email, password string, client ClientInfo) (*models.SessionView, error) {
	user, err := s.repo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	account, err := s.repo.FindCredentialAccount(ctx, user.ID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if account.Password == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*account.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, user, client)
}

func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSessionByToken(ctx, token)
}

// GetSession resolves a token into its session and user.
// Any problem with the token yields ErrInvalidSession.
func (s *AuthService) GetSession(ctx context.Context, token string) (*models.SessionView, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}

	session, err := s.repo.FindActiveSession(ctx, token, s.now().UTC())
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if session.ID != claims.ID || session.UserID != claims.Subject {
		return nil, ErrInvalidSession
	}

	user, err := s.repo.FindUserByID(ctx, session.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	return &models.SessionView{Session: *session, User: *user}, nil
}

// SendVerificationCode stores a fresh code for email and mails it.
func (s *AuthService) SendVerificationCode(ctx context.Context, email string) error {
	user, err := s.repo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return &ValidationError{Fields: []string{"email"}, Message: "Email already verified"}
	}

	code, err := s.email.GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	now := s.now().UTC()
	verification := models.Verification{
		ID:         uuid.New().String(),
		Identifier: user.Email,
		Value:      code,
		ExpiresAt:  now.Add(verificationTTL),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.ReplaceVerification(ctx, &verification); err != nil {
		return err
	}

	return s.email.SendVerificationEmail(user.Email, user.Name, code)
}

// VerifyEmail checks code against the pending verification and marks the email verified.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return user, nil
	}

	verification, err := s.repo.FindVerification(ctx, email, s.now().UTC())
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrInvalidCode
	}
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(verification.Value), []byte(strings.TrimSpace(code))) != 1 {
		return nil, ErrInvalidCode
	}

	if err := s.repo.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteVerification(ctx, verification.ID); err != nil {
		log.Printf("Failed to delete used verification %s: %v", verification.ID, err)
	}

	go func() {
		if err := s.email.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Printf("Failed to send welcome email: %v", err)
		}
	}()

	user.EmailVerified = true
	return user, nil
}

// CleanupExpired removes sessions and verification codes past their expiry.
func (s *AuthService) CleanupExpired(ctx context.Context) (sessions int64, verifications int64, err error) {
	return s.repo.DeleteExpired(ctx, s.now().UTC())
}

func (s *AuthService) openSession(ctx context.Context, user *models.User, client ClientInfo) (*models.SessionView, error) {
	now := s.now().UTC()
	sessionID := uuid.New().String()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	session := models.Session{
		ID:        sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if client.IPAddress != "" {
		session.IPAddress = &client.IPAddress
	}
	if client.UserAgent != "" {
		session.UserAgent = &client.UserAgent
	}

	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, err
	}

	return &models.SessionView{Session: session, User: *user}, nil
}
