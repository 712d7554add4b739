package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dastudio/da-assistant/internal/domain"
	"github.com/dastudio/da-assistant/internal/guards"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Credential is one seeded account the service can authenticate.
type Credential struct {
	Username string
	Password string
	UserID   string
	Roles    []string
}

// TokenPair is the result of a successful authentication or refresh.
type TokenPair struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	UserID       string
	Roles        []string
}

type assistantClaims struct {
	jwt.RegisteredClaims
	Roles     []string `json:"roles"`
	TokenType string   `json:"token_type"`
}

type TokenServiceDependencies struct {
	Secret      string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	Credentials []Credential
	Audit       *guards.AuditLogger
}

// TokenService issues and validates HMAC-signed bearer tokens for the
// assistant's gRPC surface. Credential storage belongs to the platform; this
// service only checks against the configured seed accounts.
type TokenService struct {
	secret      []byte
	accessTTL   time.Duration
	refreshTTL  time.Duration
	credentials map[string]Credential
	audit       *guards.AuditLogger
}

func NewTokenService(deps TokenServiceDependencies) *TokenService {
	credentials := make(map[string]Credential, len(deps.Credentials))
	for _, c := range deps.Credentials {
		credentials[c.Username] = c
	}

	return &TokenService{
		secret:      []byte(deps.Secret),
		accessTTL:   deps.AccessTTL,
		refreshTTL:  deps.RefreshTTL,
		credentials: credentials,
		audit:       deps.Audit,
	}
}

// Authenticate checks the credentials and issues an access/refresh pair.
func (s *TokenService) Authenticate(username, password string) (TokenPair, error) {
	cred, ok := s.credentials[username]
	if !ok || subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) != 1 {
		s.audit.Record(username, "authenticate", guards.OutcomeFailure)
		return TokenPair{}, domain.ErrAuthentication
	}

	pair, err := s.issuePair(cred.UserID, cred.Roles)
	if err != nil {
		return TokenPair{}, err
	}

	s.audit.Record(cred.UserID, "authenticate", guards.OutcomeSuccess)

	return pair, nil
}

// ValidateToken verifies an access token and returns the user it carries.
func (s *TokenService) ValidateToken(token string) (domain.User, error) {
	claims, err := s.parse(token)
	if err != nil || claims.TokenType != tokenTypeAccess {
		return domain.User{}, domain.ErrAuthentication
	}

	return domain.User{ID: claims.Subject, Roles: claims.Roles}, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *TokenService) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := s.parse(refreshToken)
	if err != nil || claims.TokenType != tokenTypeRefresh {
		s.audit.Record("unknown", "refresh_token", guards.OutcomeFailure)
		return TokenPair{}, domain.ErrAuthentication
	}

	pair, err := s.issuePair(claims.Subject, claims.Roles)
	if err != nil {
		return TokenPair{}, err
	}

	s.audit.Record(claims.Subject, "refresh_token", guards.OutcomeSuccess)

	return pair, nil
}

func (s *TokenService) issuePair(userID string, roles []string) (TokenPair, error) {
	now := time.Now()
	expiresAt := now.Add(s.accessTTL)

	access, err := s.sign(userID, roles, tokenTypeAccess, now, expiresAt)
	if err != nil {
		return TokenPair{}, fmt.Errorf("signing access token: %w", err)
	}

	refresh, err := s.sign(userID, roles, tokenTypeRefresh, now, now.Add(s.refreshTTL))
	if err != nil {
		return TokenPair{}, fmt.Errorf("signing refresh token: %w", err)
	}

	return TokenPair{
		Token:        access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		UserID:       userID,
		Roles:        roles,
	}, nil
}

func (s *TokenService) sign(userID string, roles []string, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	claims := assistantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Roles:     roles,
		TokenType: tokenType,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(token string) (*assistantClaims, error) {
	claims := &assistantClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrAuthentication
	}

	return claims, nil
}
