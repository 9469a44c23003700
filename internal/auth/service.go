package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	platformmetrics "medicinna/internal/platform/metrics"
	dErrors "medicinna/pkg/domain-errors"
	"medicinna/pkg/requestcontext"
)

// TokenIssuer abstracts access-token creation so the service can be tested
// without real signing keys.
type TokenIssuer interface {
	GenerateAccessToken(login, role string, expiresIn time.Duration) (string, error)
}

// Service implements the register and login flows.
type Service struct {
	users       UserStore
	tokens      TokenIssuer
	tokenTTL    time.Duration
	loginDomain string
	logger      *slog.Logger
	metrics     *platformmetrics.Metrics
}

// NewService wires the auth gateway. metrics may be nil.
func NewService(users UserStore, tokens TokenIssuer, tokenTTL time.Duration, loginDomain string, logger *slog.Logger, metrics *platformmetrics.Metrics) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if tokens == nil {
		return nil, errors.New("token issuer is required")
	}
	return &Service{
		users:       users,
		tokens:      tokens,
		tokenTTL:    tokenTTL,
		loginDomain: loginDomain,
		logger:      logger,
		metrics:     metrics,
	}, nil
}

// RegisterParams carries a registration request into the service.
type RegisterParams struct {
	Username     string
	Password     string
	HospitalName string
	Role         string
}

// Register creates an account for the normalized login. A duplicate login
// fails with a conflict and leaves the existing account untouched.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	role, err := ParseRole(params.Role)
	if err != nil {
		return nil, err
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:             uuid.New(),
		Email:          NormalizeLogin(params.Username, s.loginDomain),
		HashedPassword: hashed,
		HospitalName:   params.HospitalName,
		Role:           role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not create account", err)
	}

	s.metrics.IncrementUsersRegistered()
	s.logger.InfoContext(ctx, "user registered",
		"request_id", requestcontext.RequestID(ctx),
		"login", user.Email,
		"role", user.Role,
	)
	return user, nil
}

// LoginResult is a successful authentication: a signed time-bound token plus
// the identity it embeds.
type LoginResult struct {
	Token    string
	Role     Role
	Username string
}

// errInvalidCredentials is deliberately generic: the response must not reveal
// whether the login exists or the password was wrong.
var errInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")

// Login validates credentials and issues an access token. Failed logins are
// not written to the scan audit log; they are an auth concern, not a scan.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	email := NormalizeLogin(username, s.loginDomain)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.metrics.IncrementLogin("failure")
			return nil, errInvalidCredentials
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not look up account", err)
	}

	if err := VerifyPassword(password, user.HashedPassword); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.metrics.IncrementLogin("failure")
			s.logger.WarnContext(ctx, "login failed",
				"request_id", requestcontext.RequestID(ctx),
				"login", email,
			)
			return nil, errInvalidCredentials
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not verify credentials", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.Email, string(user.Role), s.tokenTTL)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "could not issue token", err)
	}

	s.metrics.IncrementLogin("success")
	s.logger.InfoContext(ctx, "user logged in",
		"request_id", requestcontext.RequestID(ctx),
		"login", user.Email,
		"role", user.Role,
	)
	return &LoginResult{Token: token, Role: user.Role, Username: user.Email}, nil
}
