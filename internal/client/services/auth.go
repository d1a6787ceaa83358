package services

import (
	"context"
	"fmt"

	"github.com/ErikMirg/BSC-Portal/internal/client/api"
	"github.com/ErikMirg/BSC-Portal/internal/client/session"
	"github.com/ErikMirg/BSC-Portal/internal/logging"
)

// AuthState is the session state the guard derives on startup.
type AuthState int

const (
	// StateChecking is the initial state while the stored credential is
	// being probed. No guarded operation runs in this state.
	StateChecking AuthState = iota
	// StateAuthenticated means the stored credential was accepted.
	StateAuthenticated
	// StateAnonymous means there is no usable credential.
	StateAnonymous
)

func (s AuthState) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// AuthService owns the credential lifecycle: the startup guard check,
// the credential exchange and logout.
//
// Contract:
//   - Check: probe the stored credential exactly once per application load.
//   - Login: exchange credentials and persist the returned token.
//   - Logout: drop the persisted token.
type AuthService interface {
	Check(ctx context.Context) AuthState
	Login(ctx context.Context, login, password string) (*api.TokenResponse, error)
	Logout() error
}

type authService struct {
	gw      Gateway
	session session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the gateway and the
// session store.
func NewAuthService(gw Gateway, sess session.Store, log logging.Logger) AuthService {
	return &authService{gw: gw, session: sess, log: log}
}

// Check validates the stored credential by probing the own-profile
// endpoint. No credential means anonymous. A 401 clears the store (forced
// logout); any other failure is treated as transient and leaves the
// credential in place so the next start can retry.
func (a *authService) Check(ctx context.Context) AuthState {
	if _, ok := a.session.Token(); !ok {
		return StateAnonymous
	}

	if _, err := a.gw.MyProfile(ctx); err != nil {
		if api.IsUnauthorized(err) {
			a.log.Warn(ctx, "stored credential rejected, clearing session")
			if err := a.session.ClearToken(); err != nil {
				a.log.Error(ctx, "clear session failed", "err", err)
			}
		} else {
			a.log.Warn(ctx, "session check failed", "err", err)
		}
		return StateAnonymous
	}

	return StateAuthenticated
}

// Login exchanges credentials for a bearer token and persists it.
func (a *authService) Login(ctx context.Context, login, password string) (*api.TokenResponse, error) {
	token, err := a.gw.Login(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if err := a.session.SetToken(token.AccessToken); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	return token, nil
}

// Logout removes the persisted credential.
func (a *authService) Logout() error {
	return a.session.ClearToken()
}
