// Package store holds the client-side state containers: session, cart,
// orders, location and transient UI state. Containers are explicit
// values owned by the application root and passed down, never ambient
// globals, so tests get isolated instances.
//
// Mutations execute atomically with respect to each other; network
// calls are the only suspension points. A second call while one is
// pending races independently, except for credential operations where
// only the most recent one may win.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/fred1edm/jaguarexpress/internal/core/domain"
	"github.com/fred1edm/jaguarexpress/internal/core/ports"
	"github.com/fred1edm/jaguarexpress/internal/core/validate"
	"github.com/fred1edm/jaguarexpress/internal/metrics"
)

// authMirror is the fast-rehydration blob persisted under keyAuthMirror.
type authMirror struct {
	User            *domain.User `json:"user"`
	Token           string       `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// SessionStore owns the authenticated-user identity and bearer token.
// Credential operations are tagged with a monotonically increasing
// sequence number; a completion whose sequence is no longer the newest
// is discarded without touching state, so a stale response can never
// revive a cleared session.
type SessionStore struct {
	mu       sync.Mutex
	api      ports.AuthAPI
	storage  ports.Storage
	notifier ports.Notifier
	log      zerolog.Logger

	user    *domain.User
	token   string
	loading bool
	seq     uint64
}

func NewSessionStore(api ports.AuthAPI, storage ports.Storage, notifier ports.Notifier, log zerolog.Logger) *SessionStore {
	return &SessionStore{api: api, storage: storage, notifier: notifier, log: log}
}

// Login exchanges credentials for a session. On success the pair is
// stored in memory and written through to durable storage; on failure
// state is left untouched and the error propagates to the caller.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	in := ports.LoginInput{Email: email, Password: password}
	if err := validate.Struct(in); err != nil {
		return err
	}

	seq := s.begin()
	res, err := s.api.Login(ctx, in)
	return s.complete(ctx, seq, res, err, "login", "¡Bienvenido!")
}

// Register creates an account; same contract as Login.
func (s *SessionStore) Register(ctx context.Context, in ports.RegisterInput) error {
	if err := validate.Struct(in); err != nil {
		return err
	}

	seq := s.begin()
	res, err := s.api.Register(ctx, in)
	return s.complete(ctx, seq, res, err, "register", "¡Cuenta creada exitosamente!")
}

// Logout clears in-memory state and durable storage unconditionally.
// The remote logout call is best effort: no network failure can block
// the local clearing. Any in-flight credential operation is superseded.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	s.user = nil
	s.token = ""
	s.loading = false
	s.wipeStorage(ctx)
	s.mu.Unlock()

	if err := s.api.Logout(ctx); err != nil {
		s.log.Debug().Err(err).Msg("remote logout failed, session cleared locally")
	}

	metrics.SessionEventsTotal.WithLabelValues("logout").Inc()
	s.notifier.Success("Sesión cerrada")
}

// Expire clears the session the same way Logout does, without the
// remote call or the farewell notice. Wired to the gateway's 401 hook.
func (s *SessionStore) Expire(ctx context.Context) {
	s.mu.Lock()
	s.seq++
	s.user = nil
	s.token = ""
	s.loading = false
	s.wipeStorage(ctx)
	s.mu.Unlock()

	metrics.SessionEventsTotal.WithLabelValues("expired").Inc()
	s.log.Info().Msg("session expired, cleared local credentials")
}

// UpdateProfile sends a partial update and replaces the cached user
// with the server's canonical representation. On failure the error
// propagates unchanged and no partial local mutation happens.
func (s *SessionStore) UpdateProfile(ctx context.Context, in ports.ProfileUpdate) error {
	seq := s.begin()
	user, err := s.api.UpdateProfile(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return domain.ErrSuperseded
	}
	s.loading = false
	if err != nil {
		return err
	}

	s.user = user
	s.persistUser(ctx, user)
	s.notifier.Success("Perfil actualizado")
	return nil
}

// CheckAuth rehydrates the session from durable storage at process
// start. Malformed stored user data wipes storage and leaves the
// session unauthenticated: corruption recovery, never surfaced to the
// user. A stored bearer that parses as a JWT with an elapsed exp claim
// is treated the same way.
func (s *SessionStore) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, errToken := s.storage.Get(ctx, keyToken)
	raw, errUser := s.storage.Get(ctx, keyUser)
	if errToken != nil || errUser != nil {
		if !errors.Is(errToken, domain.ErrKeyNotFound) && errToken != nil {
			s.log.Warn().Err(errToken).Msg("session rehydration read failed")
		}
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn().Err(err).Msg("stored user data malformed, wiping session storage")
		s.wipeStorage(ctx)
		metrics.SessionEventsTotal.WithLabelValues("wiped").Inc()
		return
	}

	if tokenExpired(token, time.Now()) {
		s.log.Info().Msg("stored bearer token expired, wiping session storage")
		s.wipeStorage(ctx)
		metrics.SessionEventsTotal.WithLabelValues("expired").Inc()
		return
	}

	s.user = &user
	s.token = token
	metrics.SessionEventsTotal.WithLabelValues("rehydrated").Inc()
}

// User returns a copy of the authenticated user, or nil.
func (s *SessionStore) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, or "".
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated is true iff both user and token are present.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// begin tags a new credential operation and marks the store loading.
func (s *SessionStore) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.loading = true
	return s.seq
}

// complete applies a login/register result if the operation is still
// the newest one.
func (s *SessionStore) complete(ctx context.Context, seq uint64, res *ports.AuthResult, err error, event, welcome string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return domain.ErrSuperseded
	}
	s.loading = false
	if err != nil {
		return err
	}

	s.user = res.User
	s.token = res.Token
	s.persistUser(ctx, res.User)
	if werr := s.storage.Set(ctx, keyToken, res.Token); werr != nil {
		s.log.Warn().Err(werr).Msg("failed to persist token")
	}
	s.persistMirror(ctx)

	metrics.SessionEventsTotal.WithLabelValues(event).Inc()
	s.notifier.Success(welcome)
	return nil
}

// persistUser writes the user key and refreshes the mirror blob.
// Callers must hold s.mu.
func (s *SessionStore) persistUser(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to serialize user")
		return
	}
	if err := s.storage.Set(ctx, keyUser, string(raw)); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist user")
	}
	s.persistMirror(ctx)
}

// persistMirror writes the auth-storage rehydration blob. Callers must
// hold s.mu.
func (s *SessionStore) persistMirror(ctx context.Context) {
	mirror := authMirror{User: s.user, Token: s.token, IsAuthenticated: s.user != nil && s.token != ""}
	raw, err := json.Marshal(mirror)
	if err != nil {
		return
	}
	if err := s.storage.Set(ctx, keyAuthMirror, string(raw)); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist auth mirror")
	}
}

// wipeStorage removes every session key. Callers must hold s.mu.
func (s *SessionStore) wipeStorage(ctx context.Context) {
	if err := s.storage.Delete(ctx, keyToken, keyUser, keyAuthMirror); err != nil {
		s.log.Warn().Err(err).Msg("failed to wipe session storage")
	}
}

// tokenExpired reports whether tok is a parseable JWT whose exp claim
// is in the past. Opaque (non-JWT) tokens are never considered expired;
// expiry is the server's call for those.
func tokenExpired(tok string, now time.Time) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(tok, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return false
	}
	return exp != nil && exp.Before(now)
}
