package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domainauth "github.com/wisherr/wisherr-ui/internal/domain/auth"
	"github.com/wisherr/wisherr-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenAuthenticator = (*MockAuthenticator)(nil)
	_ ports.IdentityResolver   = (*MockIdentityResolver)(nil)
	_ ports.SessionStore       = (*MemorySessionStore)(nil)
	_ ports.SSOProvider        = (*MockSSOProvider)(nil)
	_ ports.SSOTokenExchanger  = (*MockTokenExchanger)(nil)
	_ ports.AccountRegistrar   = (*MockRegistrar)(nil)
	_ ports.ProfileAPI         = (*MockProfileAPI)(nil)
)

// MockAuthenticator simulates the backend credential exchange. By default
// any non-empty credentials yield Token; set LoginFunc for custom behavior.
type MockAuthenticator struct {
	LoginFunc func(ctx context.Context, username, password string) (string, error)
	Token     string

	mu    sync.Mutex
	calls int
}

// NewMockAuthenticator creates a MockAuthenticator with a deterministic token.
func NewMockAuthenticator() *MockAuthenticator {
	return &MockAuthenticator{Token: "mock-token"}
}

func (m *MockAuthenticator) Login(ctx context.Context, username, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}

	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if username == "" || password == "" {
		return "", errors.New("missing credentials")
	}
	return m.Token, nil
}

// Calls reports how many default logins were served.
func (m *MockAuthenticator) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MockIdentityResolver simulates the backend profile lookup. By default any
// non-empty token resolves to User; set MeFunc for custom behavior.
type MockIdentityResolver struct {
	MeFunc func(ctx context.Context, token string) (domainauth.User, error)
	User   domainauth.User

	mu    sync.Mutex
	calls int
}

// NewMockIdentityResolver creates a resolver with a sensible default user.
func NewMockIdentityResolver() *MockIdentityResolver {
	return &MockIdentityResolver{
		User: domainauth.User{
			ID:       1,
			Username: "mockuser",
			Email:    "mock.user@example.com",
		},
	}
}

func (m *MockIdentityResolver) Me(ctx context.Context, token string) (domainauth.User, error) {
	if m.MeFunc != nil {
		return m.MeFunc(ctx, token)
	}

	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if token == "" {
		return domainauth.User{}, errors.New("missing token")
	}
	return m.User, nil
}

// Calls reports how many default lookups were served.
func (m *MockIdentityResolver) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// MemorySessionStore is an in-memory session store for tests.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domainauth.Session

	// Optional error injection
	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domainauth.Session)}
}

func (s *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if s.GetErr != nil {
		return domainauth.Session{}, s.GetErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return domainauth.Session{}, errors.New("session not found")
	}
	return sess, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len reports how many sessions are stored.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// MockSSOProvider simulates an OIDC provider with deterministic state and
// nonce values.
type MockSSOProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (string, error)

	AuthURL    string
	RawIDToken string

	mu    sync.Mutex
	calls int
}

// NewMockSSOProvider creates a provider with sensible defaults.
func NewMockSSOProvider() *MockSSOProvider {
	return &MockSSOProvider{
		AuthURL:    "https://mock-idp/auth",
		RawIDToken: "mock-id-token",
	}
}

func (m *MockSSOProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	m.mu.Lock()
	m.calls++
	n := m.calls
	m.mu.Unlock()

	return m.AuthURL, fmt.Sprintf("state-%d", n), fmt.Sprintf("nonce-%d", n), nil
}

func (m *MockSSOProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (string, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}
	if in.Code == "" || in.State == "" || in.Nonce == "" {
		return "", errors.New("incomplete exchange input")
	}
	return m.RawIDToken, nil
}

// MockTokenExchanger simulates the backend OIDC token exchange.
type MockTokenExchanger struct {
	ExchangeFunc func(ctx context.Context, rawIDToken string) (string, error)
	Token        string
}

// NewMockTokenExchanger creates an exchanger with a deterministic token.
func NewMockTokenExchanger() *MockTokenExchanger {
	return &MockTokenExchanger{Token: "mock-sso-token"}
}

func (m *MockTokenExchanger) ExchangeOIDCToken(ctx context.Context, rawIDToken string) (string, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, rawIDToken)
	}
	if rawIDToken == "" {
		return "", errors.New("missing id token")
	}
	return m.Token, nil
}

// MockRegistrar simulates backend account creation with sequential ids.
type MockRegistrar struct {
	RegisterFunc func(ctx context.Context, username, email, password string) (int64, error)

	mu     sync.Mutex
	nextID int64
}

// NewMockRegistrar creates a registrar starting at id 1.
func NewMockRegistrar() *MockRegistrar {
	return &MockRegistrar{}
}

func (m *MockRegistrar) Register(ctx context.Context, username, email, password string) (int64, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, username, email, password)
	}
	if username == "" || email == "" || password == "" {
		return 0, errors.New("missing registration fields")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	return m.nextID, nil
}

// MockProfileAPI applies profile edits to a base user. By default known
// string fields are copied onto User and the result returned; set
// UpdateFunc for custom behavior.
type MockProfileAPI struct {
	UpdateFunc func(ctx context.Context, token string, fields map[string]any) (domainauth.User, error)
	User       domainauth.User
}

// NewMockProfileAPI creates a profile API double around the given user.
func NewMockProfileAPI(user domainauth.User) *MockProfileAPI {
	return &MockProfileAPI{User: user}
}

func (m *MockProfileAPI) UpdateProfile(ctx context.Context, token string, fields map[string]any) (domainauth.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, token, fields)
	}
	if token == "" {
		return domainauth.User{}, errors.New("missing token")
	}

	user := m.User
	for key, value := range fields {
		s, ok := value.(string)
		if !ok {
			continue
		}
		switch key {
		case "username":
			user.Username = s
		case "email":
			user.Email = s
		case "locale":
			user.Locale = s
		case "theme":
			user.Theme = s
		}
	}
	return user, nil
}
