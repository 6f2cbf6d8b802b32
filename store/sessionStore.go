package store

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bprathamesh20/food-delivery/models"
)

// AuthGateway is the slice of the API client the customer session needs.
type AuthGateway interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
}

// AgentAuthGateway is the delivery-service counterpart for couriers.
type AgentAuthGateway interface {
	AgentLogin(ctx context.Context, req models.LoginRequest) (models.AgentAuthResponse, error)
	RegisterAgent(ctx context.Context, req models.AgentRegisterRequest) (models.AgentAuthResponse, error)
}

// SessionStore holds the customer's token and profile. The token lives in
// the durable store, the profile both there and in memory; authentication
// requires the two halves to agree.
type SessionStore struct {
	store *Store

	mu   sync.Mutex
	user *models.User
}

func NewSessionStore(s *Store) *SessionStore {
	return &SessionStore{store: s}
}

// Init restores the session from the durable store. A profile without a
// token (or the reverse) does not count as a session.
func (s *SessionStore) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var user models.User
	if s.store.GetJSON(keyUser, &user) && s.store.GetString(keyToken) != "" {
		s.user = &user
	}
}

func (s *SessionStore) Login(ctx context.Context, gw AuthGateway, creds models.LoginRequest) (*models.User, error) {
	auth, err := gw.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.setCredentials(auth.Token, auth.User), nil
}

func (s *SessionStore) Signup(ctx context.Context, gw AuthGateway, req models.SignupRequest) (*models.User, error) {
	auth, err := gw.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.setCredentials(auth.Token, auth.User), nil
}

func (s *SessionStore) setCredentials(token string, user models.User) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.PutString(keyToken, token)
	s.store.PutJSON(keyUser, user)
	s.user = &user
	return s.user
}

// Logout clears credentials unconditionally, in memory and on disk.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.store.Delete(keyToken, keyUser)
}

// Token implements gateways.TokenSource.
func (s *SessionStore) Token() string {
	return s.store.GetString(keyToken)
}

func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated requires both the in-memory profile and the persisted
// token; either half can go missing independently (storage wiped externally,
// process restarted without re-init), and a half-session is no session.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	token := s.store.GetString(keyToken)
	return user != nil && token != "" && !tokenExpired(token)
}

// AgentSessionStore is the courier-side session, kept under separate keys so
// a customer and an agent login can coexist on one machine.
type AgentSessionStore struct {
	store *Store

	mu    sync.Mutex
	agent *models.DeliveryAgent
}

func NewAgentSessionStore(s *Store) *AgentSessionStore {
	return &AgentSessionStore{store: s}
}

func (s *AgentSessionStore) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var agent models.DeliveryAgent
	if s.store.GetJSON(keyAgent, &agent) && s.store.GetString(keyAgentToken) != "" {
		s.agent = &agent
	}
}

func (s *AgentSessionStore) Login(ctx context.Context, gw AgentAuthGateway, creds models.LoginRequest) (*models.DeliveryAgent, error) {
	auth, err := gw.AgentLogin(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.setCredentials(auth.Token, auth.Agent), nil
}

func (s *AgentSessionStore) Register(ctx context.Context, gw AgentAuthGateway, req models.AgentRegisterRequest) (*models.DeliveryAgent, error) {
	auth, err := gw.RegisterAgent(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.setCredentials(auth.Token, auth.Agent), nil
}

func (s *AgentSessionStore) setCredentials(token string, agent models.DeliveryAgent) *models.DeliveryAgent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.PutString(keyAgentToken, token)
	s.store.PutJSON(keyAgent, agent)
	s.agent = &agent
	return s.agent
}

func (s *AgentSessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agent = nil
	s.store.Delete(keyAgentToken, keyAgent)
}

// Token implements gateways.TokenSource.
func (s *AgentSessionStore) Token() string {
	return s.store.GetString(keyAgentToken)
}

func (s *AgentSessionStore) Agent() *models.DeliveryAgent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agent == nil {
		return nil
	}
	a := *s.agent
	return &a
}

func (s *AgentSessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	agent := s.agent
	s.mu.Unlock()
	token := s.store.GetString(keyAgentToken)
	return agent != nil && token != "" && !tokenExpired(token)
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Opaque or malformed tokens
// are left for the server to reject.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
