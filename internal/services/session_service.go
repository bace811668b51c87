package services

import "marketplace-service/internal/models"

// IdentityProvider resolves a login request to a session identity.
type IdentityProvider interface {
	Identify(role models.Role) models.Session
}

// MockIdentityProvider is a stub: it performs no credential check and always
// returns the same demo identity for a role.
type MockIdentityProvider struct{}

var mockDisplayNames = map[models.Role]string{
	models.RoleFarmer:   "Ramesh Kumar",
	models.RoleConsumer: "Priya Sharma",
}

func (MockIdentityProvider) Identify(role models.Role) models.Session {
	return models.Session{Name: mockDisplayNames[role], Role: role}
}

type SessionService struct {
	identityProvider IdentityProvider
	current          *models.Session
}

func NewSessionService(identityProvider IdentityProvider) *SessionService {
	return &SessionService{identityProvider: identityProvider}
}

// Login replaces any existing session. It always succeeds.
func (s *SessionService) Login(role models.Role) models.Session {
	session := s.identityProvider.Identify(role)
	s.current = &session
	return session
}

func (s *SessionService) Logout() {
	s.current = nil
}

// Current returns a copy of the active session, or nil.
func (s *SessionService) Current() *models.Session {
	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

func (s *SessionService) IsFarmer() bool {
	return s.current.IsFarmer()
}
