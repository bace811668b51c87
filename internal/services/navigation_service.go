package services

import "marketplace-service/internal/models"

type NavigationService struct {
	sessions *SessionService
	current  models.View
}

func NewNavigationService(sessions *SessionService) *NavigationService {
	return &NavigationService{sessions: sessions, current: models.ViewHome}
}

// Navigate moves to target and returns the view actually entered. The
// dashboard is only reachable with a farmer session; anyone else lands on the
// marketplace.
func (n *NavigationService) Navigate(target models.View) models.View {
	if target == models.ViewDashboard && !n.sessions.IsFarmer() {
		target = models.ViewMarketplace
	}
	n.current = target
	return n.current
}

func (n *NavigationService) Reset() {
	n.current = models.ViewHome
}

func (n *NavigationService) Current() models.View {
	return n.current
}
