package services

import (
	"context"
	"fmt"
	"log/slog"
	"marketplace-service/internal/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultNoticeTTL = 3 * time.Second

// App owns all user-facing state. Every intent runs under one lock, so a
// snapshot never observes a half-applied action. Snapshots are copies.
type App struct {
	mu sync.Mutex

	catalog   *CatalogService
	sessions  *SessionService
	navigator *NavigationService
	cart      *CartService
	advice    *AdviceService
	notifier  Notifier
	noticeTTL time.Duration
	now       func() time.Time

	notice        *models.Notice
	adviceResult  *models.FarmingAdvice
	adviceError   string
	advicePending bool
}

type AppOption func(*App) error

func NewApp(catalog *CatalogService, advice *AdviceService, opts ...AppOption) (*App, error) {
	sessions := NewSessionService(MockIdentityProvider{})
	app := &App{
		catalog:   catalog,
		sessions:  sessions,
		navigator: NewNavigationService(sessions),
		cart:      NewCartService(),
		advice:    advice,
		notifier:  noopNotifier{},
		noticeTTL: defaultNoticeTTL,
		now:       time.Now,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return app, nil
}

func WithNotifier(n Notifier) AppOption {
	return func(a *App) error {
		if n == nil {
			return fmt.Errorf("notifier is nil")
		}
		a.notifier = n
		return nil
	}
}

func WithNoticeTTL(ttl time.Duration) AppOption {
	return func(a *App) error {
		if ttl <= 0 {
			return fmt.Errorf("notice ttl must be positive, got %s", ttl)
		}
		a.noticeTTL = ttl
		return nil
	}
}

func WithClock(now func() time.Time) AppOption {
	return func(a *App) error {
		if now == nil {
			return fmt.Errorf("clock is nil")
		}
		a.now = now
		return nil
	}
}

// WithIdentityProvider swaps the mock login for another identity source.
func WithIdentityProvider(p IdentityProvider) AppOption {
	return func(a *App) error {
		if p == nil {
			return fmt.Errorf("identity provider is nil")
		}
		a.sessions.identityProvider = p
		return nil
	}
}

func (a *App) Snapshot() models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *App) Products(category models.Category, searchTerm string) []models.Product {
	return a.catalog.Filter(category, searchTerm)
}

func (a *App) Product(id int) (models.Product, bool) {
	return a.catalog.GetProduct(id)
}

func (a *App) Navigate(target models.View) models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	entered := a.navigator.Navigate(target)
	if entered != target {
		slog.Info("navigation redirected", "requested", target, "entered", entered)
	}
	return a.snapshotLocked()
}

// Login starts a mock session and lands on the marketplace.
func (a *App) Login(role models.Role) models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	session := a.sessions.Login(role)
	a.navigator.Navigate(models.ViewMarketplace)
	slog.Info("user logged in", "name", session.Name, "role", session.Role)
	return a.snapshotLocked()
}

func (a *App) Logout() models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sessions.Logout()
	a.navigator.Reset()
	return a.snapshotLocked()
}

// AddToCart adds one unit and raises a confirmation notice.
func (a *App) AddToCart(ctx context.Context, product models.Product) models.AppSnapshot {
	a.mu.Lock()
	a.cart.AddItem(product)
	notice := models.Notice{
		ID:        uuid.New(),
		Message:   addedToCartMessage(product),
		CreatedAt: a.now(),
	}
	a.notice = &notice
	snapshot := a.snapshotLocked()
	a.mu.Unlock()

	a.notifier.Notify(ctx, notice)
	return snapshot
}

func (a *App) UpdateQuantity(productID, quantity int) models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cart.UpdateQuantity(productID, quantity)
	return a.snapshotLocked()
}

func (a *App) DismissNotice() models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.notice = nil
	return a.snapshotLocked()
}

func (a *App) DismissAdviceError() models.AppSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.adviceError = ""
	return a.snapshotLocked()
}

// SubmitAdviceQuery clears the previous result and error, then runs one advice
// request. Only one request may be pending; a second submission gets
// ErrAdviceInFlight. The request is not cancelled when ctx is, it always runs
// to completion or to the advice timeout.
func (a *App) SubmitAdviceQuery(ctx context.Context, query string) (*models.FarmingAdvice, error) {
	a.mu.Lock()
	if a.advicePending {
		a.mu.Unlock()
		return nil, ErrAdviceInFlight
	}
	a.adviceResult = nil
	a.adviceError = ""
	if _, err := ValidateQuery(query); err != nil {
		a.adviceError = err.Error()
		a.mu.Unlock()
		return nil, err
	}
	a.advicePending = true
	a.mu.Unlock()

	result, err := a.advice.RequestAdvice(context.WithoutCancel(ctx), query)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.advicePending = false
	if err != nil {
		a.adviceError = err.Error()
		return nil, err
	}
	a.adviceResult = result
	return copyAdvice(result), nil
}

func (a *App) snapshotLocked() models.AppSnapshot {
	if a.notice != nil && a.now().Sub(a.notice.CreatedAt) >= a.noticeTTL {
		a.notice = nil
	}

	snapshot := models.AppSnapshot{
		View:            a.navigator.Current(),
		Session:         a.sessions.Current(),
		Cart:            a.cart.Summary(),
		AdviceAvailable: a.advice.Configured(),
		Advice: models.AdviceState{
			Result:  copyAdvice(a.adviceResult),
			Error:   a.adviceError,
			Pending: a.advicePending,
		},
	}
	if a.notice != nil {
		notice := *a.notice
		snapshot.Notice = &notice
	}
	if snapshot.View == models.ViewDashboard && snapshot.Session.IsFarmer() {
		snapshot.FarmerListings = a.catalog.ListByFarmer(snapshot.Session.Name)
	}
	return snapshot
}

func copyAdvice(in *models.FarmingAdvice) *models.FarmingAdvice {
	if in == nil {
		return nil
	}
	out := *in
	out.CropSuggestions = append([]models.CropSuggestion(nil), in.CropSuggestions...)
	return &out
}
