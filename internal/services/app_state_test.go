package services

import (
	"context"
	"marketplace-service/internal/models"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []models.Notice
}

func (r *recordingNotifier) Notify(_ context.Context, n models.Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, n)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestApp(t *testing.T, gen AdviceGenerator, opts ...AppOption) *App {
	t.Helper()
	app, err := NewApp(newTestCatalog(t), NewAdviceService(gen, time.Second), opts...)
	require.NoError(t, err)
	return app
}

func TestApp_InitialSnapshot(t *testing.T) {
	app := newTestApp(t, nil)

	want := models.AppSnapshot{
		View: models.ViewHome,
		Cart: models.CartSummary{
			Lines:        []models.CartLine{},
			SubtotalText: "0.00",
		},
	}
	if diff := cmp.Diff(want, app.Snapshot()); diff != "" {
		t.Errorf("initial snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestApp_LoginLandsOnMarketplace(t *testing.T) {
	app := newTestApp(t, nil)

	snap := app.Login(models.RoleConsumer)

	assert.Equal(t, models.ViewMarketplace, snap.View)
	require.NotNil(t, snap.Session)
	assert.Equal(t, "Priya Sharma", snap.Session.Name)
}

func TestApp_DashboardOnlyForFarmers(t *testing.T) {
	app := newTestApp(t, nil)

	assert.Equal(t, models.ViewMarketplace, app.Navigate(models.ViewDashboard).View)

	app.Login(models.RoleConsumer)
	assert.Equal(t, models.ViewMarketplace, app.Navigate(models.ViewDashboard).View)

	app.Login(models.RoleFarmer)
	snap := app.Navigate(models.ViewDashboard)
	assert.Equal(t, models.ViewDashboard, snap.View)
	assert.Equal(t, []int{4, 8}, productIDs(snap.FarmerListings))
}

func TestApp_LogoutForcesHome(t *testing.T) {
	app := newTestApp(t, nil)
	app.Login(models.RoleFarmer)
	app.Navigate(models.ViewDashboard)

	snap := app.Logout()

	assert.Equal(t, models.ViewHome, snap.View)
	assert.Nil(t, snap.Session)
	assert.Empty(t, snap.FarmerListings)
}

func TestApp_AddToCartRaisesNotice(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	notifier := &recordingNotifier{}
	app := newTestApp(t, nil, WithClock(clock.Now), WithNotifier(notifier), WithNoticeTTL(3*time.Second))

	tomatoes, ok := app.Product(1)
	require.True(t, ok)
	snap := app.AddToCart(context.Background(), tomatoes)

	assert.Equal(t, 1, snap.Cart.ItemCount)
	require.NotNil(t, snap.Notice)
	assert.Equal(t, "Organic Tomatoes added to cart!", snap.Notice.Message)
	require.Len(t, notifier.notices, 1)
	assert.Equal(t, snap.Notice.ID, notifier.notices[0].ID)

	clock.t = clock.t.Add(2 * time.Second)
	assert.NotNil(t, app.Snapshot().Notice)

	clock.t = clock.t.Add(time.Second)
	assert.Nil(t, app.Snapshot().Notice, "notice auto-dismisses after its ttl")
}

func TestApp_DismissNotice(t *testing.T) {
	app := newTestApp(t, nil)
	rice, _ := app.Product(2)
	app.AddToCart(context.Background(), rice)

	assert.Nil(t, app.DismissNotice().Notice)
}

func TestApp_CartTotals(t *testing.T) {
	app := newTestApp(t, nil)
	tomatoes, _ := app.Product(1)
	rice, _ := app.Product(2)

	app.AddToCart(context.Background(), tomatoes)
	app.AddToCart(context.Background(), tomatoes)
	app.AddToCart(context.Background(), rice)

	snap := app.Snapshot()
	assert.Equal(t, 3, snap.Cart.ItemCount)
	assert.Equal(t, "200.00", snap.Cart.SubtotalText)

	snap = app.UpdateQuantity(1, 0)
	assert.Equal(t, 1, snap.Cart.ItemCount)
	assert.Equal(t, "120.00", snap.Cart.SubtotalText)
}

func TestApp_SnapshotIsACopy(t *testing.T) {
	app := newTestApp(t, nil)
	tomatoes, _ := app.Product(1)
	app.AddToCart(context.Background(), tomatoes)

	snap := app.Snapshot()
	snap.Cart.Lines[0].Quantity = 99

	assert.Equal(t, 1, app.Snapshot().Cart.Lines[0].Quantity)
}

func TestApp_OptionValidation(t *testing.T) {
	_, err := NewApp(newTestCatalog(t), NewAdviceService(nil, 0), WithNoticeTTL(0))
	assert.Error(t, err)

	_, err = NewApp(newTestCatalog(t), NewAdviceService(nil, 0), WithNotifier(nil))
	assert.Error(t, err)

	_, err = NewApp(newTestCatalog(t), NewAdviceService(nil, 0), WithClock(nil))
	assert.Error(t, err)

	_, err = NewApp(newTestCatalog(t), NewAdviceService(nil, 0), WithIdentityProvider(nil))
	assert.Error(t, err)
}

func TestApp_AdviceSuccessReplacesPreviousError(t *testing.T) {
	gen := &fakeGenerator{reply: threeCropsFenced}
	app := newTestApp(t, gen)

	_, err := app.SubmitAdviceQuery(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Please enter your query.", app.Snapshot().Advice.Error)
	assert.Equal(t, 0, gen.calls())

	advice, err := app.SubmitAdviceQuery(context.Background(), "monsoon crops")
	require.NoError(t, err)
	assert.Len(t, advice.CropSuggestions, 3)

	snap := app.Snapshot()
	assert.Empty(t, snap.Advice.Error)
	assert.False(t, snap.Advice.Pending)
	require.NotNil(t, snap.Advice.Result)
	assert.Equal(t, "Hot and dry", snap.Advice.Result.WeatherSummary)
	assert.True(t, snap.AdviceAvailable)
}

func TestApp_AdviceFailureClearsPreviousResult(t *testing.T) {
	gen := &fakeGenerator{reply: threeCropsFenced}
	app := newTestApp(t, gen)
	_, err := app.SubmitAdviceQuery(context.Background(), "first")
	require.NoError(t, err)

	gen.reply = `{"weather_summary":"X"}`
	_, err = app.SubmitAdviceQuery(context.Background(), "second")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	snap := app.Snapshot()
	assert.Nil(t, snap.Advice.Result)
	assert.Equal(t, ErrMalformedResponse.Message, snap.Advice.Error)

	assert.Empty(t, app.DismissAdviceError().Advice.Error)
}

func TestApp_AdviceWithoutCredential(t *testing.T) {
	app := newTestApp(t, nil)

	_, err := app.SubmitAdviceQuery(context.Background(), "query")

	assert.ErrorIs(t, err, ErrConfiguration)
	assert.False(t, app.Snapshot().AdviceAvailable)
}

func TestApp_OneAdviceRequestAtATime(t *testing.T) {
	gen := &fakeGenerator{
		reply:   threeCropsFenced,
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	app := newTestApp(t, gen)

	done := make(chan error, 1)
	go func() {
		_, err := app.SubmitAdviceQuery(context.Background(), "first")
		done <- err
	}()
	<-gen.entered

	assert.True(t, app.Snapshot().Advice.Pending)
	_, err := app.SubmitAdviceQuery(context.Background(), "second")
	assert.ErrorIs(t, err, ErrAdviceInFlight)

	// cart and navigation stay responsive while advice is pending
	assert.Equal(t, models.ViewSmartFarming, app.Navigate(models.ViewSmartFarming).View)

	close(gen.block)
	require.NoError(t, <-done)
	assert.False(t, app.Snapshot().Advice.Pending)
	assert.Equal(t, 1, gen.calls())
}

func TestApp_AdviceSurvivesCallerCancellation(t *testing.T) {
	gen := &fakeGenerator{reply: threeCropsFenced}
	app := newTestApp(t, gen)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := app.SubmitAdviceQuery(ctx, "query")

	require.NoError(t, err)
}
