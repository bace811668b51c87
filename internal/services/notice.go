package services

import (
	"context"
	"marketplace-service/internal/models"
)

// Notifier fans a confirmation notice out beyond the in-process view model.
// Implementations must not block for long; failures are theirs to log.
type Notifier interface {
	Notify(ctx context.Context, notice models.Notice)
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, models.Notice) {}

func addedToCartMessage(p models.Product) string {
	return p.Name + " added to cart!"
}
