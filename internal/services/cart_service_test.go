package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_SameProductTwiceAggregates(t *testing.T) {
	cart := NewCartService()
	tomatoes := product(1, "Organic Tomatoes", 40)

	cart.AddItem(tomatoes)
	cart.AddItem(tomatoes)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	cart := NewCartService()
	cart.AddItem(product(2, "Basmati Rice", 120))
	cart.AddItem(product(1, "Organic Tomatoes", 40))
	cart.AddItem(product(2, "Basmati Rice", 120))

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].ID)
	assert.Equal(t, 1, lines[1].ID)
}

func TestUpdateQuantity_Overwrites(t *testing.T) {
	cart := NewCartService()
	cart.AddItem(product(1, "Organic Tomatoes", 40))

	cart.UpdateQuantity(1, 5)
	cart.UpdateQuantity(1, 3)

	assert.Equal(t, 3, cart.ItemCount())
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -10} {
		cart := NewCartService()
		cart.AddItem(product(1, "Organic Tomatoes", 40))
		cart.AddItem(product(2, "Basmati Rice", 120))

		cart.UpdateQuantity(1, qty)

		lines := cart.Lines()
		require.Len(t, lines, 1, "quantity %d", qty)
		assert.Equal(t, 2, lines[0].ID)
		assert.Equal(t, 1, cart.ItemCount())
	}
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	cart := NewCartService()
	cart.AddItem(product(1, "Organic Tomatoes", 40))

	cart.UpdateQuantity(42, 0)
	cart.UpdateQuantity(42, 7)

	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestSubtotal_TwoDecimals(t *testing.T) {
	cart := NewCartService()
	cart.AddItem(product(1, "Organic Tomatoes", 40))
	cart.UpdateQuantity(1, 2)
	cart.AddItem(product(2, "Basmati Rice", 120))

	assert.Equal(t, 200.0, cart.Subtotal())
	assert.Equal(t, "200.00", cart.SubtotalText())
}

func TestSubtotal_RoundsFractionalPrices(t *testing.T) {
	cart := NewCartService()
	cart.AddItem(product(1, "Curry Leaves", 0.1))
	cart.UpdateQuantity(1, 3)

	assert.Equal(t, 0.3, cart.Subtotal())
	assert.Equal(t, "0.30", cart.SubtotalText())
}

func TestEmptyCart(t *testing.T) {
	cart := NewCartService()

	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, "0.00", cart.SubtotalText())
	assert.Empty(t, cart.Lines())
}

func TestCart_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cart := NewCartService()
	catalog := []int{1, 2, 3, 4}

	for step := 0; step < 500; step++ {
		id := catalog[rng.Intn(len(catalog))]
		if rng.Intn(2) == 0 {
			cart.AddItem(product(id, "p", float64(id)))
		} else {
			cart.UpdateQuantity(id, rng.Intn(6)-2)
		}

		seen := map[int]bool{}
		sum := 0
		for _, l := range cart.Lines() {
			require.Greater(t, l.Quantity, 0, "step %d", step)
			require.False(t, seen[l.ID], "duplicate line for %d at step %d", l.ID, step)
			seen[l.ID] = true
			sum += l.Quantity
		}
		require.Equal(t, sum, cart.ItemCount(), "step %d", step)
	}
}
