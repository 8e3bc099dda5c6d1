package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ledgerTotal(purchases []Purchase) float64 {
	var sum float64
	for _, p := range purchases {
		sum += float64(p.Quantity) * p.Price
	}
	return sum
}

func TestNormalizePurchases(t *testing.T) {
	t.Run("recomputes subtotals and total", func(t *testing.T) {
		lines, total := NormalizePurchases([]Purchase{
			{Name: "Aviator", Quantity: 2, Price: 120},
			{Name: "Cleaning kit", Quantity: 1, Price: 15.5},
		})
		assert.Equal(t, 240.0, lines[0].Subtotal)
		assert.Equal(t, 15.5, lines[1].Subtotal)
		assert.Equal(t, 255.5, total)
	})

	t.Run("ignores client-supplied subtotals", func(t *testing.T) {
		lines, total := NormalizePurchases([]Purchase{
			{Name: "Wayfarer", Quantity: 3, Price: 10, Subtotal: 9999},
		})
		assert.Equal(t, 30.0, lines[0].Subtotal)
		assert.Equal(t, 30.0, total)
	})

	t.Run("empty ledger totals zero", func(t *testing.T) {
		lines, total := NormalizePurchases(nil)
		assert.Empty(t, lines)
		assert.Zero(t, total)
	})

	t.Run("invariant holds across add and remove sequences", func(t *testing.T) {
		ledger := []Purchase{}
		add := func(name string, qty int, price float64) {
			ledger = append(ledger, Purchase{Name: name, Quantity: qty, Price: price})
			var total float64
			ledger, total = NormalizePurchases(ledger)
			assert.Equal(t, ledgerTotal(ledger), total)
		}
		remove := func(i int) {
			ledger = append(ledger[:i], ledger[i+1:]...)
			var total float64
			ledger, total = NormalizePurchases(ledger)
			assert.Equal(t, ledgerTotal(ledger), total)
		}

		add("frames", 1, 199.99)
		add("lenses", 2, 89)
		add("case", 4, 12.25)
		remove(1)
		add("wipes", 10, 1.5)
		remove(0)
		remove(0)
	})
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ray-ban", Slugify("Ray Ban"))
	assert.Equal(t, "ray-ban", Slugify("  Ray   Ban  "))
	assert.Equal(t, "oakley", Slugify("OAKLEY"))
	assert.Equal(t, "", Slugify("   "))
}

func TestProductValidate(t *testing.T) {
	valid := Product{Name: "Classic", Description: "Round frames", Price: 10, Rating: 4.5}
	assert.Empty(t, valid.Validate())

	bad := Product{Name: "X", Description: "d", Price: -1, Rating: 5.5, Gender: "other"}
	details := bad.Validate()
	assert.Len(t, details, 3)

	assert.True(t, ValidGender(""))
	assert.True(t, ValidGender(GenderUnisex))
	assert.False(t, ValidGender("kids"))
}
