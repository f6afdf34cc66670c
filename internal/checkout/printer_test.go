package checkout

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/storage"
)

func goldenReceipts() []Receipt {
	milkAndBread := storage.NewCustomer(1, "S1234", decimal.RequireFromString("10.0"),
		storage.Item{ID: 1, Name: "Milk", Price: decimal.RequireFromString("4.5"), PurchaseDate: "2024-01-01"},
		storage.Item{ID: 2, Name: "Bread", Price: decimal.RequireFromString("2.5"), PurchaseDate: "2024-01-02"},
	)
	emptyBasket := storage.NewCustomer(2, "T9876", decimal.Zero)

	return []Receipt{
		{
			ID:       uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			Counter:  Counter1,
			Customer: milkAndBread,
			Total:    milkAndBread.TotalAmountPaid(),
		},
		{
			ID:       uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8"),
			Counter:  Counter3,
			Customer: emptyBasket,
			Total:    emptyBasket.TotalAmountPaid(),
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestPrinter_Processing(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPrinter(&buf).Processing(goldenReceipts()))

	newGoldie(t).Assert(t, "processing", buf.Bytes())
}

func TestPrinter_Queued(t *testing.T) {
	t.Run("customers waiting", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, NewPrinter(&buf).Queued(goldenReceipts()))

		newGoldie(t).Assert(t, "queued", buf.Bytes())
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, NewPrinter(&buf).Queued(nil))

		assert.Equal(t, "Displaying customer details:\nNo customers in queue\n", buf.String())
	})
}
