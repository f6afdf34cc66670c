package handler

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	mock_handler "gitlab.ozon.dev/pupkingeorgij/checkout/handler/mocks"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/checkout"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/storage"
)

func milkAndBread() *storage.Customer {
	return storage.NewCustomer(1, "S1234", decimal.RequireFromString("10.0"),
		storage.Item{ID: 1, Name: "Milk", Price: decimal.RequireFromString("4.50"), PurchaseDate: "2024-01-01"},
		storage.Item{ID: 2, Name: "Bread", Price: decimal.RequireFromString("2.50"), PurchaseDate: "2024-01-02"},
	)
}

func newTestHandler(t *testing.T) (*Handler, *mock_handler.MockCheckout, *mock_handler.MockLedger, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	mockCheckout := mock_handler.NewMockCheckout(ctrl)
	mockLedger := mock_handler.NewMockLedger(ctrl)
	out := &bytes.Buffer{}
	return New(mockCheckout, mockLedger, out, zaptest.NewLogger(t)), mockCheckout, mockLedger, out
}

func TestHandleAdd(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		setupMocks   func(m *mock_handler.MockCheckout)
		expectedText string
	}{
		{
			name: "customer with items",
			args: strings.Fields("1 S1234 10.0 1 Milk 4.50 2024-01-01 2 Bread 2.50 2024-01-02"),
			setupMocks: func(m *mock_handler.MockCheckout) {
				m.EXPECT().
					AddCustomer(gomock.Any()).
					DoAndReturn(func(c *storage.Customer) (checkout.Counter, error) {
						assert.Equal(t, 1, c.ID)
						assert.Equal(t, "S1234", c.NationalID)
						assert.Equal(t, 2, c.ItemCount())
						assert.Equal(t, "7.00", c.TotalAmountPaid().StringFixed(2))
						return checkout.Counter1, nil
					})
			},
			expectedText: "Customer with ID 1 added to counter 1\n",
		},
		{
			name:         "too few arguments",
			args:         []string{"1", "S1234"},
			setupMocks:   func(m *mock_handler.MockCheckout) {},
			expectedText: "Usage: add",
		},
		{
			name:         "bad price",
			args:         strings.Fields("1 S1234 10.0 1 Milk cheap 2024-01-01"),
			setupMocks:   func(m *mock_handler.MockCheckout) {},
			expectedText: `Error: invalid item price "cheap"`,
		},
		{
			name:         "incomplete item group",
			args:         strings.Fields("1 S1234 10.0 1 Milk"),
			setupMocks:   func(m *mock_handler.MockCheckout) {},
			expectedText: "Error: invalid items",
		},
		{
			name: "duplicate rejected",
			args: strings.Fields("1 S1234 10.0"),
			setupMocks: func(m *mock_handler.MockCheckout) {
				m.EXPECT().
					AddCustomer(gomock.Any()).
					Return(checkout.Counter(0), fmt.Errorf("%w: id 1", checkout.ErrDuplicateCustomer))
			},
			expectedText: "Error: customer already queued: id 1\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, mockCheckout, _, out := newTestHandler(t)
			tc.setupMocks(mockCheckout)

			h.HandleAdd(tc.args)

			assert.Contains(t, out.String(), tc.expectedText)
		})
	}
}

func TestHandleRemove(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		h, mockCheckout, _, out := newTestHandler(t)
		mockCheckout.EXPECT().RemoveCustomer(1).Return(checkout.Counter2, nil)

		h.HandleRemove([]string{"1"})

		assert.Equal(t, "Customer with ID 1 removed successfully.\n", out.String())
	})

	t.Run("not found", func(t *testing.T) {
		h, mockCheckout, _, out := newTestHandler(t)
		mockCheckout.EXPECT().
			RemoveCustomer(99).
			Return(checkout.Counter(0), fmt.Errorf("%w: id 99", checkout.ErrCustomerNotFound))

		h.HandleRemove([]string{"99"})

		assert.Equal(t, "Customer with ID 99 does not exist.\n", out.String())
	})

	t.Run("id is not a number", func(t *testing.T) {
		h, _, _, out := newTestHandler(t)

		h.HandleRemove([]string{"abc"})

		assert.Equal(t, "Error: invalid customer id \"abc\": invalid syntax\n", out.String())
	})

	t.Run("id out of range", func(t *testing.T) {
		h, _, _, out := newTestHandler(t)

		h.HandleRemove([]string{"99999999999999999999"})

		assert.Equal(t, "Error: invalid customer id \"99999999999999999999\": value out of range\n", out.String())
	})

	t.Run("missing id", func(t *testing.T) {
		h, _, _, out := newTestHandler(t)

		h.HandleRemove(nil)

		assert.Equal(t, "Usage: remove <custID>\n", out.String())
	})
}

func TestHandleProcess(t *testing.T) {
	t.Run("nothing queued", func(t *testing.T) {
		h, mockCheckout, _, out := newTestHandler(t)
		mockCheckout.EXPECT().ProcessAll().Return(nil)

		h.HandleProcess()

		assert.Equal(t, "No customers to process\n", out.String())
	})

	t.Run("prints receipts", func(t *testing.T) {
		h, mockCheckout, _, out := newTestHandler(t)
		customer := milkAndBread()
		mockCheckout.EXPECT().ProcessAll().Return([]checkout.Receipt{{
			Counter:  checkout.Counter1,
			Customer: customer,
			Total:    customer.TotalAmountPaid(),
		}})

		h.HandleProcess()

		assert.Contains(t, out.String(), "Processing customer ID: 1\n")
		assert.Contains(t, out.String(), "Total amount paid: $7.00\n")
	})
}

func TestHandleDisplay(t *testing.T) {
	h, mockCheckout, _, out := newTestHandler(t)
	mockCheckout.EXPECT().Display().Return(nil)

	h.HandleDisplay()

	assert.Equal(t, "Displaying customer details:\nNo customers in queue\n", out.String())
}

func TestHandleHistory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h, mockCheckout, _, out := newTestHandler(t)
		mockCheckout.EXPECT().History().Return(nil)

		h.HandleHistory()

		assert.Equal(t, "History is empty\n", out.String())
	})

	t.Run("entries", func(t *testing.T) {
		h, mockCheckout, _, out := newTestHandler(t)
		customer := milkAndBread()
		mockCheckout.EXPECT().History().Return([]*storage.Customer{customer, customer})

		h.HandleHistory()

		line := "- 1 | IC: S1234 | Items: 2 | Total: $7.00\n"
		assert.Equal(t, "History:\n"+line+line, out.String())
	})
}

func TestHandleSave(t *testing.T) {
	t.Run("saved", func(t *testing.T) {
		h, mockCheckout, mockLedger, out := newTestHandler(t)
		history := []*storage.Customer{milkAndBread()}
		mockCheckout.EXPECT().History().Return(history)
		mockLedger.EXPECT().Save(history).Return(nil)

		err := h.HandleSave()

		require.NoError(t, err)
		assert.Equal(t, "Ledger saved (1 records)\n", out.String())
	})

	t.Run("write failure", func(t *testing.T) {
		h, mockCheckout, mockLedger, out := newTestHandler(t)
		saveErr := fmt.Errorf("%w: disk full", storage.ErrIO)
		mockCheckout.EXPECT().History().Return(nil)
		mockLedger.EXPECT().Save(gomock.Any()).Return(saveErr)

		err := h.HandleSave()

		assert.ErrorIs(t, err, storage.ErrIO)
		assert.Equal(t, "Error: ledger i/o error: disk full\n", out.String())
	})
}

func TestDispatch(t *testing.T) {
	h, _, _, out := newTestHandler(t)

	assert.True(t, h.Dispatch([]string{"dance"}))
	assert.Contains(t, out.String(), "Unknown command: dance")

	assert.False(t, h.Dispatch([]string{"exit"}))
}

func TestServe(t *testing.T) {
	t.Run("exit saves history", func(t *testing.T) {
		h, mockCheckout, mockLedger, out := newTestHandler(t)
		gomock.InOrder(
			mockCheckout.EXPECT().Display().Return(nil),
			mockCheckout.EXPECT().History().Return(nil),
			mockLedger.EXPECT().Save(gomock.Any()).Return(nil),
		)

		err := h.Serve(strings.NewReader("display\n\nexit\nprocess\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Available commands:")
		assert.Contains(t, out.String(), "No customers in queue")
		assert.Contains(t, out.String(), "Ledger saved (0 records)")
	})

	t.Run("quoted values keep their spaces", func(t *testing.T) {
		h, mockCheckout, mockLedger, out := newTestHandler(t)
		gomock.InOrder(
			mockCheckout.EXPECT().
				AddCustomer(gomock.Any()).
				DoAndReturn(func(c *storage.Customer) (checkout.Counter, error) {
					assert.Equal(t, "S 1234", c.NationalID)
					require.Len(t, c.Items(), 1)
					assert.Equal(t, "Whole Milk", c.Items()[0].Name)
					assert.Equal(t, "4.50", storage.FormatAmount(c.Items()[0].Price))
					return checkout.Counter1, nil
				}),
			mockCheckout.EXPECT().History().Return(nil),
			mockLedger.EXPECT().Save(gomock.Any()).Return(nil),
		)

		err := h.Serve(strings.NewReader(`add 1 "S 1234" 10.0 1 "Whole Milk" 4.50 2024-01-01` + "\nexit\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Customer with ID 1 added to counter 1\n")
	})

	t.Run("unbalanced quote is reported", func(t *testing.T) {
		h, mockCheckout, mockLedger, out := newTestHandler(t)
		mockCheckout.EXPECT().History().Return(nil)
		mockLedger.EXPECT().Save(gomock.Any()).Return(nil)

		err := h.Serve(strings.NewReader("add 1 S1 1.0 1 \"Whole Milk 4.50 2024-01-01\nexit\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Error:")
		assert.NotContains(t, out.String(), "added to")
	})

	t.Run("end of input saves history", func(t *testing.T) {
		h, mockCheckout, mockLedger, _ := newTestHandler(t)
		mockCheckout.EXPECT().History().Return(nil)
		mockLedger.EXPECT().Save(gomock.Any()).Return(nil)

		err := h.Serve(strings.NewReader(""))

		require.NoError(t, err)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		h, mockCheckout, mockLedger, _ := newTestHandler(t)
		mockCheckout.EXPECT().History().Return(nil)
		mockLedger.EXPECT().Save(gomock.Any()).Return(storage.ErrIO)

		err := h.Serve(strings.NewReader("exit\n"))

		assert.True(t, errors.Is(err, storage.ErrIO))
	})
}

func TestReportLoadErrors(t *testing.T) {
	t.Run("single bad ledger line", func(t *testing.T) {
		h, _, _, out := newTestHandler(t)
		_, err := storage.Decode(strings.NewReader("1,S1,1.0\nx,S2,1.0\n"))

		h.ReportLoadErrors(err)

		assert.Equal(t, "Warning: line 2: invalid customer id \"x\": invalid syntax\n", out.String())
	})

	t.Run("missing ledger", func(t *testing.T) {
		h, _, _, out := newTestHandler(t)
		err := &storage.IOError{Op: "load", Err: os.ErrNotExist}

		h.ReportLoadErrors(err)

		assert.Equal(t, "Warning: ledger i/o error: load: file does not exist\n", out.String())
	})

	t.Run("several problems", func(t *testing.T) {
		h, _, _, out := newTestHandler(t)
		err := multierr.Combine(
			&storage.ParseError{Line: 2, Field: "customer id", Value: "x", Err: errors.New("invalid syntax")},
			&storage.ParseError{Line: 5, Field: "item price", Value: "-1", Err: errors.New("price must not be negative")},
		)

		h.ReportLoadErrors(err)

		assert.Equal(t,
			"Warning: line 2: invalid customer id \"x\": invalid syntax\n"+
				"Warning: line 5: invalid item price \"-1\": price must not be negative\n",
			out.String())
	})
}
