package storage

import (
	"github.com/shopspring/decimal"
)

type Item struct {
	ID           int
	Name         string
	Price        decimal.Decimal
	PurchaseDate string
}

// Customer is a shopper with the items they carry to a counter. Items can only
// be appended; Items returns a copy so callers cannot reorder or edit them.
type Customer struct {
	ID         int
	NationalID string
	AmountPaid decimal.Decimal
	items      []Item
}

func NewCustomer(id int, nationalID string, amountPaid decimal.Decimal, items ...Item) *Customer {
	c := &Customer{
		ID:         id,
		NationalID: nationalID,
		AmountPaid: amountPaid,
	}
	for _, item := range items {
		c.AddItem(item)
	}
	return c
}

func (c *Customer) AddItem(item Item) {
	c.items = append(c.items, item)
}

func (c *Customer) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Customer) ItemCount() int {
	return len(c.items)
}

// TotalAmountPaid sums item prices. AmountPaid is settled separately and is
// not part of the total.
func (c *Customer) TotalAmountPaid() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price)
	}
	return total
}

// FormatAmount renders an amount with the scale it was parsed with, so "4.50"
// stays "4.50" and "10" stays "10".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
