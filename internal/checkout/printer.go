package checkout

import (
	"fmt"
	"io"
	"strings"
)

const receiptSeparator = "---------------------------------------"

// Printer renders receipts for the operator console.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Processing(receipts []Receipt) error {
	var sb strings.Builder
	for _, r := range receipts {
		fmt.Fprintf(&sb, "Processing customer ID: %d\n", r.Customer.ID)
		fmt.Fprintf(&sb, "Receipt: %s\n", r.ID)
		writeDetails(&sb, r)
	}
	_, err := io.WriteString(p.out, sb.String())
	return err
}

func (p *Printer) Queued(receipts []Receipt) error {
	var sb strings.Builder
	sb.WriteString("Displaying customer details:\n")
	if len(receipts) == 0 {
		sb.WriteString("No customers in queue\n")
	}
	for _, r := range receipts {
		writeDetails(&sb, r)
	}
	_, err := io.WriteString(p.out, sb.String())
	return err
}

func writeDetails(sb *strings.Builder, r Receipt) {
	fmt.Fprintf(sb, "Counter: %s\n", r.Counter.Label())
	fmt.Fprintf(sb, "Customer ID: %d\n", r.Customer.ID)
	fmt.Fprintf(sb, "IC Number: %s\n", r.Customer.NationalID)
	sb.WriteString("Items Purchased:\n")
	for _, item := range r.Customer.Items() {
		fmt.Fprintf(sb, "  - Item ID: %d\n", item.ID)
		fmt.Fprintf(sb, "    Item Name: %s\n", item.Name)
		fmt.Fprintf(sb, "    Item Price: %s\n", item.Price.StringFixed(2))
		fmt.Fprintf(sb, "    Date Purchased: %s\n", item.PurchaseDate)
	}
	fmt.Fprintf(sb, "Total amount paid: $%s\n", r.Total.StringFixed(2))
	sb.WriteString(receiptSeparator + "\n")
}
