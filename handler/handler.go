//go:generate mockgen -source ./handler.go -destination=./mocks/handler.go -package=mock_handler
package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/shlex"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/checkout"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/storage"
)

type Checkout interface {
	AddCustomer(customer *storage.Customer) (checkout.Counter, error)
	RemoveCustomer(id int) (checkout.Counter, error)
	Display() []checkout.Receipt
	ProcessAll() []checkout.Receipt
	History() []*storage.Customer
}

type Ledger interface {
	Save(customers []*storage.Customer) error
}

type Handler struct {
	checkout Checkout
	ledger   Ledger
	printer  *checkout.Printer
	out      io.Writer
	logger   *zap.Logger
}

func New(engine Checkout, ledger Ledger, out io.Writer, logger *zap.Logger) *Handler {
	return &Handler{
		checkout: engine,
		ledger:   ledger,
		printer:  checkout.NewPrinter(out),
		out:      out,
		logger:   logger,
	}
}

// Serve reads commands line by line until exit or end of input, then saves
// the history to the ledger.
func (h *Handler) Serve(in io.Reader) error {
	h.HandleHelp()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			break
		}
		args, err := shlex.Split(scanner.Text())
		if err != nil {
			h.reportError("read_command", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if !h.Dispatch(args) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		h.logger.Error("failed to read command", zap.Error(err))
	}

	return h.HandleSave()
}

// Dispatch runs one command. It returns false when the operator asked to exit.
func (h *Handler) Dispatch(args []string) bool {
	command, rest := args[0], args[1:]

	switch command {
	case "add":
		h.HandleAdd(rest)
	case "remove":
		h.HandleRemove(rest)
	case "display":
		h.HandleDisplay()
	case "process":
		h.HandleProcess()
	case "history":
		h.HandleHistory()
	case "save":
		_ = h.HandleSave()
	case "help":
		h.HandleHelp()
	case "exit":
		return false
	default:
		fmt.Fprintf(h.out, "Unknown command: %s. Type 'help' for the list of commands\n", command)
	}
	return true
}

func (h *Handler) HandleHelp() {
	fmt.Fprintln(h.out, `Available commands:
	add <custID> <icNumber> <counterPaid> [<itemID> <itemName> <itemPrice> <datePurchased>]... - Add customer
	remove <custID> - Remove customer from its queue
	display - Show customers waiting at every counter
	process - Serve every waiting customer
	history - Show every customer recorded so far
	save - Write history to the ledger
	exit - Save and exit
Quote values that contain spaces: add 1 S1234 10.0 1 "Whole Milk" 4.50 2024-01-01`)
}

func (h *Handler) HandleAdd(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(h.out, "Usage: add <custID> <icNumber> <counterPaid> [<itemID> <itemName> <itemPrice> <datePurchased>]...")
		return
	}

	customer, err := storage.ParseCustomer(args)
	if err != nil {
		h.reportError("add_customer", err)
		return
	}

	counter, err := h.checkout.AddCustomer(customer)
	if err != nil {
		h.reportError("add_customer", err)
		return
	}

	fmt.Fprintf(h.out, "Customer with ID %d added to %s\n", customer.ID, counter)
}

func (h *Handler) HandleRemove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(h.out, "Usage: remove <custID>")
		return
	}

	id, err := storage.ParseCustomerID(args[0])
	if err != nil {
		h.reportError("remove_customer", err)
		return
	}

	if _, err := h.checkout.RemoveCustomer(id); err != nil {
		if errors.Is(err, checkout.ErrCustomerNotFound) {
			fmt.Fprintf(h.out, "Customer with ID %d does not exist.\n", id)
			return
		}
		h.reportError("remove_customer", err)
		return
	}

	fmt.Fprintf(h.out, "Customer with ID %d removed successfully.\n", id)
}

func (h *Handler) HandleDisplay() {
	if err := h.printer.Queued(h.checkout.Display()); err != nil {
		h.logger.Error("failed to print queues", zap.Error(err))
	}
}

func (h *Handler) HandleProcess() {
	receipts := h.checkout.ProcessAll()
	if len(receipts) == 0 {
		fmt.Fprintln(h.out, "No customers to process")
		return
	}
	if err := h.printer.Processing(receipts); err != nil {
		h.logger.Error("failed to print receipts", zap.Error(err))
	}
}

func (h *Handler) HandleHistory() {
	history := h.checkout.History()
	if len(history) == 0 {
		fmt.Fprintln(h.out, "History is empty")
		return
	}

	fmt.Fprintln(h.out, "History:")
	for _, c := range history {
		fmt.Fprintf(h.out, "- %d | IC: %s | Items: %d | Total: $%s\n",
			c.ID, c.NationalID, c.ItemCount(), c.TotalAmountPaid().StringFixed(2))
	}
}

func (h *Handler) HandleSave() error {
	history := h.checkout.History()
	if err := h.ledger.Save(history); err != nil {
		h.reportError("save_ledger", err)
		return err
	}
	fmt.Fprintf(h.out, "Ledger saved (%d records)\n", len(history))
	return nil
}

// ReportLoadErrors prints every problem found while loading the ledger.
// Loading carries on past them, so they are warnings.
func (h *Handler) ReportLoadErrors(err error) {
	for _, e := range multierr.Errors(err) {
		h.logger.Warn("ledger problem", zap.Error(e))
		fmt.Fprintln(h.out, "Warning:", e)
	}
}

func (h *Handler) reportError(operation string, err error) {
	h.logger.Warn("command failed", zap.String("operation", operation), zap.Error(err))
	fmt.Fprintln(h.out, "Error:", err)
}
