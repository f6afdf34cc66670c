package storage

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/metrics"
)

const (
	customerFields = 3
	itemFields     = 4
)

var (
	errTooFewFields   = errors.New("expected custId,nationalId,amountPaid")
	errIncompleteItem = errors.New("item groups need itemId,itemName,itemPrice,purchaseDate")
	errNegativePrice  = errors.New("price must not be negative")
)

// Ledger persists customers to a flat comma separated file, one customer per
// line. Text fields are written as is: commas inside names or dates are not
// escaped and will not survive a reload.
type Ledger struct {
	path   string
	logger *zap.Logger
}

func NewLedger(path string, logger *zap.Logger) *Ledger {
	return &Ledger{
		path:   path,
		logger: logger,
	}
}

func (l *Ledger) Path() string {
	return l.path
}

// Load reads every well-formed customer from the ledger. Malformed lines are
// skipped and reported in the returned error together with the customers that
// did parse. A missing file yields no customers and an ErrIO error.
func (l *Ledger) Load() ([]*Customer, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, &IOError{Op: "load", Err: err}
	}
	defer file.Close()

	customers, err := Decode(file)
	l.logger.Info("ledger loaded",
		zap.String("path", l.path),
		zap.Int("customers", len(customers)),
		zap.Int("problems", len(multierr.Errors(err))),
	)
	return customers, err
}

// Save overwrites the ledger with customers. The write is not atomic.
func (l *Ledger) Save(customers []*Customer) error {
	file, err := os.Create(l.path)
	if err != nil {
		return &IOError{Op: "save", Err: err}
	}

	if err := Encode(file, customers); err != nil {
		file.Close()
		return &IOError{Op: "save", Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "save", Err: err}
	}

	l.logger.Info("ledger saved", zap.String("path", l.path), zap.Int("customers", len(customers)))
	return nil
}

// Decode parses one customer per line. Lines of any length are accepted; a
// malformed line is skipped and its *ParseError is appended to the returned
// multierr error.
func Decode(r io.Reader) ([]*Customer, error) {
	var (
		customers []*Customer
		errs      error
	)

	br := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			errs = multierr.Append(errs, &IOError{Op: "load", Err: readErr})
			break
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			customer, err := ParseCustomer(strings.Split(line, ","))
			if err != nil {
				var pe *ParseError
				if errors.As(err, &pe) {
					pe.Line = lineNo
				}
				metrics.LedgerLinesSkippedTotal.Inc()
				errs = multierr.Append(errs, err)
			} else {
				customers = append(customers, customer)
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return customers, errs
}

func Encode(w io.Writer, customers []*Customer) error {
	bw := bufio.NewWriter(w)
	for _, c := range customers {
		if _, err := bw.WriteString(FormatCustomer(c)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func FormatCustomer(c *Customer) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(c.ID))
	sb.WriteByte(',')
	sb.WriteString(c.NationalID)
	sb.WriteByte(',')
	sb.WriteString(FormatAmount(c.AmountPaid))

	for _, item := range c.items {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(item.ID))
		sb.WriteByte(',')
		sb.WriteString(item.Name)
		sb.WriteByte(',')
		sb.WriteString(FormatAmount(item.Price))
		sb.WriteByte(',')
		sb.WriteString(item.PurchaseDate)
	}
	return sb.String()
}

// ParseCustomer builds a customer from positional fields:
// custId, nationalId, amountPaid, then groups of itemId, itemName, itemPrice,
// purchaseDate.
func ParseCustomer(fields []string) (*Customer, error) {
	if len(fields) < customerFields {
		return nil, &ParseError{Field: "record", Value: strings.Join(fields, ","), Err: errTooFewFields}
	}
	if (len(fields)-customerFields)%itemFields != 0 {
		return nil, &ParseError{Field: "items", Value: strings.Join(fields[customerFields:], ","), Err: errIncompleteItem}
	}

	id, err := parseInt("customer id", fields[0])
	if err != nil {
		return nil, err
	}
	amountPaid, err := parseAmount("amount paid", fields[2])
	if err != nil {
		return nil, err
	}

	customer := NewCustomer(id, fields[1], amountPaid)
	for i := customerFields; i < len(fields); i += itemFields {
		item, err := ParseItem(fields[i : i+itemFields])
		if err != nil {
			return nil, err
		}
		customer.AddItem(item)
	}
	return customer, nil
}

func ParseItem(fields []string) (Item, error) {
	if len(fields) != itemFields {
		return Item{}, &ParseError{Field: "item", Value: strings.Join(fields, ","), Err: errIncompleteItem}
	}

	id, err := parseInt("item id", fields[0])
	if err != nil {
		return Item{}, err
	}
	price, err := parseAmount("item price", fields[2])
	if err != nil {
		return Item{}, err
	}
	if price.IsNegative() {
		return Item{}, &ParseError{Field: "item price", Value: fields[2], Err: errNegativePrice}
	}

	return Item{
		ID:           id,
		Name:         fields[1],
		Price:        price,
		PurchaseDate: fields[3],
	}, nil
}

// ParseCustomerID parses a customer id typed at the prompt.
func ParseCustomerID(value string) (int, error) {
	return parseInt("customer id", value)
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Field: field, Value: value, Err: err}
	}
	return n, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &ParseError{Field: field, Value: value, Err: err}
	}
	return d, nil
}
