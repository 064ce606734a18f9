// Package importfile reads eshop order batch files from disk and turns them
// into importer input models. Files are JSON arrays of orders as exported by
// the shop platform; every record is validated before the batch is handed to
// the importer so that malformed feeds fail fast instead of mid-transaction.
package importfile

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	eshopapp "github.com/euroweb/backoffice/internal/application/eshop"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02 15:04:05"

// orderRecord mirrors the feed file layout
type orderRecord struct {
	OrderID        string         `json:"orderId" validate:"required"`
	Status         string         `json:"status" validate:"required"`
	ExtendedStatus string         `json:"extendedStatus"`
	Date           string         `json:"date" validate:"required"`
	InvoiceNumber  string         `json:"invoiceNumber"`
	Customer       customerRecord `json:"customer" validate:"required"`
	Lines          []lineRecord   `json:"lines" validate:"dive"`
}

type customerRecord struct {
	ExternalID string `json:"externalId" validate:"required"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
}

type lineRecord struct {
	LineNumber  int             `json:"lineNumber" validate:"gt=0"`
	ProductCode string          `json:"productCode" validate:"required"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	Amount      decimal.Decimal `json:"amount"`
	Vat         decimal.Decimal `json:"vat"`
	VatAmount   decimal.Decimal `json:"vatAmount"`
}

// Loader parses and validates order batch files
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a batch file loader
func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// Load reads a JSON batch file and returns the validated order models in
// file order
func (l *Loader) Load(path string) ([]eshopapp.OrderModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return l.Parse(data)
}

// Parse decodes and validates a raw JSON batch
func (l *Loader) Parse(data []byte) ([]eshopapp.OrderModel, error) {
	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode batch file: %w", err)
	}

	models := make([]eshopapp.OrderModel, 0, len(records))
	for i, record := range records {
		if err := l.validate.Struct(record); err != nil {
			return nil, fmt.Errorf("invalid order record %d (%s): %w", i+1, record.OrderID, err)
		}

		model, err := record.toModel()
		if err != nil {
			return nil, fmt.Errorf("invalid order record %d (%s): %w", i+1, record.OrderID, err)
		}
		models = append(models, model)
	}
	return models, nil
}

func (r orderRecord) toModel() (eshopapp.OrderModel, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return eshopapp.OrderModel{}, fmt.Errorf("unparseable order date %q: %w", r.Date, err)
	}

	lines := make([]eshopapp.OrderLineModel, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, eshopapp.OrderLineModel{
			LineNumber:  line.LineNumber,
			ProductCode: line.ProductCode,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Discount:    line.Discount,
			Amount:      line.Amount,
			Vat:         line.Vat,
			VatAmount:   line.VatAmount,
		})
	}

	return eshopapp.OrderModel{
		OrderID:        r.OrderID,
		Status:         r.Status,
		ExtendedStatus: r.ExtendedStatus,
		Date:           date,
		InvoiceNumber:  r.InvoiceNumber,
		Customer: eshopapp.CustomerModel{
			ExternalID: r.Customer.ExternalID,
			FirstName:  r.Customer.FirstName,
			LastName:   r.Customer.LastName,
			Phone:      r.Customer.Phone,
			Email:      r.Customer.Email,
			Address:    r.Customer.Address,
		},
		Lines: lines,
	}, nil
}
