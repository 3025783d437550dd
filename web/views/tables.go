// Package views projects store entities into display rows. Filtering runs
// against structured entity fields, never against already-rendered markup:
// the free-text query matches any rendered field, while the categorical
// filter compares only its designated field.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/purchasing/models"
)

// SupplierFilter narrows the supplier table. Query is a case-insensitive
// substring match over every rendered field; Product must equal the
// supplier's product when set.
type SupplierFilter struct {
	Query   string
	Product string
}

// IsZero reports whether the filter excludes nothing
func (f SupplierFilter) IsZero() bool {
	return f.Query == "" && f.Product == ""
}

// OrderFilter narrows the order table. Status must equal the order's status
// when set.
type OrderFilter struct {
	Query  string
	Status string
}

// IsZero reports whether the filter excludes nothing
func (f OrderFilter) IsZero() bool {
	return f.Query == "" && f.Status == ""
}

// SupplierRow is one rendered supplier table row
type SupplierRow struct {
	ID      int
	Ref     string
	Name    string
	TaxID   string
	Product string
	Price   string
	Address string
}

// OrderRow is one rendered purchase order table row
type OrderRow struct {
	ID           int
	Ref          string
	ItemID       string
	Quantity     string
	UnitPrice    string
	TotalValue   string
	SupplierName string
	Status       string
	BadgeClass   string
	Date         string
}

// SupplierOption is one entry of the supplier select
type SupplierOption struct {
	ID    int
	Label string
}

// FormatCurrency renders a money value for display
func FormatCurrency(value decimal.Decimal) string {
	return "R$ " + value.StringFixed(2)
}

// FormatDate renders a date for display
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// SupplierRows projects suppliers through the filter, preserving source order
func SupplierRows(suppliers []models.Supplier, filter SupplierFilter) []SupplierRow {
	var rows []SupplierRow
	for _, s := range suppliers {
		row := SupplierRow{
			ID:      s.ID,
			Ref:     fmt.Sprintf("#%d", s.ID),
			Name:    s.Name,
			TaxID:   s.TaxID,
			Product: s.Product,
			Price:   FormatCurrency(s.Price),
			Address: s.Address,
		}
		if filter.Product != "" && !strings.EqualFold(s.Product, filter.Product) {
			continue
		}
		if !matchesQuery(filter.Query, row.Ref, row.Name, row.TaxID, row.Product, row.Price, row.Address) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// OrderRows projects orders through the filter, preserving source order
func OrderRows(orders []models.PurchaseOrder, filter OrderFilter) []OrderRow {
	var rows []OrderRow
	for _, o := range orders {
		row := OrderRow{
			ID:           o.ID,
			Ref:          fmt.Sprintf("#%d", o.ID),
			ItemID:       fmt.Sprintf("%d", o.ItemID),
			Quantity:     fmt.Sprintf("%d", o.Quantity),
			UnitPrice:    FormatCurrency(o.UnitPrice),
			TotalValue:   FormatCurrency(o.TotalValue),
			SupplierName: o.SupplierName,
			Status:       string(o.Status),
			BadgeClass:   o.Status.BadgeClass(),
			Date:         FormatDate(o.Date),
		}
		if filter.Status != "" && !strings.EqualFold(string(o.Status), filter.Status) {
			continue
		}
		if !matchesQuery(filter.Query, row.Ref, row.ItemID, row.Quantity, row.UnitPrice,
			row.TotalValue, row.SupplierName, row.Status, row.Date) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// matchesQuery reports whether the query is a substring of any field
func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

// SupplierEmptyMessage returns the placeholder row text. The wording
// distinguishes an empty register from a filter that matched nothing.
func SupplierEmptyMessage(filtered bool) string {
	if filtered {
		return "Nenhum fornecedor encontrado"
	}
	return "Nenhum fornecedor cadastrado"
}

// OrderEmptyMessage returns the placeholder row text for the order table
func OrderEmptyMessage(filtered bool) string {
	if filtered {
		return "Nenhuma ordem encontrada"
	}
	return "Nenhuma ordem cadastrada"
}

// SupplierOptions builds the supplier select entries, in insertion order
func SupplierOptions(suppliers []models.Supplier) []SupplierOption {
	options := make([]SupplierOption, 0, len(suppliers))
	for _, s := range suppliers {
		options = append(options, SupplierOption{
			ID:    s.ID,
			Label: fmt.Sprintf("%s - %s", s.Name, s.Product),
		})
	}
	return options
}

// OrderStatuses lists the statuses offered by the status filter select
func OrderStatuses() []string {
	return []string{
		string(models.OrderPending),
		string(models.OrderApproved),
		string(models.OrderRejected),
		string(models.OrderShipped),
		string(models.OrderDelivered),
	}
}
