package domain

import (
	"time"
)

// Column headers expected in the first row of an uploaded worksheet.
// The set is closed: these ten literal names are the whole schema contract,
// matched case-sensitively and in any order.
const (
	ColumnRegion     = "Região"
	ColumnStage      = "Etapa"
	ColumnProduct    = "Produto"
	ColumnPONumber   = "PO Number"
	ColumnCreatedAt  = "Data da Criação"
	ColumnStatus     = "Status"
	ColumnDueDate    = "Due Date"
	ColumnSupplier   = "Fornecedor"
	ColumnTracking   = "Rastreio"
	ColumnLastUpdate = "Last Update"
)

// RequiredColumns lists the schema columns in canonical order. Validation
// error messages and column lookups both follow this ordering.
var RequiredColumns = []string{
	ColumnRegion,
	ColumnStage,
	ColumnProduct,
	ColumnPONumber,
	ColumnCreatedAt,
	ColumnStatus,
	ColumnDueDate,
	ColumnSupplier,
	ColumnTracking,
	ColumnLastUpdate,
}

// Field names of Record, used to select an aggregation axis.
const (
	FieldRegion     = "region"
	FieldStage      = "stage"
	FieldProduct    = "product"
	FieldPONumber   = "poNumber"
	FieldCreatedAt  = "createdAt"
	FieldStatus     = "status"
	FieldDueDate    = "dueDate"
	FieldSupplier   = "supplier"
	FieldTracking   = "tracking"
	FieldLastUpdate = "lastUpdate"
)

// Record represents one normalized purchase-order row produced by ingestion.
// Every field is always present: text columns degrade to the empty string and
// date columns to nil, never to a missing key. Duplicate PO numbers are
// allowed; record order mirrors source row order.
type Record struct {
	Region     string     `json:"region" db:"region"`
	Stage      string     `json:"stage" db:"stage"`
	Product    string     `json:"product" db:"product"`
	PONumber   string     `json:"poNumber" db:"po_number"`
	CreatedAt  *time.Time `json:"createdAt" db:"created_at"`
	Status     string     `json:"status" db:"status"`
	DueDate    *time.Time `json:"dueDate" db:"due_date"`
	Supplier   string     `json:"supplier" db:"supplier"`
	Tracking   string     `json:"tracking" db:"tracking"`
	LastUpdate *time.Time `json:"lastUpdate" db:"last_update"`
}

// TextField returns the string value of one of the seven text fields.
// Date fields are not addressable through this accessor; aggregations
// group over text values only.
func (r Record) TextField(field string) (string, bool) {
	switch field {
	case FieldRegion:
		return r.Region, true
	case FieldStage:
		return r.Stage, true
	case FieldProduct:
		return r.Product, true
	case FieldPONumber:
		return r.PONumber, true
	case FieldStatus:
		return r.Status, true
	case FieldSupplier:
		return r.Supplier, true
	case FieldTracking:
		return r.Tracking, true
	default:
		return "", false
	}
}
