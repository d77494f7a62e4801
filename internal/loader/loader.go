// Package loader bulk-loads the Brazilian e-commerce CSV files into the
// warehouse's RAW layer. One attempt per file, failures isolated per file.
package loader

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
)

// Status of one table's load attempt.
type Status string

const (
	StatusSuccess Status = "success"
	// StatusFailed existed in an earlier report format where the warehouse
	// could report a non-exceptional failure; kept for report compatibility.
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Result records the outcome for one table.
type Result struct {
	Status  Status
	Reason  string
	Rows    int
	Columns int
	Error   string
}

// fileTable associates one source CSV with its destination table.
type fileTable struct {
	file  string
	table string
}

// The fixed file→table mapping: exactly nine entries, one per known source
// file, immutable for the process lifetime.
var fileTables = []fileTable{
	{"olist_customers_dataset.csv", "CUSTOMERS"},
	{"olist_geolocation_dataset.csv", "GEOLOCATION"},
	{"olist_order_items_dataset.csv", "ORDER_ITEMS"},
	{"olist_order_payments_dataset.csv", "ORDER_PAYMENTS"},
	{"olist_order_reviews_dataset.csv", "ORDER_REVIEWS"},
	{"olist_orders_dataset.csv", "ORDERS"},
	{"olist_products_dataset.csv", "PRODUCTS"},
	{"olist_sellers_dataset.csv", "SELLERS"},
	{"product_category_name_translation.csv", "PRODUCT_CATEGORY_TRANSLATION"},
}

// Warehouse replace-loads parsed CSV records into schema.table and returns
// the number of rows loaded. Satisfied by *snowflake.Connector.
type Warehouse interface {
	Load(ctx context.Context, table, schema string, header []string, records [][]string) (int, error)
}

// Loader loads the known CSV files into warehouse tables.
type Loader struct {
	warehouse Warehouse
}

func New(warehouse Warehouse) *Loader {
	return &Loader{warehouse: warehouse}
}

// LoadAll attempts every entry of the file→table mapping against dir.
// A missing source directory short-circuits to an empty result with zero
// warehouse calls. A missing file records skipped; a parse or load failure
// records error and the run continues with the next file.
func (l *Loader) LoadAll(ctx context.Context, dir, schema string) map[string]Result {
	results := make(map[string]Result)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return results
	}

	for _, ft := range fileTables {
		table := strings.ToUpper(ft.table)
		path := filepath.Join(dir, ft.file)

		if _, err := os.Stat(path); err != nil {
			results[table] = Result{Status: StatusSkipped, Reason: "file not found"}
			continue
		}

		header, records, err := readCSV(path)
		if err != nil {
			results[table] = Result{Status: StatusError, Error: err.Error()}
			continue
		}

		rows, err := l.warehouse.Load(ctx, table, schema, header, records)
		if err != nil {
			results[table] = Result{Status: StatusError, Error: err.Error()}
			continue
		}

		results[table] = Result{Status: StatusSuccess, Rows: rows, Columns: len(header)}
	}

	return results
}

// TableOrder returns the destination table names in mapping order, for
// deterministic reports.
func TableOrder() []string {
	names := make([]string, len(fileTables))
	for i, ft := range fileTables {
		names[i] = strings.ToUpper(ft.table)
	}
	return names
}

// readCSV fully materializes one file: header first, then all records.
func readCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, &emptyFileError{path: path}
	}
	return all[0], all[1:], nil
}

type emptyFileError struct{ path string }

func (e *emptyFileError) Error() string { return "empty csv file: " + e.path }
