package snowflake

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/snowflakedb/gosnowflake"
)

// Default schemas for the two sides of the system: dashboard reads come from
// the dbt marts, the bulk loader writes to the raw layer.
const (
	SchemaMarts = "MARTS"
	SchemaRaw   = "RAW"
)

// insertBatchSize bounds the number of rows per INSERT statement so the bind
// count stays well under the server limit even for wide CSVs.
const insertBatchSize = 500

// Row is a single result record keyed by column name as reported by the
// driver. Snowflake upper-cases unquoted identifiers, so keys are upper-case.
type Row map[string]any

// Config holds the connection coordinates. Immutable per connector.
type Config struct {
	Account        string
	User           string
	Role           string
	Warehouse      string
	Database       string
	PrivateKeyPath string
}

// Connector opens one session per call against the configured account.
// There is deliberately no shared pool: every query batch gets a fresh
// session that is closed before the call returns.
type Connector struct {
	cfg Config
}

func NewConnector(cfg Config) *Connector {
	return &Connector{cfg: cfg}
}

// open establishes a session in the given schema (default MARTS).
// The caller owns the returned handle and must close it.
func (c *Connector) open(schema string) (*sql.DB, error) {
	if schema == "" {
		schema = SchemaMarts
	}

	key, err := LoadPrivateKey(c.cfg.PrivateKeyPath)
	if err != nil {
		return nil, err
	}

	dsn, err := gosnowflake.DSN(&gosnowflake.Config{
		Account:       c.cfg.Account,
		User:          c.cfg.User,
		Role:          c.cfg.Role,
		Warehouse:     c.cfg.Warehouse,
		Database:      c.cfg.Database,
		Schema:        schema,
		Authenticator: gosnowflake.AuthTypeJwt,
		PrivateKey:    key,
		InsecureMode:  true,
		OCSPFailOpen:  gosnowflake.OCSPFailOpenTrue,
	})
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return db, nil
}

// Execute runs one statement and returns all result rows, fully materialized.
// The session is opened and closed within this call. Row order is whatever
// the statement's ORDER BY produced.
func (c *Connector) Execute(ctx context.Context, query, schema string) ([]Row, error) {
	db, err := c.open(schema)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Err: err}
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{Err: err}
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return result, nil
}

// Load replace-loads records into schema.table: the table is recreated from
// the header with all-VARCHAR columns, then the records are inserted in
// batches. Returns the number of rows loaded.
func (c *Connector) Load(ctx context.Context, table, schema string, header []string, records [][]string) (int, error) {
	db, err := c.open(schema)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	table = strings.ToUpper(table)
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = sanitizeIdentifier(h)
	}

	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col + " VARCHAR"
	}
	create := fmt.Sprintf("CREATE OR REPLACE TABLE %s.%s (%s)", schema, table, strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, create); err != nil {
		return 0, &QueryError{Err: err}
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",") + ")"
	loaded := 0
	for start := 0; start < len(records); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(records) {
			end = len(records)
		}
		batch := records[start:end]

		placeholders := make([]string, len(batch))
		args := make([]any, 0, len(batch)*len(columns))
		for i, record := range batch {
			placeholders[i] = placeholder
			for _, field := range record {
				args = append(args, field)
			}
		}

		insert := fmt.Sprintf("INSERT INTO %s.%s (%s) VALUES %s",
			schema, table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
		if _, err := db.ExecContext(ctx, insert, args...); err != nil {
			return loaded, &QueryError{Err: err}
		}
		loaded += len(batch)
	}
	return loaded, nil
}

// SessionInfo identifies an established session.
type SessionInfo struct {
	User      string
	Account   string
	Warehouse string
	Database  string
	Schema    string
	Role      string
}

// Check opens a session and reads back its identity. Used by the loader CLI
// to verify credentials before touching any table.
func (c *Connector) Check(ctx context.Context) (SessionInfo, error) {
	rows, err := c.Execute(ctx, `SELECT
    CURRENT_USER()      AS "USER",
    CURRENT_ACCOUNT()   AS "ACCOUNT",
    CURRENT_WAREHOUSE() AS "WAREHOUSE",
    CURRENT_DATABASE()  AS "DATABASE",
    CURRENT_SCHEMA()    AS "SCHEMA",
    CURRENT_ROLE()      AS "ROLE"`, SchemaRaw)
	if err != nil {
		return SessionInfo{}, err
	}
	if len(rows) == 0 {
		return SessionInfo{}, &QueryError{Err: fmt.Errorf("empty identity result")}
	}
	r := rows[0]
	return SessionInfo{
		User:      asString(r["USER"]),
		Account:   asString(r["ACCOUNT"]),
		Warehouse: asString(r["WAREHOUSE"]),
		Database:  asString(r["DATABASE"]),
		Schema:    asString(r["SCHEMA"]),
		Role:      asString(r["ROLE"]),
	}, nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// sanitizeIdentifier upper-cases a CSV header cell and strips anything that
// would need quoting in an unquoted Snowflake identifier.
func sanitizeIdentifier(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(name)) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}
