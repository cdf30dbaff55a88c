package sqltable

import (
	"errors"
	"fmt"
	"strings"
)

// TableType represents the kind of relation a Table points at.
type TableType string

// Table type constants.
const (
	TypeTable TableType = "table"
	TypeView  TableType = "view"
	// A CTE type may be added later.
)

// Sentinel errors for construction and parsing failures.
var (
	// ErrInvalidQualification is returned when a database name is supplied
	// without a schema name.
	ErrInvalidQualification = errors.New("database-qualified reference requires a schema")
	// ErrMalformedTableRef is returned when a string does not parse as a
	// qualified table reference.
	ErrMalformedTableRef = errors.New("malformed table reference")
)

// Table is a reference to a SQL table or view.
//
// An empty SchemaName or DBName means the part is absent; a DBName is only
// valid together with a SchemaName. Tables are plain comparable values and
// are never mutated after construction (WithType returns a copy), so they
// are safe to share and to use as map keys.
type Table struct {
	// SchemaName is the schema qualifier, empty when unqualified.
	SchemaName string
	// TableName is the unqualified table identifier.
	TableName string
	// DBName is the database qualifier, empty when absent.
	DBName string
	// Type distinguishes tables from views. Constructors default it to TypeTable.
	Type TableType
}

// New returns a reference to tableName, schema-qualified when schemaName is
// non-empty. Names are not syntax-checked.
func New(schemaName, tableName string) Table {
	return Table{SchemaName: schemaName, TableName: tableName, Type: TypeTable}
}

// NewQualified returns a reference qualified by database and schema. It
// fails with ErrInvalidQualification when dbName is set without schemaName.
func NewQualified(dbName, schemaName, tableName string) (Table, error) {
	t := Table{DBName: dbName, SchemaName: schemaName, TableName: tableName, Type: TypeTable}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// WithType returns a copy of the reference with the table type replaced.
func (t Table) WithType(tt TableType) Table {
	t.Type = tt
	return t
}

// Validate checks the qualification invariant: a database part requires a
// schema part. Constructors enforce this; Validate covers references built
// as struct literals.
func (t Table) Validate() error {
	if t.DBName != "" && t.SchemaName == "" {
		return fmt.Errorf("%w: db %q set on table %q without a schema", ErrInvalidQualification, t.DBName, t.TableName)
	}
	return nil
}

// Compare orders references by schema, table, database, then type. An
// absent part sorts before any present one. The order is total and
// deterministic, suitable for slices.SortFunc.
func (t Table) Compare(other Table) int {
	if c := strings.Compare(t.SchemaName, other.SchemaName); c != 0 {
		return c
	}
	if c := strings.Compare(t.TableName, other.TableName); c != 0 {
		return c
	}
	if c := strings.Compare(t.DBName, other.DBName); c != 0 {
		return c
	}
	return strings.Compare(string(t.Type), string(other.Type))
}

// SQL returns the dotted form usable directly in a SQL statement: the
// present parts among db, schema and table joined with ".". Identifiers are
// not quoted.
func (t Table) SQL() string {
	parts := make([]string, 0, 3)
	if t.DBName != "" {
		parts = append(parts, t.DBName)
	}
	if t.SchemaName != "" {
		parts = append(parts, t.SchemaName)
	}
	parts = append(parts, t.TableName)
	return strings.Join(parts, ".")
}

// String implements fmt.Stringer.
func (t Table) String() string { return t.SQL() }
