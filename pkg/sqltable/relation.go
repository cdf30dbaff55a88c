package sqltable

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// NodeRelation describes where an upstream node materializes, as reported by
// a source system. Producers spell the naming fields differently, so the
// alternate spellings are carried side by side; an empty string counts as
// absent everywhere.
type NodeRelation struct {
	RelationName string `mapstructure:"relation_name"`
	SchemaName   string `mapstructure:"schema_name"`
	Schema       string `mapstructure:"schema"`
	Database     string `mapstructure:"database"`
	DBName       string `mapstructure:"db_name"`
	DatabaseName string `mapstructure:"database_name"`
	Alias        string `mapstructure:"alias"`
	Identifier   string `mapstructure:"identifier"`
}

// FromNodeRelation builds a Table from a node relation descriptor,
// tolerating missing fields. A relation name that is already dot-qualified
// is authoritative and is parsed as-is, ignoring the other fields; otherwise
// the reference is assembled from whichever parts are present, most
// qualified first. When two spellings of the same part are both set, the
// first listed in NodeRelation wins.
func FromNodeRelation(rel NodeRelation) (Table, error) {
	schema := firstNonEmpty(rel.SchemaName, rel.Schema)
	db := firstNonEmpty(rel.Database, rel.DBName, rel.DatabaseName)
	identifier := firstNonEmpty(rel.Alias, rel.Identifier, rel.RelationName)

	if strings.Contains(rel.RelationName, ".") {
		return FromString(rel.RelationName)
	}

	switch {
	case db != "" && schema != "" && identifier != "":
		return NewQualified(db, schema, identifier)
	case schema != "" && identifier != "":
		return New(schema, identifier), nil
	case identifier != "":
		return New("", identifier), nil
	}

	// Nothing usable among the parts; the raw relation name is the last
	// resort and fails unless it is itself a qualified form.
	return FromString(rel.RelationName)
}

// FromRelationMap decodes a loosely-typed descriptor record, such as a
// manifest fragment, into a NodeRelation and adapts it. Keys follow the
// NodeRelation field spellings; absent or null values are tolerated.
func FromRelationMap(fields map[string]any) (Table, error) {
	var rel NodeRelation
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rel,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Table{}, fmt.Errorf("build relation decoder: %w", err)
	}
	if err := dec.Decode(fields); err != nil {
		return Table{}, fmt.Errorf("decode node relation: %w", err)
	}
	return FromNodeRelation(rel)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
