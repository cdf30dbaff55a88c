package sqltable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Table
		expectErr bool
	}{
		{
			name:  "schema qualified",
			input: "s.t",
			want:  Table{SchemaName: "s", TableName: "t", Type: TypeTable},
		},
		{
			name:  "fully qualified",
			input: "d.s.t",
			want:  Table{DBName: "d", SchemaName: "s", TableName: "t", Type: TypeTable},
		},
		{
			name:  "underscored identifiers",
			input: "raw_db.raw_schema.order_items",
			want:  Table{DBName: "raw_db", SchemaName: "raw_schema", TableName: "order_items", Type: TypeTable},
		},
		{
			name:  "case preserved",
			input: "Raw.Orders",
			want:  Table{SchemaName: "Raw", TableName: "Orders", Type: TypeTable},
		},
		{
			name:  "whitespace preserved",
			input: " s . t",
			want:  Table{SchemaName: " s ", TableName: " t", Type: TypeTable},
		},
		{name: "empty", input: "", expectErr: true},
		{name: "unqualified", input: "orders", expectErr: true},
		{name: "four segments", input: "a.b.c.d", expectErr: true},
		{name: "leading dot", input: ".t", expectErr: true},
		{name: "trailing dot", input: "s.t.", expectErr: true},
		{name: "empty middle segment", input: "d..t", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedTableRef)
				// Diagnostics carry the accepted forms and the input.
				assert.Contains(t, err.Error(), "'<schema>.<table>' or '<db>.<schema>.<table>'")
				assert.Contains(t, err.Error(), tt.input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	inputs := []string{
		"s.t",
		"staging.customers",
		"analytics.marts.revenue",
		"MyDb.MySchema.MyTable",
	}
	for _, input := range inputs {
		got, err := FromString(input)
		require.NoError(t, err)
		assert.Equal(t, input, got.SQL())
	}
}
