// Package sqltable provides an immutable reference to a relational table,
// optionally qualified by schema and database, with conversion to and from
// the dotted string form used in SQL ("schema.table" or "db.schema.table").
// It also adapts loosely-typed node relation descriptors, as produced by
// source systems whose naming fields vary, into typed references.
package sqltable
