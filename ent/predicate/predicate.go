// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Asset is the predicate function for asset builders.
type Asset func(*sql.Selector)

// ContentBlob is the predicate function for contentblob builders.
type ContentBlob func(*sql.Selector)

// Generation is the predicate function for generation builders.
type Generation func(*sql.Selector)

// LineageEdge is the predicate function for lineageedge builders.
type LineageEdge func(*sql.Selector)

// Metadata is the predicate function for metadata builders.
type Metadata func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
