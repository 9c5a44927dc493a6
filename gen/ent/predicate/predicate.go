// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionField is the predicate function for extractionfield builders.
type ExtractionField func(*sql.Selector)
