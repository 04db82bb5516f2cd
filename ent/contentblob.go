// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediaflow/ent/contentblob"
)

// 内容块表，按内容哈希全局去重
type ContentBlob struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 文件内容的 SHA-256 十六进制哈希
	ContentHash string `json:"content_hash,omitempty"`
	// 文件大小 (字节)
	Size int64 `json:"size,omitempty"`
	// 文件的MIME类型
	MimeType     string `json:"mime_type,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentBlob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentblob.FieldID, contentblob.FieldSize:
			values[i] = new(sql.NullInt64)
		case contentblob.FieldContentHash, contentblob.FieldMimeType:
			values[i] = new(sql.NullString)
		case contentblob.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentBlob fields.
func (cb *ContentBlob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentblob.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			cb.ID = uint(value.Int64)
		case contentblob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cb.CreatedAt = value.Time
			}
		case contentblob.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				cb.ContentHash = value.String
			}
		case contentblob.FieldSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field size", values[i])
			} else if value.Valid {
				cb.Size = value.Int64
			}
		case contentblob.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				cb.MimeType = value.String
			}
		default:
			cb.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentBlob.
// This includes values selected through modifiers, order, etc.
func (cb *ContentBlob) Value(name string) (ent.Value, error) {
	return cb.selectValues.Get(name)
}

// Update returns a builder for updating this ContentBlob.
// Note that you need to call ContentBlob.Unwrap() before calling this method if this ContentBlob
// was returned from a transaction, and the transaction was committed or rolled back.
func (cb *ContentBlob) Update() *ContentBlobUpdateOne {
	return NewContentBlobClient(cb.config).UpdateOne(cb)
}

// Unwrap unwraps the ContentBlob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cb *ContentBlob) Unwrap() *ContentBlob {
	_tx, ok := cb.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentBlob is not a transactional entity")
	}
	cb.config.driver = _tx.drv
	return cb
}

// String implements the fmt.Stringer.
func (cb *ContentBlob) String() string {
	var builder strings.Builder
	builder.WriteString("ContentBlob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cb.ID))
	builder.WriteString("created_at=")
	builder.WriteString(cb.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(cb.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("size=")
	builder.WriteString(fmt.Sprintf("%v", cb.Size))
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(cb.MimeType)
	builder.WriteByte(')')
	return builder.String()
}

// ContentBlobs is a parsable slice of ContentBlob.
type ContentBlobs []*ContentBlob
