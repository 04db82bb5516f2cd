// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediaflow/ent/generation"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// 生成记录表，记录一次生成操作的规范化参数
type Generation struct {
	config `json:"-"`
	// ID of the ent.
	ID uint `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// 发起生成的用户ID
	OwnerID uint `json:"owner_id,omitempty"`
	// 生成操作类型
	OperationType string `json:"operation_type,omitempty"`
	// 规范化后的生成参数
	CanonicalParams model.JSONMap `json:"canonical_params,omitempty"`
	// 输入资产的内容哈希列表
	Inputs []string `json:"inputs,omitempty"`
	// 参数与输入的可复现哈希
	ReproHash string `json:"repro_hash,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GenerationQuery when eager-loading is set.
	Edges        GenerationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GenerationEdges holds the relations/edges for other nodes in the graph.
type GenerationEdges struct {
	// Assets holds the value of the assets edge.
	Assets []*Asset `json:"assets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AssetsOrErr returns the Assets value or an error if the edge
// was not loaded in eager-loading.
func (e GenerationEdges) AssetsOrErr() ([]*Asset, error) {
	if e.loadedTypes[0] {
		return e.Assets, nil
	}
	return nil, &NotLoadedError{edge: "assets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Generation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case generation.FieldInputs:
			values[i] = new([]byte)
		case generation.FieldCanonicalParams:
			values[i] = new(model.JSONMap)
		case generation.FieldID, generation.FieldOwnerID:
			values[i] = new(sql.NullInt64)
		case generation.FieldOperationType, generation.FieldReproHash:
			values[i] = new(sql.NullString)
		case generation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Generation fields.
func (ge *Generation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case generation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ge.ID = uint(value.Int64)
		case generation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ge.CreatedAt = value.Time
			}
		case generation.FieldOwnerID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				ge.OwnerID = uint(value.Int64)
			}
		case generation.FieldOperationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation_type", values[i])
			} else if value.Valid {
				ge.OperationType = value.String
			}
		case generation.FieldCanonicalParams:
			if value, ok := values[i].(*model.JSONMap); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_params", values[i])
			} else if value != nil {
				ge.CanonicalParams = *value
			}
		case generation.FieldInputs:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field inputs", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ge.Inputs); err != nil {
					return fmt.Errorf("unmarshal field inputs: %w", err)
				}
			}
		case generation.FieldReproHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repro_hash", values[i])
			} else if value.Valid {
				ge.ReproHash = value.String
			}
		default:
			ge.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Generation.
// This includes values selected through modifiers, order, etc.
func (ge *Generation) Value(name string) (ent.Value, error) {
	return ge.selectValues.Get(name)
}

// QueryAssets queries the "assets" edge of the Generation entity.
func (ge *Generation) QueryAssets() *AssetQuery {
	return NewGenerationClient(ge.config).QueryAssets(ge)
}

// Update returns a builder for updating this Generation.
// Note that you need to call Generation.Unwrap() before calling this method if this Generation
// was returned from a transaction, and the transaction was committed or rolled back.
func (ge *Generation) Update() *GenerationUpdateOne {
	return NewGenerationClient(ge.config).UpdateOne(ge)
}

// Unwrap unwraps the Generation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ge *Generation) Unwrap() *Generation {
	_tx, ok := ge.config.driver.(*txDriver)
	if !ok {
		panic("ent: Generation is not a transactional entity")
	}
	ge.config.driver = _tx.drv
	return ge
}

// String implements the fmt.Stringer.
func (ge *Generation) String() string {
	var builder strings.Builder
	builder.WriteString("Generation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ge.ID))
	builder.WriteString("created_at=")
	builder.WriteString(ge.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", ge.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("operation_type=")
	builder.WriteString(ge.OperationType)
	builder.WriteString(", ")
	builder.WriteString("canonical_params=")
	builder.WriteString(fmt.Sprintf("%v", ge.CanonicalParams))
	builder.WriteString(", ")
	builder.WriteString("inputs=")
	builder.WriteString(fmt.Sprintf("%v", ge.Inputs))
	builder.WriteString(", ")
	builder.WriteString("repro_hash=")
	builder.WriteString(ge.ReproHash)
	builder.WriteByte(')')
	return builder.String()
}

// Generations is a parsable slice of Generation.
type Generations []*Generation
