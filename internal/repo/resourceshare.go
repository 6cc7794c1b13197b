// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evanshaw/cadence_backend/internal/repo/resource"
	"github.com/evanshaw/cadence_backend/internal/repo/resourceshare"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ResourceShare is the model entity for the ResourceShare schema.
type ResourceShare struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID uuid.UUID `json:"resource_id,omitempty"`
	// ClientID holds the value of the "client_id" field.
	ClientID uuid.UUID `json:"client_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResourceShareQuery when eager-loading is set.
	Edges        ResourceShareEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResourceShareEdges holds the relations/edges for other nodes in the graph.
type ResourceShareEdges struct {
	// Resource holds the value of the resource edge.
	Resource *Resource `json:"resource,omitempty"`
	// Client holds the value of the client edge.
	Client *User `json:"client,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ResourceOrErr returns the Resource value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResourceShareEdges) ResourceOrErr() (*Resource, error) {
	if e.Resource != nil {
		return e.Resource, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: resource.Label}
	}
	return nil, &NotLoadedError{edge: "resource"}
}

// ClientOrErr returns the Client value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResourceShareEdges) ClientOrErr() (*User, error) {
	if e.Client != nil {
		return e.Client, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "client"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResourceShare) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resourceshare.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case resourceshare.FieldID, resourceshare.FieldResourceID, resourceshare.FieldClientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResourceShare fields.
func (_m *ResourceShare) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resourceshare.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case resourceshare.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case resourceshare.FieldResourceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value != nil {
				_m.ResourceID = *value
			}
		case resourceshare.FieldClientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field client_id", values[i])
			} else if value != nil {
				_m.ClientID = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResourceShare.
// This includes values selected through modifiers, order, etc.
func (_m *ResourceShare) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResource queries the "resource" edge of the ResourceShare entity.
func (_m *ResourceShare) QueryResource() *ResourceQuery {
	return NewResourceShareClient(_m.config).QueryResource(_m)
}

// QueryClient queries the "client" edge of the ResourceShare entity.
func (_m *ResourceShare) QueryClient() *UserQuery {
	return NewResourceShareClient(_m.config).QueryClient(_m)
}

// Update returns a builder for updating this ResourceShare.
// Note that you need to call ResourceShare.Unwrap() before calling this method if this ResourceShare
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResourceShare) Update() *ResourceShareUpdateOne {
	return NewResourceShareClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResourceShare entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResourceShare) Unwrap() *ResourceShare {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ResourceShare is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResourceShare) String() string {
	var builder strings.Builder
	builder.WriteString("ResourceShare(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResourceID))
	builder.WriteString(", ")
	builder.WriteString("client_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClientID))
	builder.WriteByte(')')
	return builder.String()
}

// ResourceShares is a parsable slice of ResourceShare.
type ResourceShares []*ResourceShare
