// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/evanshaw/cadence_backend/internal/repo/clientprofile"
	"github.com/evanshaw/cadence_backend/internal/repo/user"
	"github.com/google/uuid"
)

// ClientProfile is the model entity for the ClientProfile schema.
type ClientProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id
	UserID uuid.UUID `json:"user_id,omitempty"`
	// Company holds the value of the "company" field.
	Company string `json:"company,omitempty"`
	// Goals holds the value of the "goals" field.
	Goals *string `json:"goals,omitempty"`
	// Raw JSON preference blob; parsed leniently, defaults on absence or corruption
	NotificationPrefs *string `json:"notification_prefs,omitempty"`
	// OnboardedAt holds the value of the "onboarded_at" field.
	OnboardedAt *time.Time `json:"onboarded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClientProfileQuery when eager-loading is set.
	Edges        ClientProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClientProfileEdges holds the relations/edges for other nodes in the graph.
type ClientProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ClientProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ClientProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clientprofile.FieldCompany, clientprofile.FieldGoals, clientprofile.FieldNotificationPrefs:
			values[i] = new(sql.NullString)
		case clientprofile.FieldCreatedAt, clientprofile.FieldUpdatedAt, clientprofile.FieldOnboardedAt:
			values[i] = new(sql.NullTime)
		case clientprofile.FieldID, clientprofile.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ClientProfile fields.
func (_m *ClientProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clientprofile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case clientprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clientprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case clientprofile.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case clientprofile.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case clientprofile.FieldGoals:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goals", values[i])
			} else if value.Valid {
				_m.Goals = new(string)
				*_m.Goals = value.String
			}
		case clientprofile.FieldNotificationPrefs:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notification_prefs", values[i])
			} else if value.Valid {
				_m.NotificationPrefs = new(string)
				*_m.NotificationPrefs = value.String
			}
		case clientprofile.FieldOnboardedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field onboarded_at", values[i])
			} else if value.Valid {
				_m.OnboardedAt = new(time.Time)
				*_m.OnboardedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ClientProfile.
// This includes values selected through modifiers, order, etc.
func (_m *ClientProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ClientProfile entity.
func (_m *ClientProfile) QueryUser() *UserQuery {
	return NewClientProfileClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this ClientProfile.
// Note that you need to call ClientProfile.Unwrap() before calling this method if this ClientProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ClientProfile) Update() *ClientProfileUpdateOne {
	return NewClientProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ClientProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ClientProfile) Unwrap() *ClientProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ClientProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ClientProfile) String() string {
	var builder strings.Builder
	builder.WriteString("ClientProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	if v := _m.Goals; v != nil {
		builder.WriteString("goals=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NotificationPrefs; v != nil {
		builder.WriteString("notification_prefs=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OnboardedAt; v != nil {
		builder.WriteString("onboarded_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ClientProfiles is a parsable slice of ClientProfile.
type ClientProfiles []*ClientProfile
