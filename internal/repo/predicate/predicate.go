// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ActionItem is the predicate function for actionitem builders.
type ActionItem func(*sql.Selector)

// ClientProfile is the predicate function for clientprofile builders.
type ClientProfile func(*sql.Selector)

// ContactMessage is the predicate function for contactmessage builders.
type ContactMessage func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// Resource is the predicate function for resource builders.
type Resource func(*sql.Selector)

// ResourceShare is the predicate function for resourceshare builders.
type ResourceShare func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
