// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActionItemsColumns holds the columns for the "action_items" table.
	ActionItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "due_on", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "done"}, Default: "open"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeUUID, Nullable: true},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// ActionItemsTable holds the schema information for the "action_items" table.
	ActionItemsTable = &schema.Table{
		Name:       "action_items",
		Columns:    ActionItemsColumns,
		PrimaryKey: []*schema.Column{ActionItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "action_items_sessions_action_items",
				Columns:    []*schema.Column{ActionItemsColumns[8]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "action_items_users_action_items",
				Columns:    []*schema.Column{ActionItemsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "actionitem_client_id_status_due_on",
				Unique:  false,
				Columns: []*schema.Column{ActionItemsColumns[9], ActionItemsColumns[6], ActionItemsColumns[5]},
			},
		},
	}
	// ClientProfilesColumns holds the columns for the "client_profiles" table.
	ClientProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "goals", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notification_prefs", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "onboarded_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// ClientProfilesTable holds the schema information for the "client_profiles" table.
	ClientProfilesTable = &schema.Table{
		Name:       "client_profiles",
		Columns:    ClientProfilesColumns,
		PrimaryKey: []*schema.Column{ClientProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "client_profiles_users_profile",
				Columns:    []*schema.Column{ClientProfilesColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "clientprofile_user_id",
				Unique:  true,
				Columns: []*schema.Column{ClientProfilesColumns[7]},
			},
		},
	}
	// ContactMessagesColumns holds the columns for the "contact_messages" table.
	ContactMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "subject", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"contact", "intake"}, Default: "contact"},
		{Name: "handled", Type: field.TypeBool, Default: false},
	}
	// ContactMessagesTable holds the schema information for the "contact_messages" table.
	ContactMessagesTable = &schema.Table{
		Name:       "contact_messages",
		Columns:    ContactMessagesColumns,
		PrimaryKey: []*schema.Column{ContactMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactmessage_handled_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactMessagesColumns[7], ContactMessagesColumns[1]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "number", Type: field.TypeString, Unique: true, Size: 32},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "usd"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "paid", "void"}, Default: "draft"},
		{Name: "issued_on", Type: field.TypeTime, Nullable: true},
		{Name: "due_on", Type: field.TypeTime, Nullable: true},
		{Name: "checkout_url", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_users_invoices",
				Columns:    []*schema.Column{InvoicesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_client_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[12], InvoicesColumns[7]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString, Size: 64},
		{Name: "category", Type: field.TypeString, Size: 32},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON, Nullable: true},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_emailed", Type: field.TypeBool, Default: false},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_user_id_is_read_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[9], NotificationsColumns[7], NotificationsColumns[1]},
			},
		},
	}
	// PaymentsColumns holds the columns for the "payments" table.
	PaymentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "usd"},
		{Name: "provider", Type: field.TypeString, Size: 32, Default: "stripe"},
		{Name: "provider_ref", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// PaymentsTable holds the schema information for the "payments" table.
	PaymentsTable = &schema.Table{
		Name:       "payments",
		Columns:    PaymentsColumns,
		PrimaryKey: []*schema.Column{PaymentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payments_invoices_payments",
				Columns:    []*schema.Column{PaymentsColumns[6]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "payment_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentsColumns[6]},
			},
		},
	}
	// ResourcesColumns holds the columns for the "resources" table.
	ResourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"article", "worksheet", "video", "slides", "link"}, Default: "article"},
		{Name: "object_key", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "external_url", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "published", Type: field.TypeBool, Default: false},
	}
	// ResourcesTable holds the schema information for the "resources" table.
	ResourcesTable = &schema.Table{
		Name:       "resources",
		Columns:    ResourcesColumns,
		PrimaryKey: []*schema.Column{ResourcesColumns[0]},
	}
	// ResourceSharesColumns holds the columns for the "resource_shares" table.
	ResourceSharesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "resource_id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// ResourceSharesTable holds the schema information for the "resource_shares" table.
	ResourceSharesTable = &schema.Table{
		Name:       "resource_shares",
		Columns:    ResourceSharesColumns,
		PrimaryKey: []*schema.Column{ResourceSharesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "resource_shares_resources_shares",
				Columns:    []*schema.Column{ResourceSharesColumns[2]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "resource_shares_users_resource_shares",
				Columns:    []*schema.Column{ResourceSharesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "resourceshare_resource_id_client_id",
				Unique:  true,
				Columns: []*schema.Column{ResourceSharesColumns[2], ResourceSharesColumns[3]},
			},
			{
				Name:    "resourceshare_client_id",
				Unique:  false,
				Columns: []*schema.Column{ResourceSharesColumns[3]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 60},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending_confirmation", "confirmed", "completed", "cancelled"}, Default: "pending_confirmation"},
		{Name: "confirm_token", Type: field.TypeString, Unique: true, Nullable: true, Size: 64},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_reason", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "recurrence_rule", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "reminder_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "meeting_url", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "client_id", Type: field.TypeUUID},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_client_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[16], SessionsColumns[4]},
			},
			{
				Name:    "session_status_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[7], SessionsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"coach", "client"}, Default: "client"},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "email_verified_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActionItemsTable,
		ClientProfilesTable,
		ContactMessagesTable,
		InvoicesTable,
		NotificationsTable,
		PaymentsTable,
		ResourcesTable,
		ResourceSharesTable,
		SessionsTable,
		UsersTable,
	}
)

func init() {
	ActionItemsTable.ForeignKeys[0].RefTable = SessionsTable
	ActionItemsTable.ForeignKeys[1].RefTable = UsersTable
	ClientProfilesTable.ForeignKeys[0].RefTable = UsersTable
	InvoicesTable.ForeignKeys[0].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	PaymentsTable.ForeignKeys[0].RefTable = InvoicesTable
	ResourceSharesTable.ForeignKeys[0].RefTable = ResourcesTable
	ResourceSharesTable.ForeignKeys[1].RefTable = UsersTable
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
}
