package authorize

// Roles. The coach owns the practice and administers everything; clients
// see only their own data.
const (
	RoleCoach  = "coach"
	RoleClient = "client"
)

type Resource string

const (
	ResourceClients       Resource = "clients"
	ResourceSessions      Resource = "sessions"
	ResourceActionItems   Resource = "action_items"
	ResourceLibrary       Resource = "library"
	ResourceBilling       Resource = "billing"
	ResourceNotifications Resource = "notifications"
	ResourceContact       Resource = "contact"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionManage Action = "manage"
)

type policy struct {
	role string
	res  Resource
	act  Action
}

var defaultPolicies = []policy{
	// Clients operate on their own slice of the portal. Session changes
	// stay coach-only; clients confirm through the tokenized public link.
	{RoleClient, ResourceSessions, ActionRead},
	{RoleClient, ResourceActionItems, ActionRead},
	{RoleClient, ResourceActionItems, ActionWrite}, // mark done
	{RoleClient, ResourceLibrary, ActionRead},
	{RoleClient, ResourceBilling, ActionRead},
	{RoleClient, ResourceNotifications, ActionRead},
	{RoleClient, ResourceNotifications, ActionWrite},

	// Coach-only administration.
	{RoleCoach, ResourceClients, ActionManage},
	{RoleCoach, ResourceSessions, ActionManage},
	{RoleCoach, ResourceActionItems, ActionManage},
	{RoleCoach, ResourceLibrary, ActionManage},
	{RoleCoach, ResourceBilling, ActionManage},
	{RoleCoach, ResourceContact, ActionManage},
}
