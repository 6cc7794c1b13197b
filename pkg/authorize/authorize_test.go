package authorize

import "testing"

func TestAllowed(t *testing.T) {
	a, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		name string
		role string
		res  Resource
		act  Action
		want bool
	}{
		{"client reads own sessions", RoleClient, ResourceSessions, ActionRead, true},
		{"client cannot write sessions", RoleClient, ResourceSessions, ActionWrite, false},
		{"client marks notifications read", RoleClient, ResourceNotifications, ActionWrite, true},
		{"client cannot manage clients", RoleClient, ResourceClients, ActionManage, false},
		{"client cannot manage billing", RoleClient, ResourceBilling, ActionManage, false},
		{"coach manages clients", RoleCoach, ResourceClients, ActionManage, true},
		{"coach inherits client read", RoleCoach, ResourceLibrary, ActionRead, true},
		{"unknown role denied", "visitor", ResourceSessions, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Allowed(tt.role, tt.res, tt.act); got != tt.want {
				t.Errorf("Allowed(%s, %s, %s) = %v, want %v", tt.role, tt.res, tt.act, got, tt.want)
			}
		})
	}
}
