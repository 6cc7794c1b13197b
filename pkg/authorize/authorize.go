package authorize

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// rbacModel is a plain role-based model. A solo practice has exactly two
// roles plus an implicit admin (the coach is the admin), so policies live
// in memory and are seeded at startup rather than persisted.
const rbacModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// Authorizer answers "may this role perform this action on this resource".
type Authorizer struct {
	enforcer *casbin.Enforcer
}

func New() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("authorize: parse model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("authorize: create enforcer: %w", err)
	}

	a := &Authorizer{enforcer: e}
	if err := a.seedPolicies(); err != nil {
		return nil, err
	}
	return a, nil
}

// Allowed reports whether role may perform act on res. Errors from the
// enforcer are treated as deny.
func (a *Authorizer) Allowed(role string, res Resource, act Action) bool {
	ok, err := a.enforcer.Enforce(role, string(res), string(act))
	if err != nil {
		return false
	}
	return ok
}

func (a *Authorizer) seedPolicies() error {
	for _, p := range defaultPolicies {
		if _, err := a.enforcer.AddPolicy(p.role, string(p.res), string(p.act)); err != nil {
			return fmt.Errorf("authorize: seed policy %v: %w", p, err)
		}
	}
	// Coach inherits everything a client can do.
	if _, err := a.enforcer.AddGroupingPolicy(RoleCoach, RoleClient); err != nil {
		return fmt.Errorf("authorize: seed role inheritance: %w", err)
	}
	return nil
}
