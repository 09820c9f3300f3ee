package rbac

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// The policy set is static: this system knows exactly two roles
// (admin-owned configuration vs employee-triggered attendance), so the
// enforcer is seeded at startup instead of loading per-tenant policies.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{RoleAdmin, "employee", "create"},
	{RoleAdmin, "employee", "read"},
	{RoleAdmin, "employee", "update"},
	{RoleAdmin, "employee", "delete"},
	{RoleAdmin, "shift", "create"},
	{RoleAdmin, "shift", "read"},
	{RoleAdmin, "shift", "update"},
	{RoleAdmin, "shift", "delete"},
	{RoleAdmin, "location", "create"},
	{RoleAdmin, "location", "read"},
	{RoleAdmin, "location", "update"},
	{RoleAdmin, "location", "delete"},
	{RoleAdmin, "qr_code", "create"},
	{RoleAdmin, "qr_code", "read"},
	{RoleAdmin, "qr_code", "update"},
	{RoleAdmin, "qr_code", "delete"},
	{RoleAdmin, "attendance_report", "read"},
	{RoleEmployee, "attendance", "create"},
	{RoleEmployee, "attendance", "read"},
}

type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
