package middleware

import (
	"strings"

	"bazaartrack/internal/domain/entity"
)

type access int

const (
	accessPublic access = iota
	accessAuthenticated
	accessRoles
)

// Rule is the access requirement of one route.
type Rule struct {
	access access
	roles  []entity.Role
}

func Public() Rule {
	return Rule{access: accessPublic}
}

// Authenticated admits any verified caller, guests included.
func Authenticated() Rule {
	return Rule{access: accessAuthenticated}
}

func RequireRoles(roles ...entity.Role) Rule {
	return Rule{access: accessRoles, roles: roles}
}

func (r Rule) IsPublic() bool {
	return r.access == accessPublic
}

func (r Rule) Admits(role entity.Role) bool {
	switch r.access {
	case accessPublic, accessAuthenticated:
		return true
	}
	for _, allowed := range r.roles {
		if allowed == role {
			return true
		}
	}
	return false
}

func (r Rule) String() string {
	switch r.access {
	case accessPublic:
		return "public"
	case accessAuthenticated:
		return "authenticated"
	}
	names := make([]string, len(r.roles))
	for i, role := range r.roles {
		names[i] = string(role)
	}
	return strings.Join(names, "|")
}

// Policy maps "METHOD /route/:template" to a Rule. Routes missing from the table are public.
type Policy map[string]Rule

func PolicyKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

func (p Policy) RuleFor(method, path string) Rule {
	if rule, ok := p[PolicyKey(method, path)]; ok {
		return rule
	}
	return Public()
}
