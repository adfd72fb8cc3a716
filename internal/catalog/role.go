package catalog

import (
	"fmt"
	"slices"
)

// Kind distinguishes full career roles from standalone skill tracks.
// Both behave identically in the roadmap flow; the interview launcher
// groups them separately.
type Kind string

const (
	KindRole  Kind = "Role"
	KindSkill Kind = "Skill"
)

// Role is one entry in the career catalog: a role or skill track with an
// ordered curriculum. Topics order is significant (it drives milestone
// placement and the next-recommended pick) and must never be mutated.
type Role struct {
	ID     string
	Label  string
	Kind   Kind
	Topics []string
}

// TopicCount returns the number of curriculum topics.
func (r Role) TopicCount() int {
	return len(r.Topics)
}

// catalog holds the role set with precomputed indices.
type catalog struct {
	roles  []Role
	byID   map[string]*Role
	byKind map[Kind][]Role
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

func buildCatalog(roles []Role) *catalog {
	ct := &catalog{
		roles:  roles,
		byID:   make(map[string]*Role, len(roles)),
		byKind: make(map[Kind][]Role),
	}
	for i := range ct.roles {
		r := &ct.roles[i]
		ct.byID[r.ID] = r
		ct.byKind[r.Kind] = append(ct.byKind[r.Kind], *r)
	}
	return ct
}

// Get returns a role by ID, or an error if not found.
func Get(id string) (Role, error) {
	r, ok := c.byID[id]
	if !ok {
		return Role{}, fmt.Errorf("role not found: %q", id)
	}
	return *r, nil
}

// Exists reports whether a role with the given ID is in the catalog.
func Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every catalog entry in declaration order.
func All() []Role {
	return slices.Clone(c.roles)
}

// ByKind returns all entries of the given kind in declaration order.
func ByKind(k Kind) []Role {
	return slices.Clone(c.byKind[k])
}

// Related returns up to n other catalog entries suggested alongside the
// given role. Selection is positional (the first n entries that are not
// the role itself) so the panel is stable across runs.
func Related(id string, n int) []Role {
	if n <= 0 {
		return nil
	}
	var out []Role
	for _, r := range c.roles {
		if r.ID == id {
			continue
		}
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}

// Validate checks the catalog for structural issues.
func Validate() error {
	return validateRoles(c.roles)
}
