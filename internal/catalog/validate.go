package catalog

import (
	"fmt"
	"strings"
)

// validateRoles performs structural checks on the given role set.
// Returns a combined error describing all problems found, or nil if valid.
func validateRoles(roles []Role) error {
	var errs []string

	idSet := make(map[string]bool, len(roles))
	for _, r := range roles {
		if r.ID == "" {
			errs = append(errs, "role with empty ID")
		}
		if idSet[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate role ID: %q", r.ID))
		}
		idSet[r.ID] = true

		if r.Label == "" {
			errs = append(errs, fmt.Sprintf("role %q has empty label", r.ID))
		}
		if r.Kind != KindRole && r.Kind != KindSkill {
			errs = append(errs, fmt.Sprintf("role %q has unknown kind %q", r.ID, r.Kind))
		}
		if len(r.Topics) == 0 {
			errs = append(errs, fmt.Sprintf("role %q has no topics", r.ID))
		}

		topicSet := make(map[string]bool, len(r.Topics))
		for _, t := range r.Topics {
			if t == "" {
				errs = append(errs, fmt.Sprintf("role %q has an empty topic", r.ID))
			}
			if topicSet[t] {
				errs = append(errs, fmt.Sprintf("role %q has duplicate topic %q", r.ID, t))
			}
			topicSet[t] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
