package catalog

import (
	"strings"
	"testing"
)

func TestValidateRoles(t *testing.T) {
	tests := []struct {
		name    string
		roles   []Role
		wantErr string
	}{
		{
			name: "valid",
			roles: []Role{
				{ID: "a", Label: "A", Kind: KindRole, Topics: []string{"t1", "t2"}},
			},
		},
		{
			name: "duplicate id",
			roles: []Role{
				{ID: "a", Label: "A", Kind: KindRole, Topics: []string{"t"}},
				{ID: "a", Label: "A2", Kind: KindSkill, Topics: []string{"t"}},
			},
			wantErr: "duplicate role ID",
		},
		{
			name:    "empty label",
			roles:   []Role{{ID: "a", Kind: KindRole, Topics: []string{"t"}}},
			wantErr: "empty label",
		},
		{
			name:    "no topics",
			roles:   []Role{{ID: "a", Label: "A", Kind: KindRole}},
			wantErr: "no topics",
		},
		{
			name: "duplicate topic",
			roles: []Role{
				{ID: "a", Label: "A", Kind: KindRole, Topics: []string{"t", "t"}},
			},
			wantErr: "duplicate topic",
		},
		{
			name:    "unknown kind",
			roles:   []Role{{ID: "a", Label: "A", Kind: Kind("x"), Topics: []string{"t"}}},
			wantErr: "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoles(tt.roles)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}
