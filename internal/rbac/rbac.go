package rbac

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atlasdoors/backoffice/internal/config"
)

// RBACService answers permission checks with set-based lookups. The
// role table is configuration loaded at startup, never compiled in.
type RBACService struct {
	// Fast lookup for permission checks (hot path - O(1))
	permissions map[string]map[string]map[string]bool

	// Full role definitions with metadata (for API responses)
	roles map[string]*Role
}

// Role represents a role with metadata
type Role struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// NewRBACService loads roles.json from config and optimizes for fast lookups
func NewRBACService(cfg *config.Configuration) (*RBACService, error) {
	configPath := cfg.RBAC.RolesConfigPath
	if configPath == "" {
		configPath = "./config/rbac/roles.json"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles config: %w", err)
	}

	// Parse as: role_id -> role definition
	var rawConfig map[string]*Role
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse roles config: %w", err)
	}

	permissions := make(map[string]map[string]map[string]bool)

	for roleID, role := range rawConfig {
		role.ID = roleID
		permissions[roleID] = make(map[string]map[string]bool)

		for entity, actions := range role.Permissions {
			permissions[roleID][entity] = make(map[string]bool)
			for _, action := range actions {
				permissions[roleID][entity][action] = true
			}
		}
	}

	return &RBACService{
		permissions: permissions,
		roles:       rawConfig,
	}, nil
}

// HasPermission checks if any of the caller's roles grant
// entity/action. A caller without roles is denied.
func (s *RBACService) HasPermission(roles []string, entity string, action string) bool {
	for _, role := range roles {
		if s.permissions[role] != nil &&
			s.permissions[role][entity] != nil &&
			s.permissions[role][entity][action] {
			return true
		}
	}
	return false
}

// ValidateRole checks if role exists in definitions
func (s *RBACService) ValidateRole(roleName string) bool {
	_, exists := s.permissions[roleName]
	return exists
}

// ListRoles returns all roles with metadata
func (s *RBACService) ListRoles() []*Role {
	result := make([]*Role, 0, len(s.roles))
	for _, role := range s.roles {
		result = append(result, role)
	}
	return result
}
