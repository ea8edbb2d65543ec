package internal

import (
	"fmt"
	"strings"

	"github.com/atlasdoors/backoffice/internal/auth"
	"github.com/atlasdoors/backoffice/internal/rbac"
	"github.com/atlasdoors/backoffice/internal/types"
)

// GenerateStaffToken issues a signed JWT for a staff member so the
// dashboard can be exercised without a login flow.
func GenerateStaffToken(userID string, roles string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	if userID == "" {
		userID = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER)
	}

	roleList := []string{}
	for _, r := range strings.Split(roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			roleList = append(roleList, r)
		}
	}

	rbacService, err := rbac.NewRBACService(cfg)
	if err != nil {
		return err
	}
	for _, r := range roleList {
		if !rbacService.ValidateRole(r) {
			return fmt.Errorf("unknown role %q", r)
		}
	}

	provider := auth.NewProvider(cfg)
	token, err := provider.GenerateToken(userID, types.DefaultTenantID, roleList)
	if err != nil {
		return err
	}

	log.Infow("generated staff token", "user_id", userID, "roles", roleList)
	fmt.Println(token)
	return nil
}
