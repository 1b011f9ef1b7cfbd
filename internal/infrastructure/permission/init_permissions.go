package permission

import (
	"fmt"

	"github.com/conseccomms/conseccomms/internal/shared/authorization"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
)

// Resources and actions guarded by the casbin middleware.
const (
	ResourceUsers = "users"

	ActionList   = "list"
	ActionExport = "export"
)

// defaultPolicies grants the admin-only operations. Tenant-scoped app data
// is not listed here; ownership checks cover it.
var defaultPolicies = [][]string{
	{authorization.RoleAdmin.String(), ResourceUsers, ActionList},
	{authorization.RoleAdmin.String(), ResourceUsers, ActionExport},
}

// InitAllPermissions seeds the default policies. Existing rules are kept,
// so it is safe to run on every start.
func InitAllPermissions(e *Enforcer, log logger.Interface) error {
	for _, policy := range defaultPolicies {
		if err := e.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Infow("permissions initialized successfully", "policies", len(defaultPolicies))
	return nil
}
