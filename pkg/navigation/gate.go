// FILE: pkg/navigation/gate.go
package navigation

import "schoolhub-be/internal/entity"

// CanViewMenu decides whether a role may trigger menu resolution at all.
// Only the tenant staff allow-list passes; the platform super admin and
// end-customer roles are gated without touching the stores, which keeps
// the platform-admin and tenant-staff menu namespaces from ever merging.
// The check must happen before any store access; on a missing or unknown
// role it denies.
func CanViewMenu(role entity.UserRole) bool {
	return role.IsStaff()
}
