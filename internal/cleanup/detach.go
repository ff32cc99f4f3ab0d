package cleanup

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-cleanup/internal/models"
	"github.com/BruksfildServices01/barber-cleanup/internal/store"
)

// detachBarber downgrades a user who was staff in a shop back to a plain
// customer: the branch link fields are removed, the barber role is taken
// out of whichever roles representation the document carries, and the
// active role is reset when it pointed at barber. The profile is only
// ever mutated, never deleted. A missing profile is a no-op.
func (r *run) detachBarber(ctx context.Context, uid string) {
	ref := store.Ref{Collection: usersCollection, ID: uid}
	doc := r.safeGetDoc(ctx, ref)
	if !doc.Exists {
		return
	}
	user := models.UserFromDoc(uid, true, doc.Data)

	updates := []store.Update{
		{FieldPath: "branchId", Value: store.DeleteField},
		{FieldPath: "shopId", Value: store.DeleteField},
		{FieldPath: "updatedAt", Value: store.ServerTimestamp},
	}
	updates = append(updates, roleUpdates(user.Roles)...)

	if strings.EqualFold(user.ActiveRole, models.RoleBarber) {
		updates = append(updates,
			store.Update{FieldPath: "activeRole", Value: models.RoleCustomer},
			store.Update{FieldPath: "role", Value: models.RoleCustomer},
		)
	}

	r.safeUpdateDoc(ctx, ref, updates)
	r.audit("barber_detached", "user", uid)
}

func roleUpdates(roles models.Roles) []store.Update {
	switch roles.Kind {
	case models.RolesList:
		kept := make([]string, 0, len(roles.List)+1)
		hasCustomer := false
		for _, role := range roles.List {
			if strings.EqualFold(role, models.RoleBarber) {
				continue
			}
			if role == models.RoleCustomer {
				hasCustomer = true
			}
			kept = append(kept, role)
		}
		if !hasCustomer {
			kept = append(kept, models.RoleCustomer)
		}
		return []store.Update{{FieldPath: "roles", Value: kept}}
	case models.RolesFlags:
		return []store.Update{
			{FieldPath: "roles.barber", Value: false},
			{FieldPath: "roles.customer", Value: true},
		}
	default:
		return []store.Update{{FieldPath: "roles", Value: []string{models.RoleCustomer}}}
	}
}
