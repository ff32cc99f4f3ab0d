package cleanup

import (
	"context"

	"github.com/BruksfildServices01/barber-cleanup/internal/store"
)

// cleanupShopTree cascades deletion through everything owned by or
// referencing a single shop: barber memberships (detaching the user side
// first), the services/appointments/barbers sub-collections, every flat
// record carrying the shop's id, and the shop document itself. Each
// sub-step is isolated so one failure does not stop the rest.
func (r *run) cleanupShopTree(ctx context.Context, shopID string) {
	// Detach members before their membership docs go away, so a crash
	// between the two still leaves the user record reachable on retry.
	// Paged like a drain: a short page means the membership list is
	// exhausted.
	for {
		members := r.safeGetPage(ctx, subCollection(shopID, "barbers"), drainPageSize)
		if len(members) == 0 {
			break
		}
		for _, member := range members {
			r.detachBarber(ctx, member.Ref.ID)
			r.safeDeleteDoc(ctx, member.Ref)
		}
		if len(members) < drainPageSize {
			break
		}
	}

	r.drainCollection(ctx, subCollection(shopID, "services"))
	r.drainCollection(ctx, subCollection(shopID, "appointments"))
	// Drained again in case the member pass left stragglers.
	r.drainCollection(ctx, subCollection(shopID, "barbers"))

	for _, collection := range shopLinkedCollections {
		r.deleteWhereAny(ctx, collection, shopForeignKeys, shopID)
	}

	r.safeDeleteDoc(ctx, store.Ref{Collection: shopsCollection, ID: shopID})
	r.audit("shop_deleted", "shop", shopID)
}
