// Package cleanup removes every trace of a deleted auth user from the
// document store: shops the user owned (with their full subtree), the
// user's own barber membership, flat records referencing the user by any
// foreign key, and finally the profile document itself.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-cleanup/internal/audit"
	"github.com/BruksfildServices01/barber-cleanup/internal/models"
	"github.com/BruksfildServices01/barber-cleanup/internal/store"
)

const (
	// Page size for sub-collection drains and membership scans.
	drainPageSize = 300
	// Page size for foreign-key equality scans.
	scanPageSize = 500
	// Maximum refs per grouped delete commit.
	maxBatchSize = 300
)

const (
	usersCollection = "users"
	shopsCollection = "shops"
)

// Flat collections referencing a user, scanned under every user-oriented
// foreign key. Declarative so new collections or keys are one line each.
var (
	userForeignKeys = []string{"userId", "customerId", "barberId", "ownerId", "claimedBy"}
	shopForeignKeys = []string{"shopId", "branchId"}

	userLinkedCollections = []string{
		"appointments",
		"commissions",
		"barber_services",
		"barber_schedules",
	}

	shopLinkedCollections = []string{
		"appointments",
		"services",
		"invites",
		"owner_invites",
		"barber_invites",
		"commissions",
		"barber_services",
		"barber_schedules",
	}
)

type Cleaner struct {
	store store.Store
	log   *slog.Logger
	trail *audit.Dispatcher
}

func New(st store.Store, log *slog.Logger, trail *audit.Dispatcher) *Cleaner {
	return &Cleaner{store: st, log: log, trail: trail}
}

// Run executes the full cleanup sequence for one deleted account id. It
// never returns an error: store failures are isolated at the operation
// level and anything unexpected is caught here, so the triggering event
// is always acked. Running twice for the same id is a no-op the second
// time.
func (c *Cleaner) Run(ctx context.Context, uid string) {
	if uid == "" {
		return
	}
	r := &run{
		store: c.store,
		trail: c.trail,
		log:   c.log.With("uid", uid, "run_id", uuid.NewString()),
		uid:   uid,
	}
	r.execute(ctx)
}

// run is the per-invocation state: one deleted account, one scoped logger.
type run struct {
	store store.Store
	trail *audit.Dispatcher
	log   *slog.Logger
	uid   string
}

func (r *run) execute(ctx context.Context) {
	r.log.Info("starting cleanup for deleted auth user")
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("cleanup failed for deleted auth user", "error", fmt.Sprint(rec))
		}
	}()

	userRef := store.Ref{Collection: usersCollection, ID: r.uid}
	doc := r.safeGetDoc(ctx, userRef)
	user := models.UserFromDoc(r.uid, doc.Exists, doc.Data)

	// Each pass deletes the shops it finds, so repeating the bounded
	// query walks the full set; a short page means no owners are left.
	for {
		shops := r.safeQueryEq(ctx, shopsCollection, "ownerId", r.uid, scanPageSize)
		for _, shop := range shops {
			r.cleanupShopTree(ctx, shop.Ref.ID)
		}
		if len(shops) < scanPageSize {
			break
		}
	}

	// Remove the user's own barber membership if a branch link exists.
	if shopID := user.MembershipShopID(); shopID != "" {
		r.safeDeleteDoc(ctx, barberRef(shopID, r.uid))
		r.audit("membership_removed", "barber", r.uid)
	}

	for _, collection := range userLinkedCollections {
		r.deleteWhereAny(ctx, collection, userForeignKeys, r.uid)
	}

	r.safeDeleteDoc(ctx, userRef)
	r.audit("profile_deleted", "user", r.uid)
	r.log.Info("cleanup completed for deleted auth user")
}

func (r *run) audit(action, entity, entityID string) {
	if r.trail == nil {
		return
	}
	r.trail.Dispatch(audit.Event{
		UID:      r.uid,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	})
}

func subCollection(shopID, name string) string {
	return shopsCollection + "/" + shopID + "/" + name
}

func barberRef(shopID, uid string) store.Ref {
	return store.Ref{Collection: subCollection(shopID, "barbers"), ID: uid}
}
