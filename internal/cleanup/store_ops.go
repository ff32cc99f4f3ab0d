package cleanup

import (
	"context"

	"github.com/BruksfildServices01/barber-cleanup/internal/store"
)

// Safe wrappers. Every store access the cleanup performs goes through
// one of these: a failing call is logged with its target and answered
// with a neutral result, so one bad leaf operation never aborts the
// larger run. Failures are not retried here; residue is picked up by a
// later run.

func (r *run) safeGetDoc(ctx context.Context, ref store.Ref) store.Doc {
	doc, err := r.store.GetDoc(ctx, ref)
	if err != nil {
		r.log.Warn("get document failed", "path", ref.Path(), "error", err)
		return store.Doc{Ref: ref}
	}
	return doc
}

func (r *run) safeUpdateDoc(ctx context.Context, ref store.Ref, updates []store.Update) {
	if err := r.store.UpdateDoc(ctx, ref, updates); err != nil {
		r.log.Warn("update document failed", "path", ref.Path(), "error", err)
	}
}

func (r *run) safeDeleteDoc(ctx context.Context, ref store.Ref) {
	if err := r.store.DeleteDoc(ctx, ref); err != nil {
		r.log.Warn("delete document failed", "path", ref.Path(), "error", err)
	}
}

func (r *run) safeGetPage(ctx context.Context, collection string, limit int) []store.Doc {
	docs, err := r.store.GetPage(ctx, collection, limit)
	if err != nil {
		r.log.Warn("collection page fetch failed", "collection", collection, "error", err)
		return nil
	}
	return docs
}

func (r *run) safeQueryEq(ctx context.Context, collection, field string, value any, limit int) []store.Doc {
	docs, err := r.store.QueryEq(ctx, collection, field, value, limit)
	if err != nil {
		r.log.Warn("query failed", "collection", collection, "field", field, "error", err)
		return nil
	}
	return docs
}

// deleteRefsInBatches deletes refs in grouped commits of at most
// maxBatchSize. A failed chunk aborts the rest of the call; whatever is
// left gets picked up by the next run. An empty list performs no store
// calls.
func (r *run) deleteRefsInBatches(ctx context.Context, refs []store.Ref) {
	for start := 0; start < len(refs); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(refs) {
			end = len(refs)
		}
		if err := r.store.DeleteBatch(ctx, refs[start:end]); err != nil {
			r.log.Warn("batch delete failed", "count", end-start, "error", err)
			return
		}
	}
}

// drainCollection empties a collection page by page. A short or empty
// page means the collection is exhausted; an exactly full page triggers
// a further fetch to confirm.
func (r *run) drainCollection(ctx context.Context, collection string) {
	for {
		docs := r.safeGetPage(ctx, collection, drainPageSize)
		if len(docs) == 0 {
			return
		}
		r.deleteRefsInBatches(ctx, refsOf(docs))
		if len(docs) < drainPageSize {
			return
		}
	}
}

// deleteWhereAny removes every document in collection referencing id
// under any of the given foreign-key fields. A document already removed
// by an earlier field's pass simply stops matching.
func (r *run) deleteWhereAny(ctx context.Context, collection string, fields []string, id string) {
	for _, field := range fields {
		docs := r.safeQueryEq(ctx, collection, field, id, scanPageSize)
		r.deleteRefsInBatches(ctx, refsOf(docs))
	}
}

func refsOf(docs []store.Doc) []store.Ref {
	refs := make([]store.Ref, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, doc.Ref)
	}
	return refs
}
