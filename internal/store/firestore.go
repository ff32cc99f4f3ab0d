package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore implements Store on a Firestore database.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore initializes the Firestore client through the Firebase
// app. An empty credentialsFile falls back to application default
// credentials.
func NewFirestoreStore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) docRef(ref Ref) *firestore.DocumentRef {
	return s.client.Collection(ref.Collection).Doc(ref.ID)
}

func (s *FirestoreStore) GetDoc(ctx context.Context, ref Ref) (Doc, error) {
	snap, err := s.docRef(ref).Get(ctx)
	if status.Code(err) == codes.NotFound {
		// Missing documents are valid empty state, not errors.
		return Doc{Ref: ref}, nil
	}
	if err != nil {
		return Doc{Ref: ref}, err
	}
	return Doc{Ref: ref, Exists: snap.Exists(), Data: snap.Data()}, nil
}

func (s *FirestoreStore) UpdateDoc(ctx context.Context, ref Ref, updates []Update) error {
	fsUpdates := make([]firestore.Update, 0, len(updates))
	for _, u := range updates {
		fsUpdates = append(fsUpdates, firestore.Update{
			Path:  u.FieldPath,
			Value: translateSentinel(u.Value),
		})
	}
	_, err := s.docRef(ref).Update(ctx, fsUpdates)
	return err
}

func translateSentinel(v any) any {
	switch v {
	case DeleteField:
		return firestore.Delete
	case ServerTimestamp:
		return firestore.ServerTimestamp
	default:
		return v
	}
}

func (s *FirestoreStore) DeleteDoc(ctx context.Context, ref Ref) error {
	_, err := s.docRef(ref).Delete(ctx)
	return err
}

func (s *FirestoreStore) GetPage(ctx context.Context, collection string, limit int) ([]Doc, error) {
	iter := s.client.Collection(collection).Limit(limit).Documents(ctx)
	return collectDocs(collection, iter)
}

func (s *FirestoreStore) QueryEq(ctx context.Context, collection, field string, value any, limit int) ([]Doc, error) {
	iter := s.client.Collection(collection).Where(field, "==", value).Limit(limit).Documents(ctx)
	return collectDocs(collection, iter)
}

func collectDocs(collection string, iter *firestore.DocumentIterator) ([]Doc, error) {
	defer iter.Stop()

	var docs []Doc
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, Doc{
			Ref:    Ref{Collection: collection, ID: snap.Ref.ID},
			Exists: true,
			Data:   snap.Data(),
		})
	}
	return docs, nil
}

func (s *FirestoreStore) DeleteBatch(ctx context.Context, refs []Ref) error {
	batch := s.client.Batch()
	for _, ref := range refs {
		batch.Delete(s.docRef(ref))
	}
	_, err := batch.Commit(ctx)
	return err
}
