package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/pkg/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

const (
	LotCollection     = "parkinglot"
	SpotCollection    = "parkingspot"
	BookingCollection = "booking"
)

// Store is the document-store boundary. Ids are 24-hex ObjectID strings;
// conversion to the native id type happens here and nowhere else.
type Store interface {
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error
	FindMany(ctx context.Context, collection string, filter bson.M, out any) error
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	Insert(ctx context.Context, collection string, doc any) (string, error)
	UpdateFields(ctx context.Context, collection string, id string, fields bson.M) error
	// UpdateFieldsWhere applies fields only if the document with id also
	// matches match. It reports whether a document matched.
	UpdateFieldsWhere(ctx context.Context, collection string, id string, match bson.M, fields bson.M) (bool, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

type mongoStore struct {
	client       *mongo.Client
	db           *mongo.Database
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewMongoStore(cfg *config.Config) Store {
	return NewStore(cfg.Client.Mongo, cfg.MongoDatabaseName, cfg.ReadTimeout, cfg.WriteTimeout)
}

func NewStore(client *mongo.Client, databaseName string, readTimeout, writeTimeout time.Duration) Store {
	s := &mongoStore{
		client:       client,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
	if client != nil {
		s.db = client.Database(databaseName)
	}
	return s
}

// ObjectID parses a hex id, wrapping ErrInvalidID on failure.
func ObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", parkingerrors.ErrInvalidID, id)
	}
	return oid, nil
}

// ByID builds an _id filter from a hex id.
func ByID(id string) (bson.M, error) {
	oid, err := ObjectID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}

// withTimeout wraps the context with a timeout if not already in a transaction.
// A SessionContext is returned unchanged since wrapping it drops the session.
func (s *mongoStore) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}

	remaining := time.Until(deadline)
	if remaining < timeout {
		return context.WithTimeout(ctx, remaining)
	}

	return context.WithTimeout(ctx, timeout)
}

func (s *mongoStore) collection(name string) (*mongo.Collection, error) {
	if s.db == nil {
		return nil, parkingerrors.ErrNotConnected
	}
	return s.db.Collection(name), nil
}

func (s *mongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx, s.readTimeout)
	defer cancel()

	if err := coll.FindOne(ctx, filter).Decode(out); err != nil {
		return classify("find_one", collection, err)
	}
	return nil
}

func (s *mongoStore) FindMany(ctx context.Context, collection string, filter bson.M, out any) error {
	coll, err := s.collection(collection)
	if err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx, s.readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return classify("find_many", collection, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return classify("find_many", collection, err)
	}
	return nil
}

func (s *mongoStore) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx, s.readTimeout)
	defer cancel()

	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, classify("count", collection, err)
	}
	return n, nil
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	coll, err := s.collection(collection)
	if err != nil {
		return "", err
	}
	ctx, cancel := s.withTimeout(ctx, s.writeTimeout)
	defer cancel()

	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return "", classify("insert", collection, err)
	}

	switch id := result.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *mongoStore) UpdateFields(ctx context.Context, collection string, id string, fields bson.M) error {
	matched, err := s.UpdateFieldsWhere(ctx, collection, id, nil, fields)
	if err != nil {
		return err
	}
	if !matched {
		return parkingerrors.ErrNotFound
	}
	return nil
}

func (s *mongoStore) UpdateFieldsWhere(ctx context.Context, collection string, id string, match bson.M, fields bson.M) (bool, error) {
	filter, err := ByID(id)
	if err != nil {
		return false, err
	}
	for k, v := range match {
		filter[k] = v
	}

	coll, err := s.collection(collection)
	if err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx, s.writeTimeout)
	defer cancel()

	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return false, classify("update", collection, err)
	}
	return result.MatchedCount > 0, nil
}

func (s *mongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, parkingerrors.ErrNotConnected
	}
	ctx, cancel := s.withTimeout(ctx, s.readTimeout)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, classify("list_collections", s.db.Name(), err)
	}
	return names, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return parkingerrors.ErrNotConnected
	}
	ctx, cancel := s.withTimeout(ctx, s.readTimeout)
	defer cancel()

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return classify("ping", "", err)
	}
	return nil
}

// classify maps driver errors onto the store taxonomy.
func classify(op, collection string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return parkingerrors.ErrNotFound
	case isUnavailable(err):
		return fmt.Errorf("%w: %s %s: %w", parkingerrors.ErrNotConnected, op, collection, err)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s %s: %w", parkingerrors.ErrConflict, op, collection, err)
	default:
		return &parkingerrors.StoreError{Op: op, Collection: collection, Err: err}
	}
}

func isUnavailable(err error) bool {
	return errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.Is(err, topology.ErrServerSelectionTimeout) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err)
}
