package service

import (
	"context"
	"reflect"
	"sync"
	"time"

	parkingerrors "parkwise/internal/parking/errors"
	"parkwise/internal/parking/repository"
	"parkwise/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory repository.Store with equality-only filters.
// It mirrors the partial unique index on active bookings per spot.
type memStore struct {
	mu           sync.Mutex
	docs         map[string][]bson.M
	insertErr    map[string]error
	releaseErr   error
	notConnected bool
}

func newMemStore() *memStore {
	return &memStore{
		docs:      make(map[string][]bson.M),
		insertErr: make(map[string]error),
	}
}

func toM(doc any) (bson.M, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func (s *memStore) find(collection string, filter bson.M) []bson.M {
	var found []bson.M
	for _, doc := range s.docs[collection] {
		if matches(doc, filter) {
			found = append(found, doc)
		}
	}
	return found
}

func (s *memStore) FindOne(_ context.Context, collection string, filter bson.M, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notConnected {
		return parkingerrors.ErrNotConnected
	}

	found := s.find(collection, filter)
	if len(found) == 0 {
		return parkingerrors.ErrNotFound
	}
	data, err := bson.Marshal(found[0])
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, out)
}

func (s *memStore) FindMany(_ context.Context, collection string, filter bson.M, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notConnected {
		return parkingerrors.ErrNotConnected
	}

	found := s.find(collection, filter)
	if found == nil {
		found = []bson.M{}
	}
	data, err := bson.Marshal(bson.M{"items": found})
	if err != nil {
		return err
	}
	return bson.Raw(data).Lookup("items").Unmarshal(out)
}

func (s *memStore) Count(_ context.Context, collection string, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notConnected {
		return 0, parkingerrors.ErrNotConnected
	}
	return int64(len(s.find(collection, filter))), nil
}

func (s *memStore) Insert(_ context.Context, collection string, doc any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notConnected {
		return "", parkingerrors.ErrNotConnected
	}
	if err := s.insertErr[collection]; err != nil {
		return "", &parkingerrors.StoreError{Op: "insert", Collection: collection, Err: err}
	}

	m, err := toM(doc)
	if err != nil {
		return "", err
	}
	if collection == repository.BookingCollection && m["status"] == model.BookingStatusActive {
		if len(s.find(collection, bson.M{"spot_id": m["spot_id"], "status": model.BookingStatusActive})) > 0 {
			return "", parkingerrors.ErrConflict
		}
	}

	oid := primitive.NewObjectID()
	m["_id"] = oid
	s.docs[collection] = append(s.docs[collection], m)
	return oid.Hex(), nil
}

func (s *memStore) UpdateFields(ctx context.Context, collection string, id string, fields bson.M) error {
	if collection == repository.SpotCollection && s.releaseErr != nil {
		return s.releaseErr
	}
	matched, err := s.UpdateFieldsWhere(ctx, collection, id, nil, fields)
	if err != nil {
		return err
	}
	if !matched {
		return parkingerrors.ErrNotFound
	}
	return nil
}

func (s *memStore) UpdateFieldsWhere(_ context.Context, collection string, id string, match bson.M, fields bson.M) (bool, error) {
	filter, err := repository.ByID(id)
	if err != nil {
		return false, err
	}
	for k, v := range match {
		filter[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notConnected {
		return false, parkingerrors.ErrNotConnected
	}

	found := s.find(collection, filter)
	if len(found) == 0 {
		return false, nil
	}
	for k, v := range fields {
		found[0][k] = v
	}
	return true, nil
}

func (s *memStore) CollectionNames(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notConnected {
		return nil, parkingerrors.ErrNotConnected
	}
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	return names, nil
}

func (s *memStore) Ping(context.Context) error {
	if s.notConnected {
		return parkingerrors.ErrNotConnected
	}
	return nil
}

type stubClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *stubClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type recordingPublisher struct {
	mu      sync.Mutex
	started []string
	ended   []*model.BookingBill
	err     error
}

func (p *recordingPublisher) BookingStarted(_ context.Context, booking *model.Booking) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = append(p.started, booking.ID)
	return p.err
}

func (p *recordingPublisher) BookingEnded(_ context.Context, _ *model.Booking, bill *model.BookingBill) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ended = append(p.ended, bill)
	return p.err
}
