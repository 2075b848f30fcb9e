package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used by the tests. Documents pass
// through a bson round-trip on the way in and out, so encoding
// behaves the same as with the Mongo store.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (m *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	stored["_id"] = id

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return id.Hex(), nil
}

func (m *Memory) Find(ctx context.Context, collection string, filter Filter, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: dest must be a pointer to a slice, got %T", dest)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	slice := v.Elem()
	slice.Set(reflect.MakeSlice(slice.Type(), 0, 0))
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		elem := reflect.New(slice.Type().Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter Filter, dest any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			return decode(doc, dest)
		}
	}
	return ErrNotFound
}

func (m *Memory) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	return names, nil
}

func matches(doc bson.M, filter Filter) bool {
	for key, want := range filter {
		if !reflect.DeepEqual(doc[key], want) {
			return false
		}
	}
	return true
}

func decode(doc bson.M, dest any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, dest)
}
