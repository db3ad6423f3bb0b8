package session

import (
	"context"
	"sync"
)

// fakeRepo is an in-memory metadata.Repository with injectable failures.
type fakeRepo struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	setErr  error
	delErr  error
	onGet   func()
	deleted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (f *fakeRepo) Get(_ context.Context, key string) ([]byte, error) {
	if f.onGet != nil {
		f.onGet()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.data, key)
	return nil
}

func (f *fakeRepo) GetOrCreate(ctx context.Context, key string, gen func() ([]byte, error)) ([]byte, error) {
	if v, err := f.Get(ctx, key); err != nil || v != nil {
		return v, err
	}
	v, err := gen()
	if err != nil {
		return nil, err
	}
	return v, f.Set(ctx, key, v)
}
