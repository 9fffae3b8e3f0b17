package portfolio

import (
	"context"
	"errors"
	"sync"

	"github.com/khoahotran/portfolio-view/internal/application/service"
)

var errStoreDown = errors.New("store down")

type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  map[string]error
	setErr  error
	getCall int
}

func newFakeStore(data map[string]string) *fakeStore {
	if data == nil {
		data = map[string]string{}
	}
	return &fakeStore{data: data, getErr: map[string]error{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCall++
	if err := s.getErr[key]; err != nil {
		return "", false, err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

type fakePublisher struct {
	views     []service.ViewEventPayload
	updates   []service.PortfolioEventPayload
	returnErr error
}

func (p *fakePublisher) PublishViewEvent(_ context.Context, payload service.ViewEventPayload) error {
	p.views = append(p.views, payload)
	return p.returnErr
}

func (p *fakePublisher) PublishPortfolioEvent(_ context.Context, payload service.PortfolioEventPayload) error {
	p.updates = append(p.updates, payload)
	return p.returnErr
}

type fakeCounter struct {
	n   int64
	err error
}

func (c *fakeCounter) Increment(context.Context) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.n++
	return c.n, nil
}

func (c *fakeCounter) Count(context.Context) (int64, error) {
	return c.n, c.err
}
