package backdrop

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
)

type MockPermission struct {
	mock.Mock
}

func (m *MockPermission) Request(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockPicker struct {
	mock.Mock
}

func (m *MockPicker) Launch(ctx context.Context, opts PickOptions) (PickResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(PickResult), args.Error(1)
}

type MockHaptics struct {
	mock.Mock
}

func (m *MockHaptics) Trigger() {
	m.Called()
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Alert(title, message string) {
	m.Called(title, message)
}

// stubChooser records the last dialog and lets the test pick an answer.
type stubChooser struct {
	title   string
	message string
	cancel  string
	options []string
	onPick  func(int)
}

func (c *stubChooser) Choose(title, message, cancel string, options []string, onPick func(int)) {
	c.title, c.message, c.cancel, c.options, c.onPick = title, message, cancel, options, onPick
}

type stubScreen struct {
	w, h float64
}

func (s stubScreen) Size() (float64, float64) {
	return s.w, s.h
}

// memStore is an in-memory Store that counts writes and can fail on demand.
type memStore struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	writes int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.data[key], nil
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}
