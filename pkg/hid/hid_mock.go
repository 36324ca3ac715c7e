package hid

import "sync"

// MockDevice is an in-memory Device for tests. Reports are queued with
// Enqueue and handed out one per ReadReport call, mirroring a non-blocking
// transport with a drained interrupt queue.
type MockDevice struct {
	mu       sync.Mutex
	queue    [][]byte
	readErr  error
	features map[byte][]byte
	sent     [][]byte
	closed   bool
	reads    int
}

func NewMockDevice() *MockDevice {
	return &MockDevice{features: make(map[byte][]byte)}
}

// Enqueue appends one report to the read queue.
func (m *MockDevice) Enqueue(report []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := make([]byte, len(report))
	copy(rec, report)
	m.queue = append(m.queue, rec)
}

// FailRead makes every subsequent ReadReport return err once the queue is
// drained (or immediately if err should preempt queued reports, drain first).
func (m *MockDevice) FailRead(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// SetFeature seeds the response returned for a feature report command byte.
func (m *MockDevice) SetFeature(cmd byte, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.features[cmd] = payload
}

// Sent returns every buffer passed to SendFeatureReport.
func (m *MockDevice) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

// Reads reports how many times ReadReport was called.
func (m *MockDevice) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

func (m *MockDevice) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *MockDevice) ReadReport(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if len(m.queue) == 0 {
		if m.readErr != nil {
			return 0, m.readErr
		}
		return 0, nil
	}
	rec := m.queue[0]
	m.queue = m.queue[1:]
	return copy(p, rec), nil
}

func (m *MockDevice) GetFeatureReport(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(p) == 0 {
		return 0, nil
	}
	payload, ok := m.features[p[0]]
	if !ok {
		return 0, nil
	}
	return copy(p[1:], payload) + 1, nil
}

func (m *MockDevice) SendFeatureReport(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := make([]byte, len(p))
	copy(rec, p)
	m.sent = append(m.sent, rec)
	return len(p), nil
}

func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
