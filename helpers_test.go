package main

import "fmt"

// testLogger records diagnostic lines so tests can assert on the
// silent-discard side channel.
type testLogger struct {
	lines []string
}

func (l *testLogger) Printf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

// memStore is an in-memory SnapshotStore for exercising the
// synchronizer without a database.
type memStore struct {
	data     []byte
	writes   int
	erases   int
	readErr  error
	writeErr error
}

func (m *memStore) Read() ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.data == nil {
		return nil, ErrSnapshotMissing
	}
	return m.data, nil
}

func (m *memStore) Write(data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = append([]byte(nil), data...)
	m.writes++
	return nil
}

func (m *memStore) Erase() error {
	m.data = nil
	m.erases++
	return nil
}

func (m *memStore) Close() error { return nil }

func testSources() []Source {
	return []Source{{Src: "http://x/stream", Type: "audio/mpeg"}}
}

func testRegistry() Registry {
	reg, _ := Seed([]StationRecord{
		{
			ID:          "liquid_radio",
			Title:       "Liquid Radio",
			Description: "smooth grooves",
			Source:      []Source{{Src: "http://x/liquid", Type: "audio/mpeg"}},
		},
		{
			ID:     "drone_zone",
			Title:  "Drone Zone",
			Source: []Source{{Src: "http://x/drone", Type: "audio/mpeg"}},
		},
	}, &testLogger{})
	return reg
}
