package mirrorsvc

import (
	"context"
	"fmt"
	"sync"

	"github.com/zyraworkhub/zyra/core"
)

// dummyMirror is the DEV/TEST stand-in: it only logs what it would have
// mirrored.
type dummyMirror struct {
	logger core.Logger
}

var _ core.Mirror = (*dummyMirror)(nil)

func NewDummyMirror(logger core.Logger) core.Mirror {
	return &dummyMirror{logger: logger}
}

func (m *dummyMirror) MirrorRecord(collection, id string, _ interface{}) {
	m.logger.Debug(fmt.Sprintf("dummy mirror: would mirror %s/%s", collection, id))
}

func (m *dummyMirror) Status(context.Context) core.MirrorStatus {
	return core.MirrorStatus{Collections: []string{}}
}

// MirroredRecord is one synchronously recorded MirrorRecord call.
type MirroredRecord struct {
	Collection string
	ID         string
	Record     interface{}
}

// RecorderMirror records calls synchronously for test assertions.
type RecorderMirror struct {
	mu       sync.Mutex
	Records  []MirroredRecord
	StatusFn func() core.MirrorStatus
}

var _ core.Mirror = (*RecorderMirror)(nil)

func NewRecorderMirror() *RecorderMirror {
	return &RecorderMirror{}
}

func (m *RecorderMirror) MirrorRecord(collection, id string, record interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = append(m.Records, MirroredRecord{Collection: collection, ID: id, Record: record})
}

func (m *RecorderMirror) Status(context.Context) core.MirrorStatus {
	if m.StatusFn != nil {
		return m.StatusFn()
	}
	return core.MirrorStatus{Collections: []string{}}
}

func (m *RecorderMirror) Mirrored() []MirroredRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MirroredRecord, len(m.Records))
	copy(out, m.Records)
	return out
}
