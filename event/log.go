package event

import (
	"sync"

	"github.com/frenofclaw/ledger/id"
)

// Log is an append-only ordered sequence of event records. It is safe for
// concurrent use. Records are never updated or removed once appended.
type Log struct {
	mu      sync.RWMutex
	records []Record
}

// NewLog creates an empty event log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a payload to the log, assigning it a fresh event ID and the
// next sequence number. Sequence numbers are dense and start at 1.
func (l *Log) Append(p Payload) Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := Record{
		ID:      id.NewEventID(),
		Seq:     uint64(len(l.records)) + 1,
		Payload: p,
	}
	l.records = append(l.records, rec)
	return rec
}

// All returns a copy of every record in append order.
func (l *Log) All() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// ByKind returns all records whose payload has the given kind, in append
// order.
func (l *Log) ByKind(k Kind) []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Record
	for _, rec := range l.records {
		if rec.Payload.Kind() == k {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of appended records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
