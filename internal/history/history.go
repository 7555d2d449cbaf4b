package history

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the timeline when no explicit capacity is given.
const DefaultCapacity = 100

// Record is one entry on the timeline. Records are immutable after creation
// except for Result and UndoData, which the dispatcher attaches once the
// remote call has completed.
type Record struct {
	ID             string
	Timestamp      time.Time
	ToolName       string
	Args           map[string]any
	Description    string
	Result         map[string]any
	UndoData       UndoData
	RedoData       any
	CheckpointName string
}

// Options carries the optional fields of a Record call.
type Options struct {
	Description    string
	Result         map[string]any
	UndoData       UndoData
	RedoData       any
	CheckpointName string
}

// Status is a read-only snapshot of the manager for diagnostics.
type Status struct {
	TotalOperations int
	CurrentIndex    int
	CanUndo         bool
	CanRedo         bool
	Checkpoints     []string
}

// Manager owns the operation timeline for one editing session: an ordered
// sequence of records, a cursor separating done from undone entries, and a
// checkpoint index. One instance per session; all methods are safe for
// concurrent use behind a single mutex.
type Manager struct {
	mu          sync.Mutex
	entries     []Record
	current     int // index of the newest done entry, -1 when all undone
	capacity    int
	checkpoints map[string]int
}

// New creates an empty manager. A capacity below one falls back to
// DefaultCapacity.
func New(capacity int) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Manager{
		current:     -1,
		capacity:    capacity,
		checkpoints: make(map[string]int),
	}
}

// Record appends an operation at the cursor and returns its id. Any undone
// entries past the cursor are discarded first: a new edit after an undo
// permanently erases the redo branch. When the timeline would exceed
// capacity, the oldest entries are evicted and checkpoints are rebased or
// dropped to keep them pointing at retained records.
func (m *Manager) Record(toolName string, args map[string]any, opts Options) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current < len(m.entries)-1 {
		m.entries = m.entries[:m.current+1]
		for name, idx := range m.checkpoints {
			if idx > m.current {
				delete(m.checkpoints, name)
			}
		}
	}

	description := opts.Description
	if description == "" {
		description = toolName + " operation"
	}

	record := Record{
		ID:             uuid.NewString(),
		Timestamp:      time.Now(),
		ToolName:       toolName,
		Args:           cloneArgs(args),
		Description:    description,
		Result:         cloneArgs(opts.Result),
		UndoData:       opts.UndoData,
		RedoData:       opts.RedoData,
		CheckpointName: opts.CheckpointName,
	}
	m.entries = append(m.entries, record)
	m.current = len(m.entries) - 1

	if evicted := len(m.entries) - m.capacity; evicted > 0 {
		// Advance the slice window instead of copying the survivors; the
		// zeroed slots release their payloads and append reclaims the
		// backing array on the next growth.
		for i := 0; i < evicted; i++ {
			m.entries[i] = Record{}
		}
		m.entries = m.entries[evicted:]
		m.current -= evicted
		for name, idx := range m.checkpoints {
			if idx < evicted {
				delete(m.checkpoints, name)
				continue
			}
			m.checkpoints[name] = idx - evicted
		}
	}

	return record.ID
}

// Undoable returns the record at the cursor, the next candidate for undo.
func (m *Manager) Undoable() (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current < 0 {
		return Record{}, false
	}
	return cloneRecord(m.entries[m.current]), true
}

// Redoable returns the record just past the cursor, the next candidate for
// redo.
func (m *Manager) Redoable() (Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current+1 >= len(m.entries) {
		return Record{}, false
	}
	return cloneRecord(m.entries[m.current+1]), true
}

// MarkUndone moves the cursor back one entry after the caller has reversed
// the operation there. It reports false, with no state change, when nothing
// is left to undo. The record stays on the timeline and becomes redoable.
func (m *Manager) MarkUndone() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current < 0 {
		return false
	}
	m.current--
	return true
}

// MarkRedone moves the cursor forward one entry after the caller has
// replayed the operation there. It reports false when nothing is redoable.
func (m *Manager) MarkRedone() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current >= len(m.entries)-1 {
		return false
	}
	m.current++
	return true
}

// UndoHistory lists up to count done records, most recent first.
func (m *Manager) UndoHistory(count int) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	var records []Record
	for i := m.current; i >= 0 && len(records) < count; i-- {
		records = append(records, cloneRecord(m.entries[i]))
	}
	return records
}

// RedoHistory lists up to count undone records in replay order.
func (m *Manager) RedoHistory(count int) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	var records []Record
	for i := m.current + 1; i < len(m.entries) && len(records) < count; i++ {
		records = append(records, cloneRecord(m.entries[i]))
	}
	return records
}

// CreateCheckpoint bookmarks the current cursor position under name,
// overwriting any prior checkpoint with the same name.
func (m *Manager) CreateCheckpoint(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkpoints[name] = m.current
}

// CheckpointIndex resolves a checkpoint name to its timeline index.
func (m *Manager) CheckpointIndex(name string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx, ok := m.checkpoints[name]
	return idx, ok
}

// SetUndoData attaches reversal data to the record with the given id. It
// reports false when no such record exists, e.g. because it was evicted
// while the remote call was in flight.
func (m *Manager) SetUndoData(id string, data UndoData) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries[i].UndoData = data
			return true
		}
	}
	return false
}

// SetResult attaches the remote call's response to the record with the
// given id, reporting false when the record is gone.
func (m *Manager) SetResult(id string, result map[string]any) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries[i].Result = cloneArgs(result)
			return true
		}
	}
	return false
}

// Clear empties the timeline and drops every checkpoint.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	m.current = -1
	m.checkpoints = make(map[string]int)
}

// Status reports the manager state without mutating it.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.checkpoints))
	for name := range m.checkpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return Status{
		TotalOperations: len(m.entries),
		CurrentIndex:    m.current,
		CanUndo:         m.current >= 0,
		CanRedo:         m.current+1 < len(m.entries),
		Checkpoints:     names,
	}
}

// cloneRecord copies a record with its own Args and Result maps so callers
// cannot reach stored state through an accessor's return value.
func cloneRecord(r Record) Record {
	r.Args = cloneArgs(r.Args)
	r.Result = cloneArgs(r.Result)
	return r
}

// cloneArgs deep-copies an argument map through JSON so records never alias
// caller-mutable state. Values that fail to round-trip are kept as-is; tool
// arguments are JSON-decoded maps in practice.
func cloneArgs(args map[string]any) map[string]any {
	if args == nil {
		return nil
	}
	raw, err := json.Marshal(args)
	if err != nil {
		cloned := make(map[string]any, len(args))
		for k, v := range args {
			cloned[k] = v
		}
		return cloned
	}
	var cloned map[string]any
	if err := json.Unmarshal(raw, &cloned); err != nil {
		return args
	}
	return cloned
}
