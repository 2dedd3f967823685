package domain

import (
	"slices"
	"sync"
)

// DetectConflicts groups allocated rows that carry an owner by address and
// reports every address claimed by more than one distinct owner. Owners are
// compared as literal strings, so "host-a" and "Host-A " are different
// owners. The result is ordered by ascending address and depends only on
// the snapshot.
func DetectConflicts(snap Snapshot) []ConflictRecord {
	out := make([]ConflictRecord, 0)
	rows := snap.Rows()
	for start := 0; start < len(rows); {
		end := start + 1
		for end < len(rows) && rows[end].Value == rows[start].Value {
			end++
		}
		if rec, ok := conflictFor(rows[start:end]); ok {
			out = append(out, rec)
		}
		start = end
	}
	return out
}

// conflictFor inspects the rows of one address, canonical record first.
func conflictFor(rows []Address) (ConflictRecord, bool) {
	var (
		count  int
		owners []string
		seen   = make(map[string]struct{})
	)
	for _, row := range rows {
		if row.Status != StatusAllocated || row.AssignedTo == "" {
			continue
		}
		count++
		if _, ok := seen[row.AssignedTo]; ok {
			continue
		}
		seen[row.AssignedTo] = struct{}{}
		owners = append(owners, row.AssignedTo)
	}
	if len(owners) < 2 {
		return ConflictRecord{}, false
	}

	severity := SeverityWarning
	if count > 2 {
		severity = SeverityCritical
	}
	return ConflictRecord{
		Address:         rows[0].Value,
		Subnet:          rows[0].Subnet,
		OccurrenceCount: count,
		Owners:          owners,
		Severity:        severity,
	}, true
}

// ConflictDetector runs DetectConflicts against a registry and reuses the
// last result while the registry version is unchanged.
type ConflictDetector struct {
	registry *AddressRegistry

	mu      sync.Mutex
	valid   bool
	version uint64
	records []ConflictRecord
}

func NewConflictDetector(registry *AddressRegistry) *ConflictDetector {
	return &ConflictDetector{registry: registry}
}

func (d *ConflictDetector) Detect() []ConflictRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	snap := d.registry.Snapshot()
	if !d.valid || d.version != snap.Version {
		d.records = DetectConflicts(snap)
		d.version = snap.Version
		d.valid = true
	}
	return cloneConflicts(d.records)
}

func cloneConflicts(in []ConflictRecord) []ConflictRecord {
	out := make([]ConflictRecord, len(in))
	for i, r := range in {
		r.Owners = slices.Clone(r.Owners)
		out[i] = r
	}
	return out
}
