package marketdata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/avelezX/xerenity-fe-sub001/ratepath"
)

// ErrNotFound is returned when no curve or fixing exists for a request.
var ErrNotFound = errors.New("market data not found")

// Snapshot is a par curve as of a date.
type Snapshot struct {
	Name  string
	AsOf  time.Time
	Curve ratepath.Curve
}

// CurveSource returns the latest curve snapshot on or before asOf.
type CurveSource interface {
	Snapshot(ctx context.Context, name string, asOf time.Time) (Snapshot, error)
}

// StaticCurveSource is an in-memory CurveSource for development and tests.
type StaticCurveSource struct {
	snapshots map[string][]Snapshot
}

func NewStaticCurveSource(snaps ...Snapshot) *StaticCurveSource {
	s := &StaticCurveSource{snapshots: make(map[string][]Snapshot)}
	for _, snap := range snaps {
		s.snapshots[snap.Name] = append(s.snapshots[snap.Name], snap)
	}
	for name := range s.snapshots {
		list := s.snapshots[name]
		sort.Slice(list, func(i, j int) bool { return list[i].AsOf.Before(list[j].AsOf) })
	}
	return s
}

func (s *StaticCurveSource) Snapshot(_ context.Context, name string, asOf time.Time) (Snapshot, error) {
	list := s.snapshots[name]
	i := sort.Search(len(list), func(i int) bool { return list[i].AsOf.After(asOf) })
	if i == 0 {
		return Snapshot{}, fmt.Errorf("curve %q on or before %s: %w", name, asOf.Format("2006-01-02"), ErrNotFound)
	}
	snap := list[i-1]
	snap.Curve = snap.Curve.Clone()
	return snap, nil
}
