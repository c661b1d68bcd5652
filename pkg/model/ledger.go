package model

// Ledger tracks which (day, slot) units a resource has committed to.
// One instance tracks rooms, another tracks faculty. Entries grow lazily as
// resources are first touched and are never removed during a run.
type Ledger struct {
	days     int
	occupied map[string][]map[int]struct{}
}

// NewLedger creates an empty ledger spanning the given number of days.
func NewLedger(days int) *Ledger {
	return &Ledger{
		days:     days,
		occupied: make(map[string][]map[int]struct{}),
	}
}

func (l *Ledger) daySets(resource string) []map[int]struct{} {
	sets, ok := l.occupied[resource]
	if !ok {
		sets = make([]map[int]struct{}, l.days)
		for i := range sets {
			sets[i] = make(map[int]struct{})
		}
		l.occupied[resource] = sets
	}
	return sets
}

// IsFree reports whether every slot in [startSlot, startSlot+duration) is
// unclaimed by the resource on the given day.
func (l *Ledger) IsFree(resource string, day, startSlot, duration int) bool {
	if day < 0 || day >= l.days {
		return false
	}
	sets := l.daySets(resource)
	for i := 0; i < duration; i++ {
		if _, taken := sets[day][startSlot+i]; taken {
			return false
		}
	}
	return true
}

// Commit claims every slot in [startSlot, startSlot+duration) for the
// resource on the given day. Callers must have passed the full
// cross-resource check first; committed slots stay committed for the run.
func (l *Ledger) Commit(resource string, day, startSlot, duration int) {
	sets := l.daySets(resource)
	for i := 0; i < duration; i++ {
		sets[day][startSlot+i] = struct{}{}
	}
}

// OccupiedCount returns the number of slots the resource holds on a day.
func (l *Ledger) OccupiedCount(resource string, day int) int {
	sets, ok := l.occupied[resource]
	if !ok || day < 0 || day >= l.days {
		return 0
	}
	return len(sets[day])
}
