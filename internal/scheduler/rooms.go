package scheduler

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/mod756/timetableautomation/pkg/model"
)

// roomSelector finds a free, suitably sized, suitably typed room for one
// session span. Candidates are tried in random order so sessions sharing a
// capacity bracket don't all pile onto the same room.
type roomSelector struct {
	cfg    *Configuration
	rooms  []*model.Room
	ledger *model.Ledger
	rng    *rand.Rand
}

// pick returns a conflict-free room or nil. A nil result is a normal search
// outcome under contention, not an error. Excluded ids keep a lab's second
// batch out of the first batch's room.
func (s *roomSelector) pick(capacity int, lab bool, day, startSlot, duration int, exclude ...string) *model.Room {
	candidates := lo.Filter(s.rooms, func(r *model.Room, _ int) bool {
		if lo.Contains(exclude, r.ID) || r.IsLab() != lab {
			return false
		}
		if capacity >= s.cfg.LargeCourseCutoff {
			return r.Capacity >= s.cfg.LargeRoomCapacity
		}
		return r.Capacity >= capacity
	})
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, r := range candidates {
		if s.ledger.IsFree(r.ID, day, startSlot, duration) {
			return r
		}
	}
	return nil
}
