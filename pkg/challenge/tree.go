package challenge

import (
	"time"

	"github.com/google/uuid"
)

// TreeType is the rarity assigned when a tree is planted. It never changes
// afterwards, even if the streak that earned it is later broken.
type TreeType string

const (
	TreeNormal  TreeType = "normal"
	TreeGolden  TreeType = "golden"
	TreeCrystal TreeType = "crystal"
	TreeMythic  TreeType = "mythic"
)

// Tree is the permanent record of a completed day. At most one exists per
// day index.
type Tree struct {
	ID          string   `json:"id"`
	DayIndex    int      `json:"dayIndex"`
	Date        string   `json:"date"`
	GrowthStage int      `json:"growthStage"`
	Type        TreeType `json:"type"`
	CreatedAt   int64    `json:"createdAt"`
}

// TreeFor returns the tree planted for a day index, if any.
func (s *State) TreeFor(index int) (Tree, bool) {
	for _, t := range s.Forest {
		if t.DayIndex == index {
			return t, true
		}
	}
	return Tree{}, false
}

// PlantTree creates the tree for a day index. Planting is idempotent: a
// second call for the same index returns the existing tree and false. The
// type is fixed from the current streak at planting time.
func (s *State) PlantTree(index int, now time.Time) (Tree, bool) {
	if existing, ok := s.TreeFor(index); ok {
		return existing, false
	}

	streaks := s.Streaks(now)
	tree := Tree{
		ID:          uuid.NewString(),
		DayIndex:    index,
		Date:        now.Format(layoutISO),
		GrowthStage: MaxTreeStage,
		Type:        TreeTypeForStreak(streaks.Current),
		CreatedAt:   now.UnixMilli(),
	}
	if date, err := s.DayDate(index); err == nil {
		tree.Date = date.Format(layoutISO)
	}

	s.Forest = append(s.Forest, tree)
	s.Touch(now)
	return tree, true
}

// Backfill plants trees for completed days that lack one, returning how many
// were added. Historical streaks cannot be reconstructed without replaying
// the whole timeline, so backfilled trees are always normal.
func (s *State) Backfill(now time.Time) int {
	added := 0
	for i := 0; i < Days; i++ {
		if s.Days[i] < GoalSeconds {
			continue
		}
		if _, ok := s.TreeFor(i); ok {
			continue
		}
		tree := Tree{
			ID:          uuid.NewString(),
			DayIndex:    i,
			Date:        now.Format(layoutISO),
			GrowthStage: MaxTreeStage,
			Type:        TreeNormal,
			CreatedAt:   now.UnixMilli(),
		}
		if date, err := s.DayDate(i); err == nil {
			tree.Date = date.Format(layoutISO)
		}
		s.Forest = append(s.Forest, tree)
		added++
	}
	if added > 0 {
		s.Touch(now)
	}
	return added
}

// DeleteTree removes a tree by ID. Irreversible; callers must confirm.
func (s *State) DeleteTree(id string, now time.Time) bool {
	for i, t := range s.Forest {
		if t.ID == id {
			s.Forest = append(s.Forest[:i], s.Forest[i+1:]...)
			s.Touch(now)
			return true
		}
	}
	return false
}
