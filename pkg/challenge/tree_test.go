package challenge

import (
	"testing"
)

func TestPlantTreeIdempotent(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	now := day(t, "2026-08-03")
	s.Days[0] = GoalSeconds
	s.Days[1] = GoalSeconds
	s.Days[2] = GoalSeconds

	tree, planted := s.PlantTree(2, now)
	if !planted {
		t.Fatalf("expected first plant to succeed")
	}
	if tree.GrowthStage != MaxTreeStage {
		t.Fatalf("expected fully grown tree, got stage %d", tree.GrowthStage)
	}
	if tree.Type != TreeNormal {
		t.Fatalf("expected normal tree for streak 3, got %s", tree.Type)
	}
	if tree.Date != "2026-08-03" {
		t.Fatalf("expected tree dated to its day, got %s", tree.Date)
	}

	// Later streak changes must not alter the stored tree.
	for i := 0; i < 10; i++ {
		s.Days[i] = GoalSeconds
	}
	again, planted := s.PlantTree(2, day(t, "2026-08-10"))
	if planted {
		t.Fatalf("expected second plant to be a no-op")
	}
	if again.ID != tree.ID || again.Type != tree.Type {
		t.Fatalf("expected the original tree back, got %+v", again)
	}
	if len(s.Forest) != 1 {
		t.Fatalf("expected exactly one tree, got %d", len(s.Forest))
	}
}

func TestPlantTreeTypeFromStreak(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	for i := 0; i < 5; i++ {
		s.Days[i] = GoalSeconds
	}
	tree, planted := s.PlantTree(4, day(t, "2026-08-05"))
	if !planted {
		t.Fatalf("expected plant to succeed")
	}
	if tree.Type != TreeGolden {
		t.Fatalf("expected golden tree for streak 5, got %s", tree.Type)
	}
}

func TestBackfill(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	for i := 0; i < 12; i++ {
		s.Days[i] = GoalSeconds
	}
	s.Days[2] = 0

	added := s.Backfill(day(t, "2026-08-20"))
	if added != 11 {
		t.Fatalf("expected 11 trees backfilled, got %d", added)
	}
	for _, tree := range s.Forest {
		if tree.Type != TreeNormal {
			t.Fatalf("expected backfilled trees to be normal, got %s for day %d", tree.Type, tree.DayIndex)
		}
	}
	if _, ok := s.TreeFor(2); ok {
		t.Fatalf("unexpected tree for incomplete day")
	}
	if tree, ok := s.TreeFor(3); !ok || tree.Date != "2026-08-04" {
		t.Fatalf("expected tree dated 2026-08-04, got %+v (ok=%v)", tree, ok)
	}

	if again := s.Backfill(day(t, "2026-08-21")); again != 0 {
		t.Fatalf("expected second backfill to add nothing, got %d", again)
	}
}

func TestDeleteTree(t *testing.T) {
	s := New(day(t, "2026-08-01"))
	s.Days[0] = GoalSeconds
	tree, _ := s.PlantTree(0, day(t, "2026-08-01"))

	if s.DeleteTree("missing", day(t, "2026-08-02")) {
		t.Fatalf("expected delete of unknown id to fail")
	}
	if !s.DeleteTree(tree.ID, day(t, "2026-08-02")) {
		t.Fatalf("expected delete to succeed")
	}
	if len(s.Forest) != 0 {
		t.Fatalf("expected empty forest, got %d", len(s.Forest))
	}
}
