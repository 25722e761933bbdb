package storage

import (
	"bytes"
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"arcadenexus/internal/catalog"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestStore(t *testing.T) (*ProfileStore, *KVRepo) {
	t.Helper()
	db := openTestDB(t)
	return NewProfileStore(db, "", zaptest.NewLogger(t)), NewKVRepo(db)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	store, _ := newTestStore(t)

	p := store.Load(context.Background())
	if p.XP != 0 || p.GamesPlayed != 0 || p.TotalScore != 0 || p.RankIndex != 0 {
		t.Fatalf("expected zero profile, got %+v", p)
	}
	if p.FavoriteGame != catalog.GameNone {
		t.Fatalf("favoriteGame=%q, want none", p.FavoriteGame)
	}
	if p.Achievements == nil || len(p.Achievements) != 0 {
		t.Fatalf("achievements=%v, want empty non-nil", p.Achievements)
	}
}

func TestLoadMalformedReturnsDefaults(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	for _, blob := range []string{`{"xp": 12`, `[1,2,3]`, `"hello"`, ``} {
		if err := kv.Put(ctx, store.Key(), []byte(blob)); err != nil {
			t.Fatalf("put: %v", err)
		}
		p := store.Load(ctx)
		if p.XP != 0 || p.GamesPlayed != 0 {
			t.Fatalf("blob %q: expected defaults, got %+v", blob, p)
		}
	}
}

func TestLoadPartialMergesFieldByField(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	blob := `{
		"xp": 1600,
		"rankIndex": 7,
		"gamesPlayed": "lots",
		"favoriteGame": "NEON SNAKE",
		"scores": {"neon-snake": 40, "pac-man": 9000, "void-runner": -5},
		"achievements": ["first_blood", "bogus", "first_blood", 3, "high_roller"],
		"extra": {"nested": true}
	}`
	if err := kv.Put(ctx, store.Key(), []byte(blob)); err != nil {
		t.Fatalf("put: %v", err)
	}

	p := store.Load(ctx)
	if p.XP != 1600 {
		t.Fatalf("xp=%d, want 1600", p.XP)
	}
	if p.RankIndex != 2 {
		t.Fatalf("rankIndex=%d, want 2 (derived from xp, not stored 7)", p.RankIndex)
	}
	if p.GamesPlayed != 0 {
		t.Fatalf("gamesPlayed=%d, want default 0 for mistyped field", p.GamesPlayed)
	}
	if p.FavoriteGame != catalog.GameNeonSnake {
		t.Fatalf("favoriteGame=%q, want neon-snake", p.FavoriteGame)
	}
	if got := p.Scores.Get(catalog.GameNeonSnake); got != 40 {
		t.Fatalf("scores[neon-snake]=%d, want 40", got)
	}
	if got := p.Scores.Get(catalog.GameVoidRunner); got != 0 {
		t.Fatalf("scores[void-runner]=%d, want default 0 for negative value", got)
	}
	if got := p.PlayCounts.Get(catalog.GameNeonSnake); got != 0 {
		t.Fatalf("playCounts[neon-snake]=%d, want 0 (missing map)", got)
	}
	want := []catalog.AchievementID{catalog.AchievementFirstBlood, catalog.AchievementHighRoller}
	if len(p.Achievements) != len(want) {
		t.Fatalf("achievements=%v, want %v", p.Achievements, want)
	}
	for i := range want {
		if p.Achievements[i] != want[i] {
			t.Fatalf("achievements=%v, want %v", p.Achievements, want)
		}
	}
}

func TestSaveRecomputesRankAndStampsSchema(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := DefaultProfile()
	p.XP = 3000
	p.RankIndex = 0
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, ok, err := store.Raw(ctx)
	if err != nil || !ok {
		t.Fatalf("raw: ok=%v err=%v", ok, err)
	}
	if !bytes.Contains(raw, []byte(`"rankIndex":3`)) {
		t.Fatalf("expected rankIndex 3 in %s", raw)
	}
	if !bytes.Contains(raw, []byte(`"schemaVersion":1`)) {
		t.Fatalf("expected schemaVersion in %s", raw)
	}
	if !bytes.Contains(raw, []byte(`"scores":{"cyber-pong":0,"system-defense":0,"neon-snake":0,"cyber-breaker":0,"void-runner":0}`)) {
		t.Fatalf("expected scores in table order in %s", raw)
	}
}

func TestSaveLoadRoundTripIsByteStable(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := DefaultProfile()
	p.XP = 1234
	p.GamesPlayed = 7
	p.TotalScore = 4321
	p.FavoriteGame = catalog.GameVoidRunner
	p.Scores.Set(catalog.GameVoidRunner, 900)
	p.PlayCounts.Set(catalog.GameVoidRunner, 4)
	p.PlayCounts.Set(catalog.GameCyberPong, 3)
	p.Achievements = []catalog.AchievementID{catalog.AchievementFirstBlood}

	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, _, _ := store.Raw(ctx)

	if err := store.Save(ctx, store.Load(ctx)); err != nil {
		t.Fatalf("save loaded: %v", err)
	}
	second, _, _ := store.Raw(ctx)
	if !bytes.Equal(first, second) {
		t.Fatalf("round trip changed blob:\n%s\n%s", first, second)
	}
}

func TestSaveLoadKeepsCountersBeyondFloatPrecision(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	p := DefaultProfile()
	p.XP = 9050000000000001
	p.TotalScore = 1<<53 + 3
	p.Scores.Set(catalog.GameCyberPong, math.MaxInt)
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := store.Load(ctx)
	if got.XP != p.XP || got.TotalScore != p.TotalScore {
		t.Fatalf("xp=%d totalScore=%d, want %d %d", got.XP, got.TotalScore, p.XP, p.TotalScore)
	}
	if v := got.Scores.Get(catalog.GameCyberPong); v != math.MaxInt {
		t.Fatalf("scores[cyber-pong]=%d, want %d", v, math.MaxInt)
	}
	if got.RankIndex != len(catalog.Ranks())-1 {
		t.Fatalf("rankIndex=%d, want top rank", got.RankIndex)
	}
}

func TestLoadFloorsFractionalNumbers(t *testing.T) {
	store, kv := newTestStore(t)
	ctx := context.Background()

	blob := `{"xp":1012.5,"totalScore":2e3,"gamesPlayed":-1,"scores":{"neon-snake":77.9},"playCounts":{"neon-snake":1e40}}`
	if err := kv.Put(ctx, DefaultProfileKey, []byte(blob)); err != nil {
		t.Fatalf("put: %v", err)
	}

	p := store.Load(ctx)
	if p.XP != 1012 || p.TotalScore != 2000 {
		t.Fatalf("xp=%d totalScore=%d, want 1012 2000", p.XP, p.TotalScore)
	}
	if p.GamesPlayed != 0 {
		t.Fatalf("gamesPlayed=%d, want default 0", p.GamesPlayed)
	}
	if v := p.Scores.Get(catalog.GameNeonSnake); v != 77 {
		t.Fatalf("scores[neon-snake]=%d, want 77", v)
	}
	if v := p.PlayCounts.Get(catalog.GameNeonSnake); v != math.MaxInt {
		t.Fatalf("playCounts[neon-snake]=%d, want %d", v, math.MaxInt)
	}
}

func TestReportRepoListAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewReportRepo(db)
	ctx := context.Background()

	now := time.Now().UTC()
	for i, game := range []string{"cyber-pong", "neon-snake", "cyber-pong"} {
		rep := Report{GameID: game, RawScore: float64(i) + 0.5, Score: i, XPAwarded: i * 10, ReportedAt: now.Add(time.Duration(i) * time.Second)}
		if _, err := repo.Insert(ctx, rep); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent)=%d, want 2", len(recent))
	}
	if recent[0].Score != 2 || recent[1].Score != 1 {
		t.Fatalf("recent scores=%d,%d, want 2,1", recent[0].Score, recent[1].Score)
	}

	counts, err := repo.CountByGame(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if counts["cyber-pong"] != 2 || counts["neon-snake"] != 1 {
		t.Fatalf("counts=%v", counts)
	}
}
