package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"arcadenexus/internal/catalog"
)

// DefaultProfileKey is the namespaced key the profile blob is stored under.
const DefaultProfileKey = "nexus_profile_v4"

// ProfileStore persists the Profile as a single JSON blob in the kv table.
type ProfileStore struct {
	kv  *KVRepo
	key string
	log *zap.Logger
}

func NewProfileStore(db *sql.DB, key string, log *zap.Logger) *ProfileStore {
	if key == "" {
		key = DefaultProfileKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileStore{kv: NewKVRepo(db), key: key, log: log}
}

func (s *ProfileStore) Key() string { return s.key }

// Load never fails: a missing, unreadable or malformed entry yields DefaultProfile,
// and a partial entry keeps defaults for whatever it lacks.
func (s *ProfileStore) Load(ctx context.Context) Profile {
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("profile read failed, using defaults", zap.String("key", s.key), zap.Error(err))
		return DefaultProfile()
	}
	if !ok {
		return DefaultProfile()
	}
	p, valid := DecodeProfile(data)
	if !valid {
		s.log.Warn("profile blob malformed, using defaults", zap.String("key", s.key), zap.Int("bytes", len(data)))
		return DefaultProfile()
	}
	if v := gjson.GetBytes(data, "schemaVersion").Int(); v > SchemaVersion {
		s.log.Warn("profile written by a newer schema", zap.Int64("schema_version", v), zap.Int("supported", SchemaVersion))
	}
	return p
}

// Save writes the full profile under the store key. RankIndex is recomputed from XP.
func (s *ProfileStore) Save(ctx context.Context, p Profile) error {
	data, err := EncodeProfile(p)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, s.key, data)
}

// Raw returns the stored blob as-is.
func (s *ProfileStore) Raw(ctx context.Context) ([]byte, bool, error) {
	return s.kv.Get(ctx, s.key)
}

// EncodeProfile serializes p deterministically and stamps the schema version.
func EncodeProfile(p Profile) ([]byte, error) {
	p.RankIndex = catalog.RankIndexForXP(p.XP)
	if p.Achievements == nil {
		p.Achievements = []catalog.AchievementID{}
	}
	if p.FavoriteGame == "" {
		p.FavoriteGame = catalog.GameNone
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	data, err = sjson.SetBytes(data, "schemaVersion", SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("stamp schema version: %w", err)
	}
	return data, nil
}

// DecodeProfile merges data over DefaultProfile field by field. Fields that are
// missing, mistyped or out of range keep their default; unknown fields are ignored.
// valid is false when data is not a JSON object at all.
func DecodeProfile(data []byte) (p Profile, valid bool) {
	p = DefaultProfile()
	if !gjson.ValidBytes(data) {
		return p, false
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return p, false
	}

	if v, ok := nonNegativeInt(root.Get("xp")); ok {
		p.XP = v
	}
	if v, ok := nonNegativeInt(root.Get("gamesPlayed")); ok {
		p.GamesPlayed = v
	}
	if v, ok := nonNegativeInt(root.Get("totalScore")); ok {
		p.TotalScore = v
	}
	if g, ok := favoriteGame(root.Get("favoriteGame")); ok {
		p.FavoriteGame = g
	}
	mergeGameTable(&p.Scores, root.Get("scores"))
	mergeGameTable(&p.PlayCounts, root.Get("playCounts"))

	if ach := root.Get("achievements"); ach.IsArray() {
		ach.ForEach(func(_, v gjson.Result) bool {
			if v.Type != gjson.String {
				return true
			}
			id := catalog.AchievementID(v.String())
			if _, known := catalog.AchievementByID(id); known && !p.HasAchievement(id) {
				p.Achievements = append(p.Achievements, id)
			}
			return true
		})
	}

	// Rank is derived, never trusted from storage.
	p.RankIndex = catalog.RankIndexForXP(p.XP)
	return p, true
}

func mergeGameTable(t *GameTable, obj gjson.Result) {
	if !obj.IsObject() {
		return
	}
	for _, g := range catalog.Games() {
		if v, ok := nonNegativeInt(obj.Get(string(g))); ok {
			t.Set(g, v)
		}
	}
}

// nonNegativeInt reads a stored count. Integer literals are taken exactly;
// other numbers are floored and saturate at math.MaxInt.
func nonNegativeInt(r gjson.Result) (int, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}
	if n, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
		if n < 0 || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	f := r.Float()
	if math.IsNaN(f) || f < 0 {
		return 0, false
	}
	if f >= math.MaxInt {
		return math.MaxInt, true
	}
	return int(math.Floor(f)), true
}

func favoriteGame(r gjson.Result) (catalog.GameID, bool) {
	if r.Type != gjson.String {
		return "", false
	}
	s := r.String()
	if strings.EqualFold(strings.TrimSpace(s), string(catalog.GameNone)) {
		return catalog.GameNone, true
	}
	// Older blobs stored the display form ("CYBER PONG").
	g, err := catalog.ParseGameID(s)
	if err != nil {
		return "", false
	}
	return g, true
}
