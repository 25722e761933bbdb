package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"arcadenexus/internal/catalog"
	"arcadenexus/internal/storage"
)

// ProfileStore loads and saves the single local profile.
type ProfileStore interface {
	Load(ctx context.Context) storage.Profile
	Save(ctx context.Context, p storage.Profile) error
}

// Journal records individual reports. Failures are logged and ignored.
type Journal interface {
	Insert(ctx context.Context, rep storage.Report) (int64, error)
}

// ReportResult is what ReportGame hands back to the caller.
type ReportResult struct {
	ReportOutcome
	Profile storage.Profile
	Saved   bool
}

// Service owns the in-memory profile for one session and is its only writer.
type Service struct {
	mu      sync.Mutex
	store   ProfileStore
	journal Journal
	display Display
	log     *zap.Logger
	now     func() time.Time

	profile storage.Profile
	loaded  bool
}

// NewService wires a session. journal may be nil; display and log default to no-ops.
func NewService(store ProfileStore, journal Journal, display Display, log *zap.Logger) *Service {
	if display == nil {
		display = NopDisplay{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:   store,
		journal: journal,
		display: display,
		log:     log,
		now:     time.Now,
	}
}

// SetDisplay swaps the rendering collaborator, e.g. when an interactive panel opens.
func (s *Service) SetDisplay(d Display) {
	if d == nil {
		d = NopDisplay{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display = d
}

// Load reads the profile at session start. Later calls are no-ops; use Reload to re-read.
func (s *Service) Load(ctx context.Context) storage.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)
	return s.profile.Clone()
}

// Reload replaces the in-memory profile with what the store holds now.
func (s *Service) Reload(ctx context.Context) storage.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = s.store.Load(ctx)
	s.loaded = true
	return s.profile.Clone()
}

func (s *Service) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.profile = s.store.Load(ctx)
	s.loaded = true
}

// Profile returns a copy of the current in-memory profile.
func (s *Service) Profile() storage.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

func (s *Service) View() ProfileView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewProfileView(s.profile)
}

// Render paints the current view on the display.
func (s *Service) Render() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.display.Render(NewProfileView(s.profile))
}

// ReportGame applies one completed game, persists the profile and notifies the display.
// A failed save returns the result together with a *PersistenceError; the in-memory
// update stands either way.
func (s *Service) ReportGame(ctx context.Context, gameID string, raw float64) (*ReportResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	game, err := catalog.ParseGameID(gameID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGameID, gameID)
	}

	next, out, err := ApplyReport(s.profile, game, raw)
	if err != nil {
		return nil, err
	}
	s.profile = next

	for _, a := range out.Unlocked {
		s.display.Notify("ACHIEVEMENT: " + a.Name)
	}

	res := &ReportResult{ReportOutcome: out, Profile: next.Clone()}
	var persistErr error
	if err := s.store.Save(ctx, next); err != nil {
		persistErr = &PersistenceError{Op: "save profile", Err: err}
		s.log.Error("profile save failed, keeping in-memory update",
			zap.String("game", string(game)),
			zap.Int("xp", next.XP),
			zap.Error(err))
		s.display.Notify(fmt.Sprintf("+%d XP NOT SAVED", out.XPGain))
	} else {
		res.Saved = true
		s.display.Notify(fmt.Sprintf("+%d XP SAVED", out.XPGain))
	}

	s.display.Render(NewProfileView(next))
	s.record(ctx, out)

	s.log.Debug("game reported",
		zap.String("game", string(game)),
		zap.Int("score", out.Score),
		zap.Int("xp_gain", out.XPGain),
		zap.Int("rank", out.RankAfter),
		zap.Int("unlocked", len(out.Unlocked)))
	return res, persistErr
}

func (s *Service) record(ctx context.Context, out ReportOutcome) {
	if s.journal == nil {
		return
	}
	rep := storage.Report{
		GameID:     string(out.Game),
		RawScore:   out.RawScore,
		Score:      out.Score,
		XPAwarded:  out.XPGain,
		ReportedAt: s.now().UTC(),
	}
	if _, err := s.journal.Insert(ctx, rep); err != nil {
		s.log.Warn("report journal write failed", zap.String("game", rep.GameID), zap.Error(err))
	}
}
