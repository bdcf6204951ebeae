package velocity

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-velocity/internal/core"
)

// memStore is an in-memory HighScoreStore.
type memStore struct {
	values  map[string]int
	saves   int
	readErr error
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]int)}
}

func (m *memStore) HighScore(slot string) (int, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.values[slot], nil
}

func (m *memStore) SaveHighScore(slot string, v int) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.values[slot] = v
	return nil
}

const slot = "neon-velocity:highScore"

func TestNewGameIsIdle(t *testing.T) {
	g := newTestGame()
	st := g.State()

	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %s, expected idle", g.Phase())
	}
	if st.Player == nil {
		t.Fatal("player should exist after reset")
	}
	if st.Level != 1 || st.Score != 0 || st.Time != 0 || st.Speed != 0 {
		t.Errorf("unexpected fresh state: %+v", st)
	}
	if st.Player.X != 480*0.5-18 || st.Player.Y != 800*g.Config().Player.SpawnY {
		t.Errorf("player spawned at (%f, %f)", st.Player.X, st.Player.Y)
	}
}

func TestLifecycleTransitions(t *testing.T) {
	g := newTestGame(WithSource(noSpawns()))

	g.Step(core.Input{Start: true}, 0.016)
	if g.Phase() != PhaseRunning {
		t.Fatalf("start from idle: phase = %s", g.Phase())
	}
	if g.Start() {
		t.Error("start should be ignored while running")
	}

	st := g.State()
	p := st.Player
	st.Obstacles = []Obstacle{{X: p.X, Y: p.Y, W: p.W, H: p.H}}
	g.Step(core.Input{}, 0.016)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("collision: phase = %s", g.Phase())
	}

	g.Step(core.Input{Start: true}, 0.016)
	if g.Phase() != PhaseRunning {
		t.Fatalf("retry: phase = %s", g.Phase())
	}
	if len(g.State().Obstacles) != 0 || g.State().Score != 0 {
		t.Error("retry should start from a fresh state")
	}
}

func TestResetIdempotent(t *testing.T) {
	store := newMemStore()
	store.values[slot] = 1234
	g := newTestGame(WithStore(store))
	g.Start()
	for range 300 {
		g.Step(core.Input{SteerLeft: true}, 0.016)
	}

	g.Reset()
	once := g.State().Clone()
	g.Reset()
	twice := g.State()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second reset changed state:\n%+v\n%+v", once, twice)
	}
	if twice.HighScore < 1234 {
		t.Errorf("high score should be reloaded from the store, got %d", twice.HighScore)
	}
}

func TestHighScoreLoadedOnReset(t *testing.T) {
	store := newMemStore()
	store.values[slot] = 900
	g := newTestGame(WithStore(store))

	if got := g.State().HighScore; got != 900 {
		t.Errorf("high score = %d, expected 900", got)
	}
}

func TestStoreReadFailureMeansZero(t *testing.T) {
	store := newMemStore()
	store.readErr = errors.New("disk on fire")
	g := newTestGame(WithStore(store), WithSource(noSpawns()))

	if got := g.State().HighScore; got != 0 {
		t.Errorf("high score = %d, expected 0", got)
	}
	g.Start()
	g.Step(core.Input{}, 0.016)
	if g.Phase() != PhaseRunning {
		t.Error("a broken store must not stop the game")
	}
}

func TestStoreWriteFailureIgnored(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("read-only")
	g := newTestGame(WithStore(store), WithSource(noSpawns()))
	g.Start()
	g.State().Score = 500

	g.Step(core.Input{}, 0.016)
	g.Flush()

	if store.saves != 1 {
		t.Errorf("saves = %d, expected 1 attempt", store.saves)
	}
	if g.State().HighScore < 500 {
		t.Error("in-memory best should survive a failed write")
	}
}

func TestHighScoreFlushThrottled(t *testing.T) {
	store := newMemStore()
	g := newTestGame(WithStore(store), WithSource(noSpawns()))
	g.Start()

	g.Step(core.Input{}, 0.016)
	if store.saves != 0 {
		t.Fatalf("first raise should not write immediately, saves = %d", store.saves)
	}

	for range 70 {
		g.Step(core.Input{}, 0.016)
	}
	if store.saves == 0 {
		t.Fatal("best should be written within the flush interval")
	}
	if store.saves > 2 {
		t.Errorf("too many writes for ~1.1s of play: %d", store.saves)
	}

	g.Flush()
	if store.values[slot] != g.State().HighScore {
		t.Errorf("stored %d, expected %d", store.values[slot], g.State().HighScore)
	}
}

func TestHighScoreWrittenOnGameOver(t *testing.T) {
	store := newMemStore()
	g := newTestGame(WithStore(store), WithSource(noSpawns()))
	g.Start()
	for range 10 {
		g.Step(core.Input{}, 0.016)
	}
	st := g.State()
	p := st.Player
	st.Obstacles = []Obstacle{{X: p.X, Y: p.Y, W: p.W, H: p.H}}

	g.Step(core.Input{}, 0.016)

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, expected gameover", g.Phase())
	}
	if store.values[slot] != st.HighScore || st.HighScore == 0 {
		t.Errorf("stored %d, best %d", store.values[slot], st.HighScore)
	}
}

func TestPauseFreezesRun(t *testing.T) {
	g := newTestGame(WithSource(noSpawns()))
	g.Start()
	g.Step(core.Input{}, 0.016)

	g.Step(core.Input{Pause: true}, 0.016)
	if !g.Paused() {
		t.Fatal("pause should toggle on")
	}
	t0 := g.State().Time
	g.Step(core.Input{}, 0.016)
	if g.State().Time != t0 {
		t.Error("time advanced while paused")
	}
	if !g.HUD().Paused {
		t.Error("HUD should report pause")
	}

	g.Step(core.Input{Pause: true}, 0.016)
	if g.Paused() || g.State().Time == t0 {
		t.Error("unpause should resume the run in the same step")
	}
}

func TestHUD(t *testing.T) {
	g := newTestGame(WithSource(noSpawns()))
	g.Start()
	st := g.State()
	st.Speed = 379.6
	st.Score = 42

	hud := g.HUD()
	if hud.Speed != 380 || hud.Score != 42 || hud.Level != 1 {
		t.Errorf("unexpected HUD: %+v", hud)
	}
	if hud.Powerup != NoPowerupLabel {
		t.Errorf("power-up label = %q, expected none", hud.Powerup)
	}

	st.Player.GhostUntil = 5
	if got := g.HUD().Powerup; got != "Ghost" {
		t.Errorf("label = %q, expected Ghost", got)
	}
	st.Player.TurboUntil = 5
	if got := g.HUD().Powerup; got != "Turbo" {
		t.Errorf("turbo should win over ghost, got %q", got)
	}

	fields := g.HUD().Fields()
	if len(fields) != 6 || fields[0][0] != "Score" || fields[5][1] != "Turbo" {
		t.Errorf("unexpected fields: %v", fields)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func(render bool) Snapshot {
		g := newTestGame(WithSeed(12345))
		g.Start()
		canvas := &core.RecordingCanvas{}
		for i := range 1500 {
			in := core.Input{SteerLeft: i%90 < 30, SteerRight: i%90 > 60, UsePower: i%200 == 0}
			g.Step(in, 1.0/60)
			if render {
				g.Render(canvas)
			}
			if g.Phase() != PhaseRunning {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(false), run(true)
	if a.Hash() != b.Hash() {
		t.Errorf("runs diverged: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Time != b.Time || a.PlayerX != b.PlayerX {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}
}

func TestViewportQueriedEachStep(t *testing.T) {
	w, h := 480.0, 800.0
	g := newTestGame(WithSource(noSpawns()), WithViewport(core.ViewportFunc(func() (float64, float64) {
		return w, h
	})))
	g.Start()

	w = 200
	g.Step(core.Input{SteerRight: true}, 0.016)
	st := g.State()
	if st.ViewW != 200 {
		t.Errorf("view width = %f, expected 200", st.ViewW)
	}
	if limit := 200 - 18 - 36.0; st.Player.X > limit {
		t.Errorf("player x %f should clamp to the narrower track (%f)", st.Player.X, limit)
	}
}

func TestStartLogsSeed(t *testing.T) {
	var buf bytes.Buffer
	g := newTestGame(WithSeed(4242), WithLogger(log.New(&buf)))
	if g.Seed() != 4242 {
		t.Errorf("Seed() = %d, expected 4242", g.Seed())
	}

	if !g.Start() {
		t.Fatal("Start should begin a run from idle")
	}
	out := buf.String()
	if !strings.Contains(out, "run started") || !strings.Contains(out, "seed=4242") {
		t.Errorf("run start log = %q, expected the seed", out)
	}
}
