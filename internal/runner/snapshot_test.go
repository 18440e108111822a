package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/jumpy-jack/internal/core"
)

func TestSnapshotOrder(t *testing.T) {
	s := quietSession(t)
	s.obstacles = append(s.obstacles,
		Obstacle{Pos: core.Vec2{X: 700, Y: 150}, Size: core.Vec2{X: 30, Y: 50}, Speed: -10},
		Obstacle{Pos: core.Vec2{X: 800, Y: 200}, Size: core.Vec2{X: 60, Y: 70}, Speed: -10},
	)

	snap := s.Snapshot()
	want := []Kind{
		KindBackground, KindBackground,
		KindGroundBase,
		KindGround, KindGround,
		KindPlayer,
		KindObstacle, KindObstacle,
	}
	if len(snap.Drawables) != len(want) {
		t.Fatalf("got %d drawables, expected %d", len(snap.Drawables), len(want))
	}
	for i, k := range want {
		if snap.Drawables[i].Kind != k {
			t.Errorf("drawable %d kind = %d, expected %d", i, snap.Drawables[i].Kind, k)
		}
	}

	obs := snap.Of(KindObstacle)
	if obs[1].Rect != core.NewRect(800, 200, 60, 70) {
		t.Errorf("obstacle rect = %+v", obs[1].Rect)
	}
	base := snap.Of(KindGroundBase)[0].Rect
	if base != core.NewRect(0, 460, 960, 80) {
		t.Errorf("ground base = %+v", base)
	}
}

func TestSnapshotTexts(t *testing.T) {
	s := quietSession(t)
	for i := 0; i < 180; i++ {
		s.Step()
	}

	snap := s.Snapshot()
	score, ok := snap.Text(TextScore)
	if !ok || score.Content != "Score: 3" {
		t.Errorf("score text = %+v", score)
	}
	if snap.Ended {
		t.Error("running snapshot flagged as ended")
	}
	if _, ok := snap.Text(TextBanner); ok {
		t.Error("banner present while running")
	}

	endSession(t, s)
	snap = s.Snapshot()
	if !snap.Ended {
		t.Error("ended snapshot not flagged")
	}
	banner, ok := snap.Text(TextBanner)
	if !ok || banner.Content != BannerText || !banner.Centered {
		t.Errorf("banner = %+v", banner)
	}
	if prompt, ok := snap.Text(TextPrompt); !ok || prompt.Content != PromptText {
		t.Errorf("prompt = %+v", prompt)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := quietSession(t)
	s.obstacles = append(s.obstacles, Obstacle{Pos: core.Vec2{X: 700, Y: 150}, Size: core.Vec2{X: 30, Y: 50}, Speed: -10})

	snap := s.Snapshot()
	s.Step()

	if got := snap.Of(KindObstacle)[0].Rect.X; got != 700 {
		t.Errorf("snapshot changed after Step: obstacle x = %v", got)
	}
}

func TestRenderRunning(t *testing.T) {
	s := quietSession(t)
	s.obstacles = append(s.obstacles, Obstacle{Pos: core.Vec2{X: 700, Y: 150}, Size: core.Vec2{X: 30, Y: 50}, Speed: -10})
	for i := 0; i < 60; i++ {
		s.Step()
	}

	dst := core.NewScreen(96, 27)
	Render(dst, s.Snapshot())
	out := dst.String()

	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Error("obstacle not drawn")
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("ground not drawn")
	}
	if !strings.Contains(out, "Score: 1") {
		t.Error("score not drawn")
	}
	if strings.Contains(out, BannerText) {
		t.Error("banner drawn while running")
	}

	// Ground strip occupies the bottom rows: 80/540 of 27 rows
	if dst.Get(0, 26) != GroundBaseChar {
		t.Errorf("bottom-left cell = %q, expected ground base", dst.Get(0, 26))
	}
}

func TestRenderEnded(t *testing.T) {
	s := quietSession(t)
	endSession(t, s)

	dst := core.NewScreen(80, 24)
	Render(dst, s.Snapshot())
	out := dst.String()

	if !strings.Contains(out, BannerText) {
		t.Error("banner not drawn")
	}
	if !strings.Contains(out, PromptText) {
		t.Error("restart prompt not drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	s := quietSession(t)
	// Must not panic on degenerate sizes
	Render(core.NewScreen(0, 0), s.Snapshot())
	Render(core.NewScreen(3, 2), s.Snapshot())
}
