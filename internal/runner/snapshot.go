package runner

import (
	"fmt"

	"github.com/vovakirdan/jumpy-jack/internal/core"
)

// Kind identifies what a drawable represents. Renderers choose the visual
// (sprite, filled shape, glyphs) per kind.
type Kind int

const (
	KindBackground Kind = iota
	KindGroundBase
	KindGround
	KindPlayer
	KindObstacle
)

// Drawable is one entity to draw, in world coordinates.
type Drawable struct {
	Kind  Kind
	Rect  core.Rect
	Frame int // Animation frame, player only
}

// TextKind identifies a HUD text.
type TextKind int

const (
	TextScore TextKind = iota
	TextBanner
	TextPrompt
)

// Text is a HUD string. Centered texts are centered horizontally on Pos.X.
type Text struct {
	Kind     TextKind
	Content  string
	Pos      core.Vec2
	Centered bool
}

// HUD strings
const (
	BannerText = "Game Ended"
	PromptText = "Press \"F\" to restart"
)

// Snapshot is an immutable view of one frame for renderers.
// Drawables are in paint order, back to front.
type Snapshot struct {
	World     core.Vec2 // Size of the play field
	Drawables []Drawable
	Texts     []Text
	Score     int
	Ended     bool
	Frame     uint64
}

// Snapshot captures the current frame. It shares no memory with the session.
func (s *Session) Snapshot() Snapshot {
	w, h := s.cfg.World.Width, s.cfg.World.Height
	groundH := s.cfg.Layers.Ground.Height

	drawables := make([]Drawable, 0, 6+len(s.obstacles))
	for _, r := range s.background.Tiles() {
		drawables = append(drawables, Drawable{Kind: KindBackground, Rect: r})
	}
	drawables = append(drawables, Drawable{Kind: KindGroundBase, Rect: core.NewRect(0, h-groundH, w, groundH)})
	for _, r := range s.ground.Tiles() {
		drawables = append(drawables, Drawable{Kind: KindGround, Rect: r})
	}
	drawables = append(drawables, Drawable{Kind: KindPlayer, Rect: s.player.Rect(), Frame: s.animFrame})
	for _, o := range s.obstacles {
		drawables = append(drawables, Drawable{Kind: KindObstacle, Rect: o.Rect()})
	}

	texts := []Text{{
		Kind:    TextScore,
		Content: fmt.Sprintf("Score: %d", s.score),
		Pos:     core.Vec2{X: w - 200, Y: 10},
	}}
	ended := s.state == StateEnded
	if ended {
		texts = append(texts,
			Text{Kind: TextBanner, Content: BannerText, Pos: core.Vec2{X: w / 2, Y: h/2 - groundH}, Centered: true},
			Text{Kind: TextPrompt, Content: PromptText, Pos: core.Vec2{X: w / 2, Y: h/2 - groundH + 80}, Centered: true},
		)
	}

	return Snapshot{
		World:     core.Vec2{X: w, Y: h},
		Drawables: drawables,
		Texts:     texts,
		Score:     s.score,
		Ended:     ended,
		Frame:     s.frame,
	}
}

// Of returns the drawables of the given kind, in paint order.
func (sn Snapshot) Of(k Kind) []Drawable {
	var out []Drawable
	for _, d := range sn.Drawables {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

// Text returns the first text of the given kind.
func (sn Snapshot) Text(k TextKind) (Text, bool) {
	for _, t := range sn.Texts {
		if t.Kind == k {
			return t, true
		}
	}
	return Text{}, false
}
