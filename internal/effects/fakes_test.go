package effects

import (
	"io/fs"

	"github.com/Faultbox/materialfx/internal/fault"
	"github.com/Faultbox/materialfx/pkg/math"
)

type fakeScene struct {
	assets map[string]bool
	nodes  []*fakeNode
}

func newFakeScene(assets ...string) *fakeScene {
	s := &fakeScene{assets: make(map[string]bool)}
	for _, a := range assets {
		s.assets[a] = true
	}
	return s
}

func (s *fakeScene) CreateNode(position, direction math.Vec3) Node {
	n := &fakeNode{scene: s, position: position, direction: direction}
	s.nodes = append(s.nodes, n)
	return n
}

func (s *fakeScene) live() int {
	count := 0
	for _, n := range s.nodes {
		if !n.removed {
			count++
		}
	}
	return count
}

type fakeNode struct {
	scene     *fakeScene
	position  math.Vec3
	direction math.Vec3
	billboard *fakeBillboard
	removed   bool
	removals  int
}

func (n *fakeNode) CreateBillboard(asset string, mode FaceCameraMode, size math.Vec2) (Billboard, error) {
	if !n.scene.assets[asset] {
		return nil, &fault.ResourceError{Asset: asset, Err: fs.ErrNotExist}
	}
	n.billboard = &fakeBillboard{size: size, alpha: 1, mode: mode}
	return n.billboard, nil
}

func (n *fakeNode) Remove() {
	n.removed = true
	n.removals++
}

type fakeBillboard struct {
	size    math.Vec2
	alpha   float32
	mode    FaceCameraMode
	updates int
}

func (b *fakeBillboard) Size() math.Vec2 { return b.size }

func (b *fakeBillboard) SetSize(size math.Vec2) {
	b.size = size
	b.updates++
}

func (b *fakeBillboard) Alpha() float32 { return b.alpha }

func (b *fakeBillboard) SetAlpha(alpha float32) { b.alpha = alpha }
