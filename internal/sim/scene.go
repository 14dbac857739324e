package sim

import (
	"fmt"
	"io/fs"
	"path"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/materialfx/internal/effects"
	"github.com/Faultbox/materialfx/internal/fault"
	"github.com/Faultbox/materialfx/internal/logger"
	"github.com/Faultbox/materialfx/pkg/math"
)

// Material is a billboard material as described by a material file.
type Material struct {
	Texture   string     `yaml:"texture"`
	Technique string     `yaml:"technique"`
	Color     [4]float32 `yaml:"color"`
}

// Scene is an in-memory scene graph. Materials are loaded from assets on
// first use and every billboard gets its own copy.
type Scene struct {
	assets    fs.FS
	materials map[string]*Material
	nodes     map[uint64]*Node
	nextID    uint64
	log       *zap.Logger
}

// NewScene creates an empty scene resolving materials against assets.
func NewScene(assets fs.FS, log *zap.Logger) *Scene {
	return &Scene{
		assets:    assets,
		materials: make(map[string]*Material),
		nodes:     make(map[uint64]*Node),
		log:       logger.OrNop(log),
	}
}

// CreateNode adds a node to the scene.
func (s *Scene) CreateNode(position, direction math.Vec3) effects.Node {
	s.nextID++
	n := &Node{ID: s.nextID, Position: position, Direction: direction, scene: s}
	s.nodes[n.ID] = n
	return n
}

// Len returns the number of nodes in the scene.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Nodes returns the nodes in the scene in no particular order.
func (s *Scene) Nodes() []*Node {
	out := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n)
	}
	return out
}

func (s *Scene) material(asset string) (*Material, error) {
	if m, ok := s.materials[asset]; ok {
		return m, nil
	}
	if s.assets == nil {
		return nil, &fault.ResourceError{Asset: asset, Err: fs.ErrNotExist}
	}

	data, err := fs.ReadFile(s.assets, path.Clean(asset))
	if err != nil {
		return nil, &fault.ResourceError{Asset: asset, Err: err}
	}
	m := &Material{Color: [4]float32{1, 1, 1, 1}}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, &fault.ResourceError{Asset: asset, Err: fmt.Errorf("parsing material: %w", err)}
	}

	s.materials[asset] = m
	s.log.Debug("material loaded", zap.String("asset", asset), zap.String("texture", m.Texture))
	return m, nil
}

// Node is a scene node holding at most one billboard.
type Node struct {
	ID        uint64
	Position  math.Vec3
	Direction math.Vec3
	Billboard *Billboard

	scene *Scene
}

// CreateBillboard attaches a billboard using a copy of the asset's material.
func (n *Node) CreateBillboard(asset string, mode effects.FaceCameraMode, size math.Vec2) (effects.Billboard, error) {
	m, err := n.scene.material(asset)
	if err != nil {
		return nil, err
	}
	own := *m
	n.Billboard = &Billboard{Material: &own, FaceCamera: mode, size: size}
	return n.Billboard, nil
}

// Remove detaches the node from the scene.
func (n *Node) Remove() {
	if n.scene == nil {
		return
	}
	delete(n.scene.nodes, n.ID)
	n.scene = nil
	n.Billboard = nil
}

// Billboard is a camera-facing quad. Its alpha is the material colour's
// alpha channel.
type Billboard struct {
	Material   *Material
	FaceCamera effects.FaceCameraMode
	size       math.Vec2
}

// Size returns the billboard size.
func (b *Billboard) Size() math.Vec2 { return b.size }

// SetSize sets the billboard size.
func (b *Billboard) SetSize(size math.Vec2) { b.size = size }

// Alpha returns the material alpha.
func (b *Billboard) Alpha() float32 { return b.Material.Color[3] }

// SetAlpha sets the material alpha.
func (b *Billboard) SetAlpha(alpha float32) { b.Material.Color[3] = alpha }
