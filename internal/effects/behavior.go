package effects

// behavior is the per-kind spawn and update rule. Every valid kind has one.
type behavior interface {
	build(inst *Instance) error
	update(inst *Instance)
}

var behaviors = [kindCount]behavior{
	KindWater:           noopBehavior{},
	KindRipple:          rippleBehavior{},
	KindWaterfallSplash: noopBehavior{},
	KindLavaBubble:      noopBehavior{},
}

func behaviorFor(k Kind) behavior {
	if !k.Valid() {
		return noopBehavior{}
	}
	return behaviors[k]
}

// noopBehavior spawns a bare node and leaves it untouched until expiry.
type noopBehavior struct{}

func (noopBehavior) build(*Instance) error { return nil }
func (noopBehavior) update(*Instance)      {}

// rippleBehavior grows and fades a flat billboard each tick. The rates are
// applied per tick, not per second.
type rippleBehavior struct{}

func (rippleBehavior) build(inst *Instance) error {
	t := inst.Template
	bb, err := inst.node.CreateBillboard(t.Asset, t.FaceCamera, t.Scale)
	if err != nil {
		return err
	}
	inst.billboard = bb
	return nil
}

func (rippleBehavior) update(inst *Instance) {
	bb := inst.billboard
	if bb == nil {
		return
	}
	bb.SetSize(bb.Size().Mul(inst.Template.ScaleRate))
	bb.SetAlpha(bb.Alpha() * inst.Template.AlphaRate)
}
