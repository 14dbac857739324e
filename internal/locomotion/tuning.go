package locomotion

// Clips names the animation clips the controller selects between.
type Clips struct {
	Idle      string
	Run       string
	JumpStart string
	JumpLoop  string
	Fall      string
}

// Tuning holds the controller constants. Forces are impulses per tick.
type Tuning struct {
	MoveForce               float32
	InAirMoveForce          float32
	BrakeForce              float32
	JumpForce               float32
	InAirThreshold          float32 // seconds airborne still treated as grounded
	PlatformForceMultiplier float32
	StepDownHeight          float32
	RayDistance             float32
	RayMask                 uint32
	Clips                   Clips
}

// DefaultTuning returns the tuning used by the sample character.
func DefaultTuning() Tuning {
	return Tuning{
		MoveForce:               0.8,
		InAirMoveForce:          0.02,
		BrakeForce:              0.2,
		JumpForce:               7.0,
		InAirThreshold:          0.1,
		PlatformForceMultiplier: 0.25,
		StepDownHeight:          0.5,
		RayDistance:             50,
		RayMask:                 0xff,
		Clips: Clips{
			Idle:      "Models/Beta/Beta_Idle.ani",
			Run:       "Models/Beta/Beta_Run.ani",
			JumpStart: "Models/Beta/Beta_JumpStart.ani",
			JumpLoop:  "Models/Beta/Beta_JumpLoop1.ani",
			Fall:      "Models/Beta/Beta_JumpLoop1.ani",
		},
	}
}

const (
	animLayer     = 0
	fadeJumpStart = 0.2
	fadeJumpLoop  = 0.3
	fadeDefault   = 0.2
)
