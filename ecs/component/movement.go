package component

// Movement holds the per-character speeds applied by sequence kinematics.
// Speeds are in units per tick.
type Movement struct {
	WalkSpeed     float64
	RunSpeed      float64
	DepthSpeed    float64
	JumpVelocity  float64
	DashVelocityX float64
	DashVelocityY float64
	DodgeSpeed    float64
}

var MovementComponent = NewComponent[Movement]()
