package character

// Vec3 is a world-space vector. Y points up and Z points into the screen.
type Vec3 struct {
	X, Y, Z float64
}

// Grounding is whether a character is standing on something.
type Grounding uint8

const (
	OnGround Grounding = iota
	Airborne
)

func (g Grounding) String() string {
	if g == Airborne {
		return "airborne"
	}
	return "on_ground"
}

// HealthPoints is a character's remaining health. Zero means knocked out.
type HealthPoints uint32

// SkillPoints is the resource spent by special moves.
type SkillPoints uint32
