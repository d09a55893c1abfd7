package component

// Collider is the size of a character's physics box.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()
