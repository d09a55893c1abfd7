package component

import "image/color"

// Appearance is how the demo renderer draws a character.
type Appearance struct {
	Label string
	Color color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
