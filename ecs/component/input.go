package component

import "github.com/milk9111/brawler/character"

// Input stores this tick's and last tick's controller state plus the button
// edges between them.
type Input struct {
	Current  character.ControllerInput
	Previous character.ControllerInput
	Events   character.ControlEvents
}

var InputComponent = NewComponent[Input]()

// Player binds an entity to one of the local key maps.
type Player struct {
	Index int
}

var PlayerComponent = NewComponent[Player]()
