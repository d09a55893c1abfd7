package component

import "github.com/milk9111/brawler/character"

// CharacterStatus is the state owned by the sequence resolver.
type CharacterStatus = character.Status

var CharacterStatusComponent = NewComponent[CharacterStatus]()

// CharacterDefinition points at the sequences a character plays. The pointer
// is swapped between ticks when definitions are reloaded.
type CharacterDefinition struct {
	// Name is the prefab file the definition was loaded from.
	Name       string
	Definition *character.Definition
}

var CharacterDefinitionComponent = NewComponent[CharacterDefinition]()
