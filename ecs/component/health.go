package component

import "github.com/milk9111/brawler/character"

type Health struct {
	Current character.HealthPoints
	Max     character.HealthPoints
}

var HealthComponent = NewComponent[Health]()

type Skill struct {
	Current character.SkillPoints
	Max     character.SkillPoints
}

var SkillComponent = NewComponent[Skill]()
