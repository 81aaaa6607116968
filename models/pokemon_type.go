package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PokemonType is the closed set of card types.
type PokemonType string

const (
	PokemonTypeNormal   PokemonType = "Normal"
	PokemonTypeFire     PokemonType = "Fire"
	PokemonTypeWater    PokemonType = "Water"
	PokemonTypeElectric PokemonType = "Electric"
	PokemonTypeGrass    PokemonType = "Grass"
	PokemonTypeIce      PokemonType = "Ice"
	PokemonTypeFighting PokemonType = "Fighting"
	PokemonTypePoison   PokemonType = "Poison"
	PokemonTypeGround   PokemonType = "Ground"
	PokemonTypeFlying   PokemonType = "Flying"
	PokemonTypePsychic  PokemonType = "Psychic"
	PokemonTypeBug      PokemonType = "Bug"
	PokemonTypeRock     PokemonType = "Rock"
	PokemonTypeGhost    PokemonType = "Ghost"
	PokemonTypeDragon   PokemonType = "Dragon"
	PokemonTypeDark     PokemonType = "Dark"
	PokemonTypeSteel    PokemonType = "Steel"
	PokemonTypeFairy    PokemonType = "Fairy"
)

var pokemonTypes = map[PokemonType]struct{}{
	PokemonTypeNormal:   {},
	PokemonTypeFire:     {},
	PokemonTypeWater:    {},
	PokemonTypeElectric: {},
	PokemonTypeGrass:    {},
	PokemonTypeIce:      {},
	PokemonTypeFighting: {},
	PokemonTypePoison:   {},
	PokemonTypeGround:   {},
	PokemonTypeFlying:   {},
	PokemonTypePsychic:  {},
	PokemonTypeBug:      {},
	PokemonTypeRock:     {},
	PokemonTypeGhost:    {},
	PokemonTypeDragon:   {},
	PokemonTypeDark:     {},
	PokemonTypeSteel:    {},
	PokemonTypeFairy:    {},
}

// ParsePokemonType maps a dataset type name onto the enumeration.
// Matching ignores case and surrounding spaces ("grass", " GRASS " -> Grass).
// ok is false for anything outside the enumeration; callers must reject those.
func ParsePokemonType(name string) (t PokemonType, ok bool) {
	normalized := cases.Title(language.English).String(strings.TrimSpace(name))
	t = PokemonType(normalized)
	if _, ok = pokemonTypes[t]; !ok {
		return "", false
	}
	return t, true
}

func (t PokemonType) Valid() bool {
	_, ok := pokemonTypes[t]
	return ok
}
