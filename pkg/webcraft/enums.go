package webcraft

import (
	"fmt"
	"strings"
)

// Difficulty of a world. Any string can be converted to a Difficulty,
// the constants are the values the server knows about.
type Difficulty string

const (
	DifficultyPeaceful Difficulty = "peaceful"
	DifficultyEasy     Difficulty = "easy"
	DifficultyNormal   Difficulty = "normal"
	DifficultyHard     Difficulty = "hard"
)

// Difficulties lists all known difficulties
var Difficulties = []Difficulty{DifficultyPeaceful, DifficultyEasy, DifficultyNormal, DifficultyHard}

// Weather of a world
type Weather string

const (
	WeatherClear   Weather = "clear"
	WeatherRain    Weather = "rain"
	WeatherThunder Weather = "thunder"
)

// Weathers lists all known weather types
var Weathers = []Weather{WeatherClear, WeatherRain, WeatherThunder}

// Slot identifies a player inventory slot
type Slot string

const (
	SlotHand    Slot = "hand"
	SlotOffHand Slot = "off_hand"
	SlotHead    Slot = "head"
	SlotChest   Slot = "chest"
	SlotLegs    Slot = "legs"
	SlotFeet    Slot = "feet"
)

// Slots lists all known inventory slots
var Slots = []Slot{SlotHand, SlotOffHand, SlotHead, SlotChest, SlotLegs, SlotFeet}

// String returns the wire representation
func (d Difficulty) String() string { return string(d) }

// String returns the wire representation
func (w Weather) String() string { return string(w) }

// String returns the wire representation
func (s Slot) String() string { return string(s) }

// ParseDifficulty parses user input (case insensitive) into a known Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	return parseEnum(s, Difficulties, "difficulty")
}

// ParseWeather parses user input (case insensitive) into a known Weather
func ParseWeather(s string) (Weather, error) {
	return parseEnum(s, Weathers, "weather")
}

// ParseSlot parses user input (case insensitive, "-" and "_" are interchangeable)
// into a known Slot
func ParseSlot(s string) (Slot, error) {
	return parseEnum(strings.ReplaceAll(s, "-", "_"), Slots, "slot")
}

func parseEnum[E ~string](s string, known []E, kind string) (E, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, k := range known {
		if string(k) == normalized {
			return k, nil
		}
	}
	valid := make([]string, len(known))
	for i, k := range known {
		valid[i] = string(k)
	}
	return "", fmt.Errorf("unknown %s %q (valid: %s)", kind, s, strings.Join(valid, ", "))
}
