package sensors

import "strings"

// HelpRoom is put in the room slot when someone says "help".
const HelpRoom = "help"

type Target struct {
	Room   string
	Sensor string
}

// Resolve picks the room and sensor out of free-form words. Each word is
// lower-cased and passed through the alias mappings, then tried as a room
// and only then as a sensor. A later match replaces an earlier one.
func Resolve(cfg *Config, words []string) Target {
	var t Target
	for _, word := range words {
		word = strings.ToLower(word)
		if alias, ok := cfg.Mappings[word]; ok {
			word = alias
		}
		switch {
		case cfg.HasRoom(word):
			t.Room = word
		case cfg.HasSensor(word):
			t.Sensor = word
		case word == HelpRoom:
			t.Room = HelpRoom
		}
	}
	return t
}
