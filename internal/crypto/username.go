package crypto

import "strconv"

var adjectives = [...]string{
	"Cool", "Super", "Mega", "Ultra", "Hyper",
	"Cyber", "Digital", "Quantum", "Cosmic", "Epic",
	"Neon", "Pixel", "Tech", "Glitch", "Swift",
}

var nouns = [...]string{
	"Dragon", "Tiger", "Phoenix", "Eagle", "Wolf",
	"Panda", "Ninja", "Samurai", "Wizard", "Knight",
	"Ranger", "Hunter", "Coder", "Hacker", "Gamer",
}

// usernameSuffixRange bounds the numeric suffix to [0, 999].
const usernameSuffixRange = 1000

// Adjectives returns a copy of the adjective word list.
func Adjectives() []string { return append([]string(nil), adjectives[:]...) }

// Nouns returns a copy of the noun word list.
func Nouns() []string { return append([]string(nil), nouns[:]...) }

// GenerateUsername builds a handle of the form <Adjective><Noun><0-999>.
// Collisions between calls are possible and are not filtered.
func GenerateUsername(src Source) string {
	adjective := adjectives[src.IntN(len(adjectives))]
	noun := nouns[src.IntN(len(nouns))]
	number := src.IntN(usernameSuffixRange)

	return adjective + noun + strconv.Itoa(number)
}
