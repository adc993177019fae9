package policy

import (
	"math/rand/v2"
	"strings"
)

const (
	// GeneratedLength is the length of every generated password.
	GeneratedLength = 12

	// SpecialChars is the fixed set of characters accepted as "special".
	SpecialChars = "!@#$%^&*"

	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"

	// Alphabet is the 70-symbol pool generated passwords are drawn from.
	Alphabet = lowerLetters + upperLetters + digits + SpecialChars
)

// Source supplies uniformly distributed integers in [0, n).
//
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator, which is
// safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic Source. The returned value is not
// safe for concurrent use; give each goroutine its own.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator produces suggested passwords.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src selects the
// process-wide concurrency-safe source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Generate returns GeneratedLength characters, each picked independently and
// uniformly from Alphabet.
//
// The draw is not retried, so a result may miss one of the character classes
// and score below Strong.
func (g *Generator) Generate() string {
	var b strings.Builder
	b.Grow(GeneratedLength)
	for range GeneratedLength {
		b.WriteByte(Alphabet[g.src.IntN(len(Alphabet))])
	}
	return b.String()
}

var defaultGenerator = NewGenerator(nil)

// Generate draws a password using the process-wide source.
func Generate() string {
	return defaultGenerator.Generate()
}
