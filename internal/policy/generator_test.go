package policy

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 70)
	for _, set := range []string{lowerLetters, upperLetters, digits, SpecialChars} {
		assert.True(t, strings.Contains(Alphabet, set))
	}
}

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	for range 200 {
		p := Generate()
		require.Len(t, p, GeneratedLength)
		for _, r := range p {
			require.True(t, strings.ContainsRune(Alphabet, r), "unexpected %q in %q", r, p)
		}
	}
}

func TestGenerator_InjectedSource(t *testing.T) {
	g := NewGenerator(&cycleSource{seq: []int{0, 25, 26, 51, 52, 61, 62, 69}})
	assert.Equal(t, "azAZ09!*azAZ", g.Generate())
}

func TestGenerator_SeededSourceIsDeterministic(t *testing.T) {
	a := NewGenerator(NewSeededSource(42))
	b := NewGenerator(NewSeededSource(42))
	for range 10 {
		assert.Equal(t, a.Generate(), b.Generate())
	}

	c := NewGenerator(NewSeededSource(43))
	d := NewGenerator(NewSeededSource(42))
	same := true
	for range 10 {
		if c.Generate() != d.Generate() {
			same = false
		}
	}
	assert.False(t, same, "different seeds produced identical sequences")
}

func TestGenerate_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if len(Generate()) != GeneratedLength {
					t.Error("bad length")
				}
			}
		}()
	}
	wg.Wait()
}
