package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean_Lowercases(t *testing.T) {
	assert.Equal(t, "java python sql", Clean("Java PYTHON Sql"))
}

func TestClean_PunctuationBecomesSpace(t *testing.T) {
	assert.Equal(t, "node js", Clean("node.js"))
	assert.Equal(t, "ci cd pipelines", Clean("CI/CD pipelines"))
	assert.Equal(t, "c", Clean("C++"))
}

func TestClean_DigitsBecomeSpace(t *testing.T) {
	assert.Equal(t, "java", Clean("Java 17"))
	assert.Equal(t, "java", Clean("java17"))
	assert.Equal(t, "python", Clean("python3"))
}

func TestClean_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", Clean("  a\t\tb \n\n c  "))
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t  "))
	assert.Equal(t, "", Clean("123 456 !!!"))
}

func TestClean_UnicodeStripped(t *testing.T) {
	// Non-ASCII letters are dropped, not transliterated.
	assert.Equal(t, "caf manager", Clean("café manager"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"java", "spring", "sql"}, Tokenize("java spring sql"))
	assert.Empty(t, Tokenize(""))
}
