package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShirtPrice_Brackets(t *testing.T) {
	// Below six: no shirt required.
	for _, age := range []int{0, 1, 5} {
		assert.Equal(t, 0.00, ShirtPrice(age), "age %d", age)
	}

	// Child bracket.
	for _, age := range []int{6, 10, 12} {
		assert.Equal(t, 145.00, ShirtPrice(age), "age %d", age)
	}

	// Adult bracket.
	for _, age := range []int{13, 18, 64, 120} {
		assert.Equal(t, 290.00, ShirtPrice(age), "age %d", age)
	}
}

func TestShirtPrice_BoundaryAges(t *testing.T) {
	assert.Equal(t, 0.00, ShirtPrice(5))
	assert.Equal(t, 145.00, ShirtPrice(6))
	assert.Equal(t, 145.00, ShirtPrice(12))
	assert.Equal(t, 290.00, ShirtPrice(13))
}

func TestBracketLabel(t *testing.T) {
	assert.Equal(t, "Menor de 6 anos", BracketLabel(3))
	assert.Equal(t, "6 a 12 anos", BracketLabel(9))
	assert.Equal(t, "13 anos ou mais", BracketLabel(40))
}

func TestInfoFor_FreeBracket(t *testing.T) {
	info := InfoFor(4)

	assert.Equal(t, 4, info.Age)
	assert.Equal(t, 0.00, info.Price)
	assert.Equal(t, "R$ 0,00", info.FormattedPrice)
	assert.True(t, info.Free)
}

func TestInfoFor_AdultBracket(t *testing.T) {
	info := InfoFor(35)

	assert.Equal(t, "13 anos ou mais", info.Bracket)
	assert.Equal(t, 290.00, info.Price)
	assert.Equal(t, "R$ 290,00", info.FormattedPrice)
	assert.False(t, info.Free)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 145,00", FormatBRL(145.00))
	assert.Equal(t, "R$ 290,00", FormatBRL(290.00))
	assert.Equal(t, "R$ 72,50", FormatBRL(72.5))
}
