// Package pricing computes shirt prices from the participant's age bracket.
// It is pure: no storage, no clock, total over the accepted age range.
package pricing

import (
	"fmt"
	"strings"
)

// Bracket boundaries and prices in BRL.
const (
	adultMinAge = 13
	childMinAge = 6

	adultPrice = 290.00
	childPrice = 145.00
)

// ShirtPrice returns the unit shirt price for a given age. Children under
// six do not need a shirt and price at zero.
func ShirtPrice(age int) float64 {
	switch {
	case age >= adultMinAge:
		return adultPrice
	case age >= childMinAge:
		return childPrice
	default:
		return 0.00
	}
}

// BracketLabel returns the human-readable age bracket for an age.
func BracketLabel(age int) string {
	switch {
	case age >= adultMinAge:
		return "13 anos ou mais"
	case age >= childMinAge:
		return "6 a 12 anos"
	default:
		return "Menor de 6 anos"
	}
}

// Info is the enriched price descriptor returned to clients.
type Info struct {
	Age            int     `json:"idade"`
	Bracket        string  `json:"faixa_etaria"`
	Price          float64 `json:"preco"`
	FormattedPrice string  `json:"preco_formatado"`
	Free           bool    `json:"gratuito"`
}

// InfoFor builds the full price descriptor for an age.
func InfoFor(age int) Info {
	price := ShirtPrice(age)

	return Info{
		Age:            age,
		Bracket:        BracketLabel(age),
		Price:          price,
		FormattedPrice: FormatBRL(price),
		Free:           price == 0.00,
	}
}

// FormatBRL renders a value as a Brazilian currency string ("R$ 290,00").
func FormatBRL(value float64) string {
	return "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", value), ".", ",")
}
