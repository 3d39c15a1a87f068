package horoscope

import "strings"

// Seed is the hash input for a single uniform draw.
type Seed string

const seedSeparator = "|"

// Discriminators keep the draws for each field of a record independent.
// They are part of the historical seed format and must not be renamed.
const (
	discriminatorFocus  = "f"
	discriminatorAdvice = "a"
	discriminatorLove   = "love"
	discriminatorMoney  = "money"
	discriminatorHealth = "health"
)

// BuildSeed joins date, sign and an optional discriminator with "|".
// The separator never occurs in a canonical date or sign key.
func BuildSeed(date, sign string, discriminator ...string) Seed {
	parts := make([]string, 0, 2+len(discriminator))
	parts = append(parts, date, sign)
	parts = append(parts, discriminator...)
	return Seed(strings.Join(parts, seedSeparator))
}
