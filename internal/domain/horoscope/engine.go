package horoscope

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Generate derives the record for one sign on one calendar day. The result is
// a pure function of (date, sign).
func Generate(date, sign string) (Record, error) {
	if err := validateDate(date); err != nil {
		return Record{}, err
	}
	if !IsSign(sign) {
		return Record{}, fmt.Errorf("%w: %q", ErrInvalidKey, sign)
	}
	return generate(date, sign)
}

// GenerateAll derives one record per sign in canonical order.
func GenerateAll(date string) ([]Record, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(signs))
	for _, sign := range signs {
		rec, err := generate(date, sign)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func generate(date, sign string) (Record, error) {
	tmpl, err := pick(templates, BuildSeed(date, sign))
	if err != nil {
		return Record{}, err
	}
	focus, err := pick(focusWords, BuildSeed(date, sign, discriminatorFocus))
	if err != nil {
		return Record{}, err
	}
	advice, err := pick(advicePhrases, BuildSeed(date, sign, discriminatorAdvice))
	if err != nil {
		return Record{}, err
	}

	return Record{
		Sign:   sign,
		Date:   date,
		Text:   Compose(tmpl, focus, advice),
		Love:   Score(Uniform(BuildSeed(date, sign, discriminatorLove))),
		Money:  Score(Uniform(BuildSeed(date, sign, discriminatorMoney))),
		Health: Score(Uniform(BuildSeed(date, sign, discriminatorHealth))),
	}, nil
}

// validateDate accepts only the canonical zero-padded YYYY-MM-DD form so that
// one calendar day always yields one seed.
func validateDate(date string) error {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return fmt.Errorf("%w: date must be formatted as YYYY-MM-DD: %v", ErrInvalidArgument, err)
	}
	if parsed.Format(dateLayout) != date {
		return fmt.Errorf("%w: date %q is not canonical", ErrInvalidArgument, date)
	}
	return nil
}

// DateStamp formats t as the calendar day observed in loc.
func DateStamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dateLayout)
}
