package horoscope

import "strings"

const (
	placeholderFocus  = "{focus}"
	placeholderAdvice = "{advice}"
)

// Compose fills the {focus} and {advice} placeholders of tmpl in a single
// left-to-right pass. Each placeholder is replaced at most once and the
// inserted words are never scanned again.
func Compose(tmpl, focus, advice string) string {
	slots := [...]struct {
		name  string
		value string
		used  bool
	}{
		{name: placeholderFocus, value: focus},
		{name: placeholderAdvice, value: advice},
	}

	var b strings.Builder
	b.Grow(len(tmpl) + len(focus) + len(advice))
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		b.WriteString(rest[:open])
		rest = rest[open:]

		matched := false
		for i := range slots {
			if slots[i].used || !strings.HasPrefix(rest, slots[i].name) {
				continue
			}
			b.WriteString(slots[i].value)
			rest = rest[len(slots[i].name):]
			slots[i].used = true
			matched = true
			break
		}
		if !matched {
			b.WriteByte('{')
			rest = rest[1:]
		}
	}
	b.WriteString(rest)
	return b.String()
}
