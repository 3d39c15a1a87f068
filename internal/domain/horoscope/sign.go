package horoscope

// signs lists the canonical keys in display order. The order is part of the
// output contract of GenerateAll.
var signs = [...]string{
	"koc",
	"boga",
	"ikizler",
	"yengec",
	"aslan",
	"basak",
	"terazi",
	"akrep",
	"yay",
	"oglak",
	"kova",
	"balik",
}

var signSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(signs))
	for _, s := range signs {
		set[s] = struct{}{}
	}
	return set
}()

// Signs returns the canonical sign keys in their fixed order.
func Signs() []string {
	out := make([]string, len(signs))
	copy(out, signs[:])
	return out
}

// IsSign reports whether key is one of the canonical sign keys.
func IsSign(key string) bool {
	_, ok := signSet[key]
	return ok
}
