package horoscope

// Table order is part of the output contract: reordering or inserting
// entries changes every generated record.

var templates = []string{
	"Bugün enerji seviyen yüksek. {focus} üzerinde yoğunlaş.",
	"İlişkilerde beklenmedik fırsatlar var. {advice}",
	"Kariyer alanında küçük ama önemli bir adım atabilirsin. {focus}",
	"Bugün sakin kalmaya çalış; acele kararlar seni yormasın. {advice}",
	"Yeni bir fikir ilham verebilir. Yaratıcı projelere zaman ayır.",
}

var focusWords = []string{
	"iş",
	"ilişkiler",
	"sağlık",
	"finans",
	"kişisel gelişim",
}

var advicePhrases = []string{
	"bir konuda sorumluluk al",
	"dinlemeye daha çok vakit ayır",
	"küçük bir yatırım düşün",
	"yürüyüşe çık ve zihnini temizle",
	"eski bir bağlantıyı canlandır",
}
