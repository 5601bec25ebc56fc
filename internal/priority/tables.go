package priority

// KeywordCategory groups keyword phrases that signal the same kind of news.
type KeywordCategory string

const (
	Breakthrough         KeywordCategory = "BREAKTHROUGH"
	NewFeature           KeywordCategory = "NEW_FEATURE"
	NewVersion           KeywordCategory = "NEW_VERSION"
	TechnicalAdvancement KeywordCategory = "TECHNICAL_ADVANCEMENT"
)

const (
	breakthroughWeight         = 3.0
	newFeatureWeight           = 1.8
	newVersionWeight           = 1.5
	technicalAdvancementWeight = 1.5

	// added once when matches span more than one category
	crossCategoryBonus  = 0.3
	defaultSourceWeight = 1.0
)

// Keyword is one phrase of the keyword table with its category and weight.
type Keyword struct {
	Category KeywordCategory
	Phrase   string
	Weight   float64
}

func group(c KeywordCategory, w float64, phrases ...string) []Keyword {
	out := make([]Keyword, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, Keyword{Category: c, Phrase: p, Weight: w})
	}
	return out
}

// keywordTable is matched in order; explanations list matches in this order.
var keywordTable = concat(
	group(Breakthrough, breakthroughWeight,
		"breakthrough", "revolutionary", "groundbreaking", "game-changing",
		"paradigm shift", "first-ever", "never-before-seen", "world-first",
		"industry-first", "혁신", "혁명적", "획기적", "최초", "세계최초"),
	group(NewFeature, newFeatureWeight,
		"new feature", "new product", "new service", "announces", "launches",
		"introduces", "unveils", "releases", "debuts",
		"새로운 기능", "새로운 제품", "출시", "발표", "공개"),
	group(NewVersion, newVersionWeight,
		"new version", "new model", "beta", "alpha", "preview", "update",
		"upgrade", "iteration", "generation",
		"새로운 버전", "새로운 모델", "베타", "알파", "업데이트"),
	group(TechnicalAdvancement, technicalAdvancementWeight,
		"improved", "enhanced", "better", "faster", "more accurate",
		"efficient", "advanced",
		"개선", "향상", "더 빠름", "더 정확", "효율적"),
)

func concat(groups ...[]Keyword) []Keyword {
	var out []Keyword
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Keywords returns a copy of the keyword table in match order.
func Keywords() []Keyword {
	out := make([]Keyword, len(keywordTable))
	copy(out, keywordTable)
	return out
}

var sourceWeights = map[string]float64{
	"OpenAI Blog":           1.3,
	"Google AI Blog":        1.3,
	"Microsoft AI Blog":     1.2,
	"Anthropic Blog":        1.2,
	"TechCrunch AI":         1.1,
	"MIT Technology Review": 1.1,
	"VentureBeat AI":        1.0,
	"Ars Technica AI":       1.0,
	"The Verge AI":          1.0,
	"ZDNet AI":              1.0,
	"Wired AI":              1.0,
}

// aiMarkers are matched case-insensitively against the title only.
var aiMarkers = []string{"AI", "GPT", "ChatGPT", "Gemini", "Claude", "인공지능", "머신러닝"}
