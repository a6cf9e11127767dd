package subjects

import (
	"slices"
	"strings"
)

// Well-known subject codes referenced by scoring and validation.
const (
	Mathematics          = "mathematics"
	MathematicalLiteracy = "mathematicalLiteracy"
	PhysicalSciences     = "physicalSciences"
	LifeSciences         = "lifeSciences"
	English              = "english"
	Afrikaans            = "afrikaans"
	LifeOrientation      = "lifeOrientation"
)

// legacyCodes maps historical spellings to their canonical code.
var legacyCodes = map[string]string{
	"lifeSciencies": LifeSciences,
}

// Level is the proficiency level of a language subject.
type Level string

const (
	LevelHL  Level = "HL"  // Home Language
	LevelFAL Level = "FAL" // First Additional Language
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	return l == LevelHL || l == LevelFAL
}

// DisplayName returns a human-readable name for a level.
func (l Level) DisplayName() string {
	switch l {
	case LevelHL:
		return "Home Language"
	case LevelFAL:
		return "First Additional Language"
	default:
		return string(l)
	}
}

// Subject is an NSC subject a student can report a mark for.
type Subject struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	HasLevels bool   `json:"hasLevels"`
}

var available = []Subject{
	{Code: Mathematics, Name: "Mathematics"},
	{Code: MathematicalLiteracy, Name: "Mathematical Literacy"},
	{Code: English, Name: "English Home Language", HasLevels: true},
	{Code: Afrikaans, Name: "Afrikaans", HasLevels: true},
	{Code: "isiZulu", Name: "isiZulu", HasLevels: true},
	{Code: "isiXhosa", Name: "isiXhosa", HasLevels: true},
	{Code: "sepedi", Name: "Sepedi", HasLevels: true},
	{Code: "setswana", Name: "Setswana", HasLevels: true},
	{Code: "sesotho", Name: "Sesotho", HasLevels: true},
	{Code: "siswati", Name: "siSwati", HasLevels: true},
	{Code: "tshivenda", Name: "Tshivenda", HasLevels: true},
	{Code: "xitsonga", Name: "Xitsonga", HasLevels: true},
	{Code: "ndebele", Name: "isiNdebele", HasLevels: true},

	{Code: PhysicalSciences, Name: "Physical Sciences"},
	{Code: LifeSciences, Name: "Life Sciences"},
	{Code: "agriculturalSciences", Name: "Agricultural Sciences"},

	{Code: "geography", Name: "Geography"},
	{Code: "history", Name: "History"},

	{Code: "accounting", Name: "Accounting"},
	{Code: "businessStudies", Name: "Business Studies"},
	{Code: "economics", Name: "Economics"},

	{Code: "engineeringGraphicsDesign", Name: "Engineering Graphics and Design"},
	{Code: "mechanicalTechnology", Name: "Mechanical Technology"},
	{Code: "electricalTechnology", Name: "Electrical Technology"},
	{Code: "civilTechnology", Name: "Civil Technology"},
	{Code: "informationTechnology", Name: "Information Technology"},
	{Code: "computerApplicationsTechnology", Name: "Computer Applications Technology"},

	{Code: "visualArts", Name: "Visual Arts"},
	{Code: "music", Name: "Music"},
	{Code: "dramaticArts", Name: "Dramatic Arts"},
	{Code: "dance", Name: "Dance Studies"},

	{Code: LifeOrientation, Name: "Life Orientation"},
	{Code: "tourism", Name: "Tourism"},
	{Code: "consumerStudies", Name: "Consumer Studies"},
	{Code: "hospitalityStudies", Name: "Hospitality Studies"},
	{Code: "religion", Name: "Religion Studies"},
}

var byCode = func() map[string]Subject {
	m := make(map[string]Subject, len(available))
	for _, s := range available {
		m[s.Code] = s
	}
	return m
}()

// All returns every known subject in display order.
func All() []Subject {
	return slices.Clone(available)
}

// Lookup returns the subject for a code. Legacy spellings are accepted.
func Lookup(code string) (Subject, bool) {
	s, ok := byCode[Canonical(code)]
	return s, ok
}

// DisplayName returns the subject name, or the code itself when unknown.
func DisplayName(code string) string {
	if s, ok := Lookup(code); ok {
		return s.Name
	}
	return code
}

// Canonical maps legacy subject codes to their current spelling.
func Canonical(code string) string {
	if c, ok := legacyCodes[code]; ok {
		return c
	}
	return code
}

// HasLevels reports whether the subject is a language taken at HL or FAL.
func HasLevels(code string) bool {
	s, ok := Lookup(code)
	return ok && s.HasLevels
}

// IsEnglishFamily reports whether code names an English language subject.
func IsEnglishFamily(code string) bool {
	return strings.Contains(strings.ToLower(code), English)
}
