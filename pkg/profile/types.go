package profile

// Focus names one of the pre-written summary variants a job posting is routed to.
type Focus string

const (
	FocusFrontend    Focus = "frontend_focused"
	FocusFullstack   Focus = "fullstack"
	FocusPerformance Focus = "performance_focused"
	FocusProduct     Focus = "product_focused"
)

// Foci lists every known focus category in display order.
//
//nolint:gochecknoglobals // Closed enum table
var Foci = []Focus{FocusFrontend, FocusFullstack, FocusPerformance, FocusProduct}

// Valid reports whether f is a known focus category.
func (f Focus) Valid() (ok bool) {
	for _, known := range Foci {
		if f == known {
			ok = true
			return ok
		}
	}
	return ok
}

// Impact classifies what kind of result an achievement describes.
type Impact string

const (
	ImpactGrowth      Impact = "growth"
	ImpactEfficiency  Impact = "efficiency"
	ImpactPerformance Impact = "performance"
	ImpactRevenue     Impact = "revenue"
	ImpactTechnical   Impact = "technical"
	ImpactDelivery    Impact = "delivery"
	ImpactScale       Impact = "scale"
	ImpactTeam        Impact = "team"
	ImpactProcess     Impact = "process"
)

//nolint:gochecknoglobals // Closed enum table
var impacts = map[Impact]bool{
	ImpactGrowth:      true,
	ImpactEfficiency:  true,
	ImpactPerformance: true,
	ImpactRevenue:     true,
	ImpactTechnical:   true,
	ImpactDelivery:    true,
	ImpactScale:       true,
	ImpactTeam:        true,
	ImpactProcess:     true,
}

// Valid reports whether i is a known impact category.
func (i Impact) Valid() (ok bool) {
	ok = impacts[i]
	return ok
}

// Profile is the candidate's master data set. It is built once at startup and
// treated as read-only afterwards.
type Profile struct {
	Name            string           `yaml:"name" json:"name"`
	Email           string           `yaml:"email" json:"email"`
	Phone           string           `yaml:"phone" json:"phone"`
	LinkedIn        string           `yaml:"linkedin" json:"linkedin"`
	YearsExperience int              `yaml:"years_experience" json:"years_experience"`
	SummaryVariants map[Focus]string `yaml:"summary_variants" json:"summary_variants"`
	Experience      []Experience     `yaml:"experience" json:"experience"`
	Skills          Skills           `yaml:"skills" json:"skills"`
	Education       []Education      `yaml:"education" json:"education"`
	Awards          []Award          `yaml:"awards" json:"awards"`
}

// Experience is a single work-history entry.
type Experience struct {
	Title        string        `yaml:"title" json:"title"`
	Company      string        `yaml:"company" json:"company"`
	Location     string        `yaml:"location" json:"location"`
	Period       string        `yaml:"period" json:"period"`
	Category     string        `yaml:"category" json:"category"`
	Achievements []Achievement `yaml:"achievements" json:"achievements"`
}

// Key returns the identity of the entry, stable across runs.
func (e Experience) Key() (key string) {
	key = e.Company + "|" + e.Title + "|" + e.Period
	return key
}

// Achievement is one quantified accomplishment sentence.
type Achievement struct {
	Text   string   `yaml:"text" json:"text"`
	Tags   []string `yaml:"tags" json:"tags"`
	Impact Impact   `yaml:"impact" json:"impact"`
}

// Skills groups skill names into display tiers. All is the vocabulary matched
// against job postings.
type Skills struct {
	Core       []string `yaml:"core" json:"core"`
	Experience []string `yaml:"experience" json:"experience"`
	Exposure   []string `yaml:"exposure" json:"exposure"`
	All        []string `yaml:"all_skills" json:"all_skills"`
}

// Education is one education record.
type Education struct {
	Institution string `yaml:"institution" json:"institution"`
	Degree      string `yaml:"degree" json:"degree"`
	Year        string `yaml:"year" json:"year"`
}

// Award is one award or recognition record.
type Award struct {
	Title       string `yaml:"title" json:"title"`
	Achievement string `yaml:"achievement" json:"achievement"`
	Year        string `yaml:"year" json:"year"`
}

// Summary returns the summary paragraph written for the given focus.
func (p *Profile) Summary(focus Focus) (summary string) {
	summary = p.SummaryVariants[focus]
	return summary
}
