package analyzer

import "regexp"

// DefaultRequiredYears is used when the posting states no "<N>+ years" figure.
const DefaultRequiredYears = 5

// fullstackThreshold is the number of distinct backend terms that must be exceeded
// before a posting is treated as full-stack.
const fullstackThreshold = 2

//nolint:gochecknoglobals // Classification vocabulary
var fullstackPhrases = []string{"full stack", "fullstack", "full-stack"}

//nolint:gochecknoglobals // Classification vocabulary
var backendTerms = []string{
	"backend",
	"back-end",
	"api",
	"database",
	"server",
	"microservice",
	"node.js",
	"python",
}

//nolint:gochecknoglobals // Classification vocabulary
var performanceTerms = []string{
	"performance",
	"optimization",
	"core web vitals",
	"speed",
	"scalability",
}

//nolint:gochecknoglobals // Compiled once
var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

// KeywordGroup is one topic battery matched against the folded posting text.
// Every capturing group of every match contributes a keyword.
type KeywordGroup struct {
	Name    string
	Pattern *regexp.Regexp
}

//nolint:gochecknoglobals // Keyword extraction batteries
var KeywordGroups = []KeywordGroup{
	{
		Name:    "languages",
		Pattern: regexp.MustCompile(`(react|vue|angular|typescript|javascript|node\.?js|python|java|php)`),
	},
	{
		Name:    "cloud",
		Pattern: regexp.MustCompile(`(aws|azure|gcp|cloud|docker|kubernetes|ci/cd)`),
	},
	{
		Name:    "process",
		Pattern: regexp.MustCompile(`(agile|scrum|kanban|jira)`),
	},
	{
		Name:    "quality",
		Pattern: regexp.MustCompile(`(performance|optimization|scalability|security)`),
	},
	{
		Name:    "seniority",
		Pattern: regexp.MustCompile(`(team lead|mentor|senior|principal|staff)`),
	},
	{
		Name:    "organization",
		Pattern: regexp.MustCompile(`(startup|enterprise|saas|b2b|b2c)`),
	},
	{
		Name:    "industry",
		Pattern: regexp.MustCompile(`(real estate|fintech|e-commerce|healthcare|gaming)`),
	},
}
