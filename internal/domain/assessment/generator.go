package assessment

import (
	"fmt"
	"net/url"
	"strings"
)

type Input struct {
	Skill       string
	Description string
	Level       int
}

func (in Input) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.Skill) == "" {
		errs = append(errs, &ValidationError{Field: "skill", Message: "Skill name is required"})
	}
	if strings.TrimSpace(in.Description) == "" {
		errs = append(errs, &ValidationError{Field: "description", Message: "Skill description is required"})
	}
	if in.Level < MinLevel || in.Level > MaxLevel {
		errs = append(errs, &ValidationError{
			Field:   "level",
			Message: fmt.Sprintf("Level must be between %d and %d", MinLevel, MaxLevel),
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Resource struct {
	Title string
	Type  string
	Link  string
}

type Result struct {
	CurrentLevel    Level
	Strengths       []string
	Weaknesses      []string
	Recommendations []string
	Resources       []Resource
}

// Generator builds deterministic self-assessment reports.
type Generator struct {
	vocab Vocabulary
	stop  map[string]struct{}
}

func NewGenerator(vocab Vocabulary) *Generator {
	return &Generator{vocab: vocab, stop: toSet(vocab.StopWords)}
}

func (g *Generator) Generate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	band := BandFor(in.Level)
	kw := extractKeywords(in.Description, g.stop)
	rule := classify(in.Skill, kw, &g.vocab)

	weaknesses := g.weaknesses(in.Skill, in.Level, kw, rule)

	return Result{
		CurrentLevel:    band,
		Strengths:       g.strengths(in.Skill, in.Level, kw, rule),
		Weaknesses:      weaknesses,
		Recommendations: recommendations(in.Skill, band, weaknesses),
		Resources:       resources(in.Skill, band),
	}, nil
}

func (g *Generator) strengths(skill string, level int, kw keywords, rule bucketRule) []string {
	out := rule.strengths(skill, level)

	if kw.any(g.vocab.Traits.Teamwork) {
		out = append(out, "Strong collaboration and teamwork skills")
	}
	if kw.any(g.vocab.Traits.ProblemSolving) {
		out = append(out, "Excellent problem-solving abilities")
	}
	if kw.any(g.vocab.Traits.Learning) {
		out = append(out, "Commitment to continuous learning and improvement")
	}

	if len(out) < 3 {
		out = append(out, fmt.Sprintf("Practical application of %s in relevant contexts", skill))
	}
	return out
}

func (g *Generator) weaknesses(skill string, level int, kw keywords, rule bucketRule) []string {
	var out []string
	switch BandFor(level) {
	case LevelBeginner:
		out = append(out,
			fmt.Sprintf("Limited practical experience with advanced %s techniques", skill),
			fmt.Sprintf("Need more exposure to real-world %s challenges", skill),
		)
	case LevelIntermediate:
		out = append(out,
			fmt.Sprintf("Could benefit from deeper knowledge of %s optimization strategies", skill),
			fmt.Sprintf("May need more experience with complex %s scenarios", skill),
		)
	default:
		out = append(out,
			fmt.Sprintf("May need to stay updated with the latest %s trends and technologies", skill),
			fmt.Sprintf("Could benefit from broader exposure to different %s methodologies", skill),
		)
	}

	out = append(out, rule.weaknesses(level, kw, &g.vocab)...)

	if len(out) < 3 {
		out = append(out, fmt.Sprintf("May benefit from more structured learning in specific %s areas", skill))
	}
	return out
}

type trigger struct {
	contains  string
	recommend string
}

// weaknessTriggers are tried in order; a weakness yields at most one recommendation.
var weaknessTriggers = []trigger{
	{"practical experience", "Work on %s projects that challenge your current abilities"},
	{"optimization", "Study advanced %s optimization techniques through specialized courses"},
	{"testing", "Learn and implement test-driven development in your %s projects"},
	{"tools", "Master professional %s tools through tutorials and practice"},
	{"peer feedback", "Join %s communities to get feedback on your work"},
	{"data analysis", "Take a course on data analytics specifically for %s professionals"},
}

var bandRecommendations = map[string][]string{
	"beginner": {
		"Complete a comprehensive %s fundamentals course",
		"Build a portfolio of small %s projects to demonstrate your abilities",
		"Find a mentor experienced in %s to guide your learning journey",
	},
	"intermediate": {
		"Contribute to open-source %s projects to learn from experienced practitioners",
		"Specialize in a high-demand area of %s to differentiate yourself",
		"Teach %s basics to others to solidify your understanding",
	},
	"advanced": {
		"Mentor others in %s to reinforce your expertise",
		"Stay current with cutting-edge %s developments through research papers and conferences",
		"Consider creating advanced %s content to establish yourself as a thought leader",
	},
}

func recommendations(skill string, band Level, weaknesses []string) []string {
	var out []string
	for _, w := range weaknesses {
		for _, t := range weaknessTriggers {
			if strings.Contains(w, t.contains) {
				out = append(out, fmt.Sprintf(t.recommend, skill))
				break
			}
		}
	}

	for _, tmpl := range bandRecommendations[strings.ToLower(string(band))] {
		out = append(out, fmt.Sprintf(tmpl, skill))
	}

	if len(out) < 4 {
		out = append(out,
			fmt.Sprintf("Join professional %s communities to network with peers", skill),
			fmt.Sprintf("Set up a structured learning plan to systematically improve your %s abilities", skill),
		)
	}

	return dedupe(out)
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

func resources(skill string, band Level) []Resource {
	var suffix string
	switch band {
	case LevelBeginner:
		suffix = "Fundamentals"
	case LevelIntermediate:
		suffix = "Advanced Techniques"
	default:
		suffix = "Mastery"
	}

	q := escapeComponent(skill)
	return []Resource{
		{
			Title: skill + " " + suffix,
			Type:  "Course",
			Link:  "https://www.coursera.org/search?query=" + q,
		},
		{
			Title: "Professional " + skill,
			Type:  "Book",
			Link:  "https://www.amazon.com/s?k=" + q + "+professional+guide",
		},
		{
			Title: skill + " Community",
			Type:  "Community",
			Link:  "https://www.reddit.com/search/?q=" + q,
		},
	}
}

// escapeComponent percent-encodes s for use inside a query value, spaces as %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
