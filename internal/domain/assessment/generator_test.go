package assessment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator(DefaultVocabulary())
}

func assertNoDuplicates(t *testing.T, items []string) {
	t.Helper()
	seen := map[string]bool{}
	for _, it := range items {
		require.False(t, seen[it], "duplicate entry %q", it)
		seen[it] = true
	}
}

func TestBandFor(t *testing.T) {
	for level := 1; level <= 10; level++ {
		want := LevelAdvanced
		if level <= 3 {
			want = LevelBeginner
		} else if level <= 7 {
			want = LevelIntermediate
		}
		assert.Equal(t, want, BandFor(level), "level %d", level)
	}
}

func TestGenerateBeginnerGeneric(t *testing.T) {
	res, err := newTestGenerator().Generate(Input{
		Skill:       "Python",
		Description: "I love coding and solving problems",
		Level:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelBeginner, res.CurrentLevel)
	assert.GreaterOrEqual(t, len(res.Strengths), 3)
	assert.GreaterOrEqual(t, len(res.Weaknesses), 3)
	assert.GreaterOrEqual(t, len(res.Recommendations), 4)
	assertNoDuplicates(t, res.Recommendations)
	require.Len(t, res.Resources, 3)

	assert.Equal(t, []string{
		"Foundational knowledge of Python concepts",
		"Enthusiasm and willingness to learn",
		"Practical application of Python in relevant contexts",
	}, res.Strengths)
	assert.Equal(t, "Work on Python projects that challenge your current abilities", res.Recommendations[0])
	assert.Contains(t, res.Recommendations, "Complete a comprehensive Python fundamentals course")
}

func TestGenerateAdvancedDesign(t *testing.T) {
	res, err := newTestGenerator().Generate(Input{
		Skill:       "Graphic Design",
		Description: "I create logos and UI mockups with great attention to visual detail",
		Level:       9,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelAdvanced, res.CurrentLevel)
	assert.Contains(t, res.Strengths, "Good eye for Graphic Design aesthetics and user experience")
	assert.Contains(t, res.Strengths, "Ability to create cohesive design systems")
	assert.Contains(t, res.Strengths, "Advanced understanding of design principles and psychology")
	assert.Contains(t, res.Weaknesses, "Could benefit from more peer feedback and critique")
	assert.Contains(t, res.Recommendations, "Join Graphic Design communities to get feedback on your work")
	assert.Contains(t, res.Recommendations, "Mentor others in Graphic Design to reinforce your expertise")
}

func TestGenerateDevelopmentTraits(t *testing.T) {
	res, err := newTestGenerator().Generate(Input{
		Skill:       "Web Development",
		Description: "I write code with my team, debug production issues and study new frameworks. Testing matters.",
		Level:       6,
	})
	require.NoError(t, err)

	assert.Equal(t, LevelIntermediate, res.CurrentLevel)
	assert.Equal(t, []string{
		"Strong foundation in Web Development fundamentals",
		"Ability to build complex applications independently",
		"Strong collaboration and teamwork skills",
		"Excellent problem-solving abilities",
		"Commitment to continuous learning and improvement",
	}, res.Strengths)
	// level > 5 and testing mentioned: only the band weaknesses remain, plus filler
	assert.Equal(t, []string{
		"Could benefit from deeper knowledge of Web Development optimization strategies",
		"May need more experience with complex Web Development scenarios",
		"May benefit from more structured learning in specific Web Development areas",
	}, res.Weaknesses)
}

func TestGenerateMarketing(t *testing.T) {
	res, err := newTestGenerator().Generate(Input{
		Skill:       "Content Marketing",
		Description: "Running campaigns",
		Level:       4,
	})
	require.NoError(t, err)

	assert.Equal(t, "Solid understanding of Content Marketing principles", res.Strengths[0])
	assert.Contains(t, res.Weaknesses, "Need to develop stronger data analysis skills")
	assert.Contains(t, res.Weaknesses, "Could improve measurement and ROI tracking capabilities")
	assert.Contains(t, res.Recommendations, "Take a course on data analytics specifically for Content Marketing professionals")
}

func TestRecommendationsAreDeduplicated(t *testing.T) {
	// "unit testing" puts "testing" into a band weakness, and the development
	// bucket adds its own testing weakness: both map to the same recommendation.
	res, err := newTestGenerator().Generate(Input{
		Skill:       "unit testing",
		Description: "I write code daily",
		Level:       2,
	})
	require.NoError(t, err)

	tdd := "Learn and implement test-driven development in your unit testing projects"
	count := 0
	for _, r := range res.Recommendations {
		if r == tdd {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assertNoDuplicates(t, res.Recommendations)
	assert.Len(t, res.Recommendations, 5)
}

func TestResources(t *testing.T) {
	res, err := newTestGenerator().Generate(Input{Skill: "C++ & Go", Description: "systems work", Level: 5})
	require.NoError(t, err)

	require.Len(t, res.Resources, 3)
	assert.Equal(t, Resource{
		Title: "C++ & Go Advanced Techniques",
		Type:  "Course",
		Link:  "https://www.coursera.org/search?query=C%2B%2B%20%26%20Go",
	}, res.Resources[0])
	assert.Equal(t, "Book", res.Resources[1].Type)
	assert.Equal(t, "https://www.amazon.com/s?k=C%2B%2B%20%26%20Go+professional+guide", res.Resources[1].Link)
	assert.Equal(t, "C++ & Go Community", res.Resources[2].Title)
}

func TestGenerateValidation(t *testing.T) {
	cases := []struct {
		name  string
		in    Input
		field string
	}{
		{"level zero", Input{Skill: "Go", Description: "backend", Level: 0}, "level"},
		{"level eleven", Input{Skill: "Go", Description: "backend", Level: 11}, "level"},
		{"empty skill", Input{Skill: "", Description: "backend", Level: 5}, "skill"},
		{"empty description", Input{Skill: "Go", Description: "  ", Level: 5}, "description"},
	}

	g := newTestGenerator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Generate(tc.in)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.True(t, verrs.Has(tc.field))
			assert.Len(t, verrs, 1)
		})
	}
}

func TestValidationReportsEveryField(t *testing.T) {
	err := Input{}.Validate()

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, map[string]string{
		"skill":       "Skill name is required",
		"description": "Skill description is required",
		"level":       "Level must be between 1 and 10",
	}, verrs.Fields())
}
