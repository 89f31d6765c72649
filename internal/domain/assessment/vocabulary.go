package assessment

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

type BucketTerms struct {
	SkillFragment string   `yaml:"skill_fragment"`
	Terms         []string `yaml:"terms"`
}

type Vocabulary struct {
	StopWords []string `yaml:"stop_words"`
	Buckets   struct {
		Development BucketTerms `yaml:"development"`
		Design      BucketTerms `yaml:"design"`
		Marketing   BucketTerms `yaml:"marketing"`
	} `yaml:"buckets"`
	Traits struct {
		Teamwork       []string `yaml:"teamwork"`
		ProblemSolving []string `yaml:"problem_solving"`
		Learning       []string `yaml:"learning"`
	} `yaml:"traits"`
	Guards struct {
		Testing     []string `yaml:"testing"`
		Feedback    []string `yaml:"feedback"`
		Measurement []string `yaml:"measurement"`
	} `yaml:"guards"`
}

// DefaultVocabulary returns the built-in English word lists.
func DefaultVocabulary() Vocabulary {
	v, err := ParseVocabulary(defaultVocabulary)
	if err != nil {
		panic(fmt.Sprintf("embedded vocabulary: %v", err))
	}
	return v
}

func ParseVocabulary(data []byte) (Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: %w", err)
	}
	if len(v.StopWords) == 0 {
		return Vocabulary{}, fmt.Errorf("parse vocabulary: stop_words is empty")
	}
	return v, nil
}

// LoadVocabulary reads a vocabulary file, or returns the default one when path is empty.
func LoadVocabulary(path string) (Vocabulary, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("read vocabulary: %w", err)
	}
	return ParseVocabulary(data)
}
