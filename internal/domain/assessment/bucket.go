package assessment

import (
	"fmt"
	"strings"
)

type Bucket int

const (
	BucketGeneric Bucket = iota
	BucketDevelopment
	BucketDesign
	BucketMarketing
)

func (b Bucket) String() string {
	switch b {
	case BucketDevelopment:
		return "development"
	case BucketDesign:
		return "design"
	case BucketMarketing:
		return "marketing"
	default:
		return "generic"
	}
}

type bucketRule struct {
	bucket     Bucket
	terms      BucketTerms
	strengths  func(skill string, level int) []string
	weaknesses func(level int, kw keywords, v *Vocabulary) []string
}

func (r bucketRule) matches(skill string, kw keywords) bool {
	frag := strings.ToLower(r.terms.SkillFragment)
	if frag != "" && strings.Contains(strings.ToLower(skill), frag) {
		return true
	}
	return kw.any(r.terms.Terms)
}

// bucketRules are checked in order; the first match wins.
func bucketRules(v *Vocabulary) []bucketRule {
	return []bucketRule{
		{
			bucket: BucketDevelopment,
			terms:  v.Buckets.Development,
			strengths: func(skill string, level int) []string {
				out := []string{fmt.Sprintf("Strong foundation in %s fundamentals", skill)}
				if level > 5 {
					out = append(out, "Ability to build complex applications independently")
				}
				if level > 7 {
					out = append(out, "Experience with advanced architectural patterns")
				}
				return out
			},
			weaknesses: func(level int, kw keywords, v *Vocabulary) []string {
				var out []string
				if level <= 5 {
					out = append(out, "Need to improve code organization and architecture skills")
				}
				if !kw.any(v.Guards.Testing) {
					out = append(out, "Could improve testing and quality assurance practices")
				}
				return out
			},
		},
		{
			bucket: BucketDesign,
			terms:  v.Buckets.Design,
			strengths: func(skill string, level int) []string {
				out := []string{fmt.Sprintf("Good eye for %s aesthetics and user experience", skill)}
				if level > 5 {
					out = append(out, "Ability to create cohesive design systems")
				}
				if level > 7 {
					out = append(out, "Advanced understanding of design principles and psychology")
				}
				return out
			},
			weaknesses: func(level int, kw keywords, v *Vocabulary) []string {
				var out []string
				if level <= 5 {
					out = append(out, "Need more practice with advanced design tools and techniques")
				}
				if !kw.any(v.Guards.Feedback) {
					out = append(out, "Could benefit from more peer feedback and critique")
				}
				return out
			},
		},
		{
			bucket: BucketMarketing,
			terms:  v.Buckets.Marketing,
			strengths: func(skill string, level int) []string {
				out := []string{fmt.Sprintf("Solid understanding of %s principles", skill)}
				if level > 5 {
					out = append(out, "Experience with data-driven campaign optimization")
				}
				if level > 7 {
					out = append(out, "Strategic approach to comprehensive marketing initiatives")
				}
				return out
			},
			weaknesses: func(level int, kw keywords, v *Vocabulary) []string {
				var out []string
				if level <= 5 {
					out = append(out, "Need to develop stronger data analysis skills")
				}
				if !kw.any(v.Guards.Measurement) {
					out = append(out, "Could improve measurement and ROI tracking capabilities")
				}
				return out
			},
		},
	}
}

var genericRule = bucketRule{
	bucket: BucketGeneric,
	strengths: func(skill string, level int) []string {
		switch BandFor(level) {
		case LevelBeginner:
			return []string{
				fmt.Sprintf("Foundational knowledge of %s concepts", skill),
				"Enthusiasm and willingness to learn",
			}
		case LevelIntermediate:
			return []string{
				fmt.Sprintf("Practical experience applying %s in real-world scenarios", skill),
				"Ability to solve common problems independently",
			}
		default:
			return []string{
				fmt.Sprintf("Deep expertise in advanced %s techniques", skill),
				"Ability to mentor others and lead complex projects",
			}
		}
	},
	weaknesses: func(int, keywords, *Vocabulary) []string { return nil },
}

func classify(skill string, kw keywords, v *Vocabulary) bucketRule {
	for _, r := range bucketRules(v) {
		if r.matches(skill, kw) {
			return r
		}
	}
	return genericRule
}
