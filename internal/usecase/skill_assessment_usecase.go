package usecase

import (
	"context"

	"skillswap/internal/domain/assessment"
)

type SkillAssessmentUsecase interface {
	Assess(ctx context.Context, in assessment.Input) (assessment.Result, error)
}

// SkillAssessment returns assessment.ValidationErrors untouched so callers can
// report every offending field.
type SkillAssessment struct {
	gen *assessment.Generator
}

func NewSkillAssessmentUsecase(gen *assessment.Generator) *SkillAssessment {
	return &SkillAssessment{gen: gen}
}

func (u *SkillAssessment) Assess(ctx context.Context, in assessment.Input) (assessment.Result, error) {
	if err := ctx.Err(); err != nil {
		return assessment.Result{}, err
	}
	return u.gen.Generate(in)
}
