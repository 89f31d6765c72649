package dto

import "skillswap/internal/domain/assessment"

type AssessmentResourceResponse struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Link  string `json:"link"`
}

type AssessmentResponse struct {
	CurrentLevel    string                       `json:"current_level"`
	Strengths       []string                     `json:"strengths"`
	Weaknesses      []string                     `json:"weaknesses"`
	Recommendations []string                     `json:"recommendations"`
	Resources       []AssessmentResourceResponse `json:"resources"`
}

func NewAssessmentResponse(r assessment.Result) AssessmentResponse {
	res := make([]AssessmentResourceResponse, 0, len(r.Resources))
	for _, it := range r.Resources {
		res = append(res, AssessmentResourceResponse{Title: it.Title, Type: it.Type, Link: it.Link})
	}
	return AssessmentResponse{
		CurrentLevel:    string(r.CurrentLevel),
		Strengths:       r.Strengths,
		Weaknesses:      r.Weaknesses,
		Recommendations: r.Recommendations,
		Resources:       res,
	}
}
