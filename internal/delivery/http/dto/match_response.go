package dto

type SkillMatchResponse struct {
	User       MatchUserResponse `json:"user"`
	Skills     []SkillResponse   `json:"skills"`
	Needs      []string          `json:"needs"`
	MatchScore int               `json:"match_score"`
	Strategy   string            `json:"strategy"`
}
