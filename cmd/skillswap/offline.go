package main

import (
	"encoding/json"
	"io"

	"skillswap/internal/app"
	"skillswap/internal/delivery/http/dto"
	"skillswap/internal/domain/assessment"
	"skillswap/internal/domain/matching"

	"github.com/spf13/cobra"
)

func newAssessCmd(rt *runtime) *cobra.Command {
	var in assessment.Input

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Generate a skill self-assessment and print it as JSON",
		Example: `  skillswap assess --skill Python --description "I love coding and solving problems" --level 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := app.NewGenerator(rt.cfg)
			if err != nil {
				return err
			}
			res, err := gen.Generate(in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.NewAssessmentResponse(res))
		},
	}

	cmd.Flags().StringVar(&in.Skill, "skill", "", "skill name")
	cmd.Flags().StringVar(&in.Description, "description", "", "free-text description of your experience")
	cmd.Flags().IntVar(&in.Level, "level", 0, "self-rated level, 1-10")

	return cmd
}

type matchOutput struct {
	MatchScore int    `json:"match_score"`
	Strategy   string `json:"strategy"`
}

func newMatchCmd(rt *runtime) *cobra.Command {
	var user, other matching.Profile

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score two skill profiles against each other and print the result as JSON",
		Example: `  skillswap match --skills Go,SQL --needs Figma --other-skills "UI Design,Figma" --other-needs Go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.NewMatcher(cmd.Context(), rt.cfg, rt.log)
			if err != nil {
				return err
			}
			s := m.Score(cmd.Context(), user, other)
			return writeJSON(cmd.OutOrStdout(), matchOutput{MatchScore: s.Score, Strategy: string(s.Strategy)})
		},
	}

	cmd.Flags().StringSliceVar(&user.Skills, "skills", nil, "your skills")
	cmd.Flags().StringSliceVar(&user.Needs, "needs", nil, "skills you want to learn")
	cmd.Flags().StringSliceVar(&other.Skills, "other-skills", nil, "the other user's skills")
	cmd.Flags().StringSliceVar(&other.Needs, "other-needs", nil, "the other user's needs")

	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
