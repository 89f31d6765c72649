package matching

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Candidate struct {
	ID      string
	Profile Profile
}

// Result is the score of one candidate. It is computed per request and never stored.
type Result struct {
	SubjectUserID string
	Score         int
	Strategy      Strategy
}

type RankParams struct {
	MinScore int
	Limit    int
}

// Rank scores every candidate, keeps those at or above MinScore and returns
// them best first. Ties keep candidate order. Limit <= 0 disables truncation.
func (m *Matcher) Rank(ctx context.Context, user Profile, candidates []Candidate, params RankParams) ([]Result, error) {
	scored := make([]Result, len(candidates))

	g := new(errgroup.Group)
	g.SetLimit(m.concurrency)
	for i, cand := range candidates {
		g.Go(func() error {
			s := m.Score(ctx, user, cand.Profile)
			scored[i] = Result{SubjectUserID: cand.ID, Score: s.Score, Strategy: s.Strategy}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Result, 0, len(scored))
	fallbacks := 0
	for _, r := range scored {
		if r.Strategy == StrategyKeyword {
			fallbacks++
		}
		if r.Score < params.MinScore {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}

	m.logger.Debug("ranked candidates",
		zap.Int("candidates", len(candidates)),
		zap.Int("keyword_scored", fallbacks),
		zap.Int("returned", len(out)),
	)

	return out, nil
}
