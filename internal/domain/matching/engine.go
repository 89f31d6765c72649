package matching

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultEmbedTimeout = 5 * time.Second
	DefaultConcurrency  = 8
)

var errEmptyEmbedding = errors.New("empty embedding")

// Embedder turns a piece of text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Profile is one side of a match: what a user offers and what they want.
type Profile struct {
	Skills []string
	Needs  []string
}

func (p Profile) Empty() bool {
	return len(p.Skills) == 0 && len(p.Needs) == 0
}

type Strategy string

const (
	StrategyEmbedding Strategy = "embedding"
	StrategyKeyword   Strategy = "keyword"
)

// Scored is a 0-100 score tagged with the strategy that produced it.
type Scored struct {
	Score    int
	Strategy Strategy
}

type Matcher struct {
	embedder    Embedder
	timeout     time.Duration
	concurrency int
	logger      *zap.Logger
}

type Option func(*Matcher)

func WithEmbedTimeout(d time.Duration) Option {
	return func(m *Matcher) {
		if d > 0 {
			m.timeout = d
		}
	}
}

func WithConcurrency(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.concurrency = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewMatcher builds a Matcher. A nil embedder makes the keyword heuristic the
// only scoring path.
func NewMatcher(embedder Embedder, opts ...Option) *Matcher {
	m := &Matcher{
		embedder:    embedder,
		timeout:     DefaultEmbedTimeout,
		concurrency: DefaultConcurrency,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ComputeMatchScore scores one counterpart against the requesting user.
func (m *Matcher) ComputeMatchScore(ctx context.Context, userSkills, userNeeds, otherSkills, otherNeeds []string) int {
	return m.Score(ctx,
		Profile{Skills: userSkills, Needs: userNeeds},
		Profile{Skills: otherSkills, Needs: otherNeeds},
	).Score
}

// Score prefers embedding similarity and falls back to the keyword heuristic
// when any of the four embeddings cannot be used.
func (m *Matcher) Score(ctx context.Context, user, other Profile) Scored {
	if user.Empty() || m.embedder == nil {
		return Scored{Score: FallbackScore(user, other), Strategy: StrategyKeyword}
	}

	score, err := m.embeddingScore(ctx, user, other)
	if err != nil {
		m.logger.Warn("embedding match failed, using keyword fallback", zap.Error(err))
		return Scored{Score: FallbackScore(user, other), Strategy: StrategyKeyword}
	}

	return Scored{Score: score, Strategy: StrategyEmbedding}
}

func (m *Matcher) embeddingScore(ctx context.Context, user, other Profile) (int, error) {
	texts := [4]string{
		joinList(user.Skills),
		joinList(user.Needs),
		joinList(other.Skills),
		joinList(other.Needs),
	}
	var vecs [4][]float32

	g, gctx := errgroup.WithContext(ctx)
	for i := range texts {
		g.Go(func() error {
			vec, err := m.embed(gctx, texts[i])
			if err != nil {
				return err
			}
			vecs[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	userSkills, userNeeds, otherSkills, otherNeeds := vecs[0], vecs[1], vecs[2], vecs[3]

	needsMatch, err := CosineSimilarity(userNeeds, otherSkills)
	if err != nil {
		return 0, fmt.Errorf("needs vs skills: %w", err)
	}
	skillsMatch, err := CosineSimilarity(userSkills, otherNeeds)
	if err != nil {
		return 0, fmt.Errorf("skills vs needs: %w", err)
	}

	return clampScore(math.Round((needsMatch + skillsMatch) / 2 * 100)), nil
}

func (m *Matcher) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	vec, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(vec) == 0 {
		return nil, errEmptyEmbedding
	}
	return vec, nil
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
