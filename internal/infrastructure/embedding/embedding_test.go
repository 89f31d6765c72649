package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"skillswap/internal/config"
)

func TestHuggingFaceEmbed(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody featureExtractionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`[0.1, 0.2, 0.3]`))
	}))
	defer srv.Close()

	h := NewHuggingFace(srv.URL+"/", "", "hf-key", srv.Client(), nil)
	vec, err := h.Embed(context.Background(), "go, sql")
	require.NoError(t, err)

	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, "/"+DefaultHuggingFaceModel, gotPath)
	assert.Equal(t, "Bearer hf-key", gotAuth)
	assert.Equal(t, "go, sql", gotBody.Inputs)
	assert.True(t, gotBody.Options.WaitForModel)
}

func TestHuggingFaceEmbedBatchResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[1, 0], [0, 1]]`))
	}))
	defer srv.Close()

	vec, err := NewHuggingFace(srv.URL, "m", "", srv.Client(), nil).Embed(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0}, vec)
}

func TestHuggingFaceEmbedErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"model loading"}`))
		}))
		defer srv.Close()

		_, err := NewHuggingFace(srv.URL, "m", "", srv.Client(), nil).Embed(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=503")
	})

	t.Run("shape", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"bad"}`))
		}))
		defer srv.Close()

		_, err := NewHuggingFace(srv.URL, "m", "", srv.Client(), nil).Embed(context.Background(), "x")
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[1]`))
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewHuggingFace(srv.URL, "m", "", srv.Client(), nil).Embed(ctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type fakeModels struct {
	model string
	resp  *genai.EmbedContentResponse
	err   error
}

func (f *fakeModels) EmbedContent(ctx context.Context, model string, contents []*genai.Content, config *genai.EmbedContentConfig) (*genai.EmbedContentResponse, error) {
	f.model = model
	return f.resp, f.err
}

func TestGeminiEmbed(t *testing.T) {
	fm := &fakeModels{resp: &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{{Values: []float32{0.5, 0.5}}},
	}}
	g := newGemini(fm, "")

	vec, err := g.Embed(context.Background(), "design")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vec)
	assert.Equal(t, DefaultGeminiModel, fm.model)
}

func TestGeminiEmbedErrors(t *testing.T) {
	_, err := newGemini(&fakeModels{err: errors.New("quota")}, "m").Embed(context.Background(), "x")
	assert.ErrorContains(t, err, "quota")

	_, err = newGemini(&fakeModels{resp: &genai.EmbedContentResponse{}}, "m").Embed(context.Background(), "x")
	assert.Error(t, err)

	_, err = NewGemini(context.Background(), " ", "")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	e, err := New(context.Background(), config.EmbeddingConfig{}, nil)
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = New(context.Background(), config.EmbeddingConfig{Provider: ProviderNone}, nil)
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = New(context.Background(), config.EmbeddingConfig{Provider: ProviderHuggingFace}, nil)
	require.NoError(t, err)
	assert.IsType(t, &HuggingFace{}, e)

	_, err = New(context.Background(), config.EmbeddingConfig{Provider: "openai"}, nil)
	assert.Error(t, err)
}
