package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"skillswap/internal/logger"
)

const (
	DefaultHuggingFaceBaseURL = "https://api-inference.huggingface.co/pipeline/feature-extraction"
	DefaultHuggingFaceModel   = "sentence-transformers/all-MiniLM-L6-v2"
)

type HuggingFace struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

type featureExtractionRequest struct {
	Inputs  string                   `json:"inputs"`
	Options featureExtractionOptions `json:"options"`
}

type featureExtractionOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

func NewHuggingFace(baseURL, model, apiKey string, client *http.Client, log *zap.Logger) *HuggingFace {
	if baseURL = strings.TrimSpace(baseURL); baseURL == "" {
		baseURL = DefaultHuggingFaceBaseURL
	}
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultHuggingFaceModel
	}
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &HuggingFace{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  strings.TrimSpace(apiKey),
		client:  client,
		logger:  log,
	}
}

func (h *HuggingFace) Embed(ctx context.Context, text string) ([]float32, error) {
	if h == nil || h.client == nil {
		return nil, errors.New("nil huggingface client")
	}
	endpoint := h.baseURL + "/" + h.model

	b, err := json.Marshal(featureExtractionRequest{
		Inputs:  text,
		Options: featureExtractionOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		h.logger.Warn("huggingface feature extraction failed",
			zap.String("model", h.model),
			zap.Int("status", resp.StatusCode),
			zap.String("body", logger.TruncateForLog(bodyStr, 256)),
		)
		return nil, fmt.Errorf("huggingface: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("huggingface: decode response: %w", err)
	}
	return decodeVector(raw)
}

// decodeVector accepts either a flat vector or a batch and returns the first row.
func decodeVector(raw json.RawMessage) ([]float32, error) {
	var flat []float32
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	var batch [][]float32
	if err := json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("huggingface: unexpected response shape: %w", err)
	}
	if len(batch) == 0 {
		return nil, nil
	}
	return batch[0], nil
}
