package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// maxEmbedRunes keeps a single input within the embedding model's token window.
const maxEmbedRunes = 40000

const embedTaskType = "SEMANTIC_SIMILARITY"

type GeminiService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error)
}

type geminiService struct {
	client     *genai.Client
	embedModel string
}

func NewGeminiService(apiKey, embedModel string) (GeminiService, error) {
	ctx := context.Background()

	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		embedModel: embedModel,
	}, nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(truncateRunes(text, maxEmbedRunes)), g.embedConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateEmbeddings implements GeminiService. Vectors are returned in input order.
func (g *geminiService) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(truncateRunes(text, maxEmbedRunes), genai.RoleUser))
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, contents, g.embedConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding result size mismatch: want %d", len(texts))
	}

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, embedding := range result.Embeddings {
		vectors = append(vectors, embedding.Values)
	}

	return vectors, nil
}

func (g *geminiService) embedConfig() *genai.EmbedContentConfig {
	return &genai.EmbedContentConfig{TaskType: embedTaskType}
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
