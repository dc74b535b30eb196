package services

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
)

type SimilarityService interface {
	Similarity(ctx context.Context, resumeText string, role *models.Role) (float64, error)
}

type SimilarityOptions struct {
	// ChunkSize > 0 enables chunked embedding of resumes longer than ChunkSize
	// runes; chunk vectors are mean-pooled.
	ChunkSize    int
	ChunkOverlap int
}

type similarityService struct {
	geminiService GeminiService
	roleVectors   RoleVectorStore
	chunker       TextChunker
	opts          SimilarityOptions
	log           *zap.Logger
}

// NewSimilarityService builds the similarity scorer. roleVectors may be nil.
func NewSimilarityService(
	geminiService GeminiService,
	roleVectors RoleVectorStore,
	opts SimilarityOptions,
	log *zap.Logger,
) SimilarityService {
	return &similarityService{
		geminiService: geminiService,
		roleVectors:   roleVectors,
		chunker:       NewTextChunker(),
		opts:          opts,
		log:           log,
	}
}

// Similarity implements SimilarityService.
func (s *similarityService) Similarity(ctx context.Context, resumeText string, role *models.Role) (float64, error) {
	resumeVec, err := s.embedResume(ctx, resumeText)
	if err != nil {
		return 0, err
	}

	roleVec, err := s.embedRole(ctx, role, len(resumeVec))
	if err != nil {
		return 0, err
	}

	return CosineSimilarity(resumeVec, roleVec)
}

func (s *similarityService) embedResume(ctx context.Context, text string) ([]float32, error) {
	if s.opts.ChunkSize <= 0 || utf8.RuneCountInString(text) <= s.opts.ChunkSize {
		vec, err := s.geminiService.GenerateEmbedding(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed resume: %w", err)
		}
		return vec, nil
	}

	chunks := s.chunker.ChunkText(text, s.opts.ChunkSize, s.opts.ChunkOverlap)
	s.log.Debug("embedding resume in chunks", zap.Int("chunks", len(chunks)), zap.Int("chunk_size", s.opts.ChunkSize))

	vectors, err := s.geminiService.GenerateEmbeddings(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume chunks: %w", err)
	}

	return MeanPool(vectors)
}

// embedRole serves a cached vector only when it has dim dimensions.
func (s *similarityService) embedRole(ctx context.Context, role *models.Role, dim int) ([]float32, error) {
	if s.roleVectors != nil && !role.IsCustom() {
		vec, ok, err := s.roleVectors.FindRoleVector(ctx, role)
		switch {
		case err != nil:
			s.log.Warn("⚠️  role vector lookup failed, embedding description", zap.String("role", role.Key), zap.Error(err))
		case ok && len(vec) != dim:
			s.log.Warn("⚠️  cached role vector has wrong dimension, embedding description",
				zap.String("role", role.Key),
				zap.Int("cached", len(vec)),
				zap.Int("expected", dim),
			)
		case ok:
			return vec, nil
		default:
			s.log.Debug("role vector cache miss", zap.String("role", role.Key))
		}
	}

	vec, err := s.geminiService.GenerateEmbedding(ctx, role.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to embed role description: %w", err)
	}

	return vec, nil
}

// CosineSimilarity returns the cosine of the angle between a and b. A zero
// vector has similarity 0 with anything.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d != %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// MeanPool averages vectors element-wise.
func MeanPool(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no vectors to pool")
	}

	dim := len(vectors[0])
	sum := make([]float64, dim)
	for _, vec := range vectors {
		if len(vec) != dim {
			return nil, fmt.Errorf("embedding dimension mismatch: %d != %d", len(vec), dim)
		}
		for i, v := range vec {
			sum[i] += float64(v)
		}
	}

	pooled := make([]float32, dim)
	for i := range sum {
		pooled[i] = float32(sum[i] / float64(len(vectors)))
	}

	return pooled, nil
}
