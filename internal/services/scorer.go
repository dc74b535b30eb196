package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	applog "alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/models"
)

const textPreviewLength = 120

const (
	coverageWeight   = 0.6
	similarityWeight = 0.4
)

type ScorerService interface {
	AnalyzeFile(ctx context.Context, filePath string, role *models.Role) (*models.ScoreReport, error)
	ComputeScores(ctx context.Context, resumeText string, role *models.Role) (*models.ScoreReport, error)
}

type scorerService struct {
	pdfParser  PDFParserService
	similarity SimilarityService
	log        *zap.Logger
}

func NewScorerService(pdfParser PDFParserService, similarity SimilarityService, log *zap.Logger) ScorerService {
	return &scorerService{
		pdfParser:  pdfParser,
		similarity: similarity,
		log:        log,
	}
}

// AnalyzeFile implements ScorerService. A PDF without extractable text fails
// with ErrNoTextExtracted.
func (s *scorerService) AnalyzeFile(ctx context.Context, filePath string, role *models.Role) (*models.ScoreReport, error) {
	content, err := s.pdfParser.ExtractTextWithMetaData(filePath)
	if err != nil {
		return nil, err
	}

	if content.Text == "" {
		s.log.Info("no text extracted", zap.String("path", filePath), zap.Int("pages", content.PageCount))
		return nil, ErrNoTextExtracted
	}

	s.log.Debug("📄 resume text extracted",
		zap.String("path", filePath),
		zap.Int("pages", content.PageCount),
		zap.Int("chars", len(content.Text)),
		zap.String("preview", applog.Truncate(content.Text, textPreviewLength)),
	)

	return s.ComputeScores(ctx, content.Text, role)
}

// ComputeScores implements ScorerService.
func (s *scorerService) ComputeScores(ctx context.Context, resumeText string, role *models.Role) (*models.ScoreReport, error) {
	found, missing, coverage := MatchSkills(resumeText, role.Skills)

	similarity, err := s.similarity.Similarity(ctx, resumeText, role)
	if err != nil {
		return nil, fmt.Errorf("failed to compute similarity: %w", err)
	}

	report := CombineScores(found, missing, coverage, similarity)

	s.log.Info("✅ resume scored",
		zap.String("role", role.Title),
		zap.Float64("coverage", report.Coverage),
		zap.Float64("similarity", report.Similarity),
		zap.Float64("ats_score", report.ATSScore),
	)

	return report, nil
}

// CombineScores blends coverage and similarity into the ATS score:
// 0.6*coverage + 0.4*similarity, clamped to [0,1] and scaled to 0-100 with
// one decimal. Coverage and similarity are reported to three decimals.
func CombineScores(found, missing []string, coverage, similarity float64) *models.ScoreReport {
	raw := coverageWeight*coverage + similarityWeight*similarity
	raw = math.Min(math.Max(raw, 0), 1)

	return &models.ScoreReport{
		FoundSkills:   found,
		MissingSkills: missing,
		Coverage:      roundTo(coverage, 3),
		Similarity:    roundTo(similarity, 3),
		ATSScore:      roundTo(raw*100, 1),
	}
}

func roundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(value*scale) / scale
}
