package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/resume-ats/internal/models"
)

type mockGeminiService struct {
	mock.Mock
}

func (m *mockGeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	vec, _ := args.Get(0).([]float32)
	return vec, args.Error(1)
}

func (m *mockGeminiService) GenerateEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	vecs, _ := args.Get(0).([][]float32)
	return vecs, args.Error(1)
}

type mockRoleVectorStore struct {
	mock.Mock
}

func (m *mockRoleVectorStore) InitCollection(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRoleVectorStore) UpsertRoleVector(ctx context.Context, role *models.Role, embedding []float32) error {
	return m.Called(ctx, role, embedding).Error(0)
}

func (m *mockRoleVectorStore) FindRoleVector(ctx context.Context, role *models.Role) ([]float32, bool, error) {
	args := m.Called(ctx, role)
	vec, _ := args.Get(0).([]float32)
	return vec, args.Bool(1), args.Error(2)
}

func (m *mockRoleVectorStore) Close() error {
	return nil
}

type stubPDFParser struct {
	content *PDFContent
	err     error
}

func (s *stubPDFParser) ExtractText(string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.content.Text, nil
}

func (s *stubPDFParser) ExtractTextWithMetaData(string) (*PDFContent, error) {
	return s.content, s.err
}

type stubSimilarity struct {
	value float64
	err   error
	calls int
}

func (s *stubSimilarity) Similarity(context.Context, string, *models.Role) (float64, error) {
	s.calls++
	return s.value, s.err
}
