// Package bootstrap wires the scoring pipeline from configuration. The role
// catalog and embedding client it builds are created once per process and
// are read-only afterwards.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/repositories"
	"alfredoptarigan/resume-ats/internal/services"
)

type Pipeline struct {
	Catalog services.RoleCatalog
	Scorer  services.ScorerService

	roleVectors services.RoleVectorStore
}

func NewPipeline(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Pipeline, error) {
	catalog, err := LoadCatalog(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("✅ Role catalog loaded", zap.String("source", cfg.Roles.Source), zap.Int("roles", len(catalog.List())))

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini: %w", err)
	}
	log.Info("✅ Gemini embeddings initialized", zap.String("model", cfg.Gemini.EmbedModel))

	roleVectors, err := OpenRoleVectors(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	similarity := services.NewSimilarityService(
		geminiService,
		roleVectors,
		services.SimilarityOptions{
			ChunkSize:    cfg.Embedding.ChunkSize,
			ChunkOverlap: cfg.Embedding.ChunkOverlap,
		},
		log,
	)

	scorer := services.NewScorerService(services.NewPDFParserService(), similarity, log)

	return &Pipeline{
		Catalog:     catalog,
		Scorer:      scorer,
		roleVectors: roleVectors,
	}, nil
}

func (p *Pipeline) Close() {
	if p.roleVectors != nil {
		p.roleVectors.Close()
	}
}

// LoadCatalog loads the role catalog from the configured source.
func LoadCatalog(cfg *config.Config, log *zap.Logger) (services.RoleCatalog, error) {
	switch cfg.Roles.Source {
	case config.RolesSourceFile:
		catalog, err := services.LoadRoleCatalogFromFile(cfg.Roles.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to load role catalog: %w", err)
		}
		return catalog, nil
	case config.RolesSourceDatabase:
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			return nil, err
		}
		catalog, err := services.LoadRoleCatalogFromSource(repositories.NewRoleRepository(db))
		if err != nil {
			return nil, fmt.Errorf("failed to load role catalog: %w", err)
		}
		// The catalog is immutable once loaded.
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		return catalog, nil
	default:
		return nil, fmt.Errorf("unknown roles source %q", cfg.Roles.Source)
	}
}

// OpenRoleVectors connects the role vector cache. It returns nil, nil when
// Qdrant is not configured.
func OpenRoleVectors(ctx context.Context, cfg *config.Config, log *zap.Logger) (services.RoleVectorStore, error) {
	if !cfg.QdrantEnabled() {
		log.Info("Qdrant not configured, role descriptions embedded per request")
		return nil, nil
	}

	roleVectors, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, cfg.Gemini.EmbedModel, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant: %w", err)
	}

	if err := roleVectors.InitCollection(ctx); err != nil {
		roleVectors.Close()
		return nil, fmt.Errorf("failed to initialize Qdrant collection: %w", err)
	}
	log.Info("✅ Qdrant role vector cache initialized", zap.String("collection", cfg.Qdrant.Collection))

	return roleVectors, nil
}
