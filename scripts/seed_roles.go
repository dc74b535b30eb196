package main

import (
	"context"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"alfredoptarigan/resume-ats/internal/bootstrap"
	"alfredoptarigan/resume-ats/internal/config"
	applog "alfredoptarigan/resume-ats/internal/logger"
	"alfredoptarigan/resume-ats/internal/repositories"
	"alfredoptarigan/resume-ats/internal/services"
)

// Seeds the roles table (ROLES_SOURCE=database) and the Qdrant role vector
// cache (QDRANT_URL set) from the roles JSON file at ROLES_PATH.
func main() {
	cfg := config.Load()

	zlog, err := applog.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	seedDatabase := cfg.Roles.Source == config.RolesSourceDatabase
	if !seedDatabase && !cfg.QdrantEnabled() {
		zlog.Fatal("❌ Nothing to seed: set ROLES_SOURCE=database and/or QDRANT_URL")
	}

	zlog.Info("🚀 Starting role seeding...", zap.String("path", cfg.Roles.Path))

	roles, err := services.LoadRolesFile(cfg.Roles.Path)
	if err != nil {
		zlog.Fatal("❌ Failed to read roles", zap.Error(err))
	}

	// Validate the whole file before writing anything.
	if _, err := services.NewRoleCatalog(roles); err != nil {
		zlog.Fatal("❌ Invalid roles file", zap.Error(err))
	}

	ctx := context.Background()

	var roleRepo repositories.RoleRepository
	if seedDatabase {
		db, err := config.InitDatabase(cfg, zlog)
		if err != nil {
			zlog.Fatal("❌ Failed to initialize database", zap.Error(err))
		}
		roleRepo = repositories.NewRoleRepository(db)
	}

	var geminiService services.GeminiService
	roleVectors, err := bootstrap.OpenRoleVectors(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("❌ Failed to initialize Qdrant", zap.Error(err))
	}
	if roleVectors != nil {
		defer roleVectors.Close()
		geminiService, err = services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.EmbedModel)
		if err != nil {
			zlog.Fatal("❌ Failed to initialize Gemini", zap.Error(err))
		}
	}

	var successCount, failCount atomic.Int32

	var g errgroup.Group
	g.SetLimit(max(cfg.Worker.Concurrency, 1))

	for i := range roles {
		role := &roles[i]

		g.Go(func() error {
			roleLog := zlog.With(zap.String("role", role.Key), zap.String("title", role.Title))

			if roleRepo != nil {
				if err := roleRepo.Upsert(role); err != nil {
					roleLog.Error("❌ Failed to store role", zap.Error(err))
					failCount.Add(1)
					return nil
				}
			}

			if roleVectors != nil {
				embedding, err := geminiService.GenerateEmbedding(ctx, role.Description)
				if err != nil {
					roleLog.Error("❌ Failed to embed role description", zap.Error(err))
					failCount.Add(1)
					return nil
				}

				if err := roleVectors.UpsertRoleVector(ctx, role, embedding); err != nil {
					roleLog.Error("❌ Failed to store role vector", zap.Error(err))
					failCount.Add(1)
					return nil
				}
			}

			roleLog.Info("✅ Role seeded", zap.Int("skills", len(role.Skills)))
			successCount.Add(1)
			return nil
		})
	}

	// Failures are counted per role; the group itself never fails.
	_ = g.Wait()

	zlog.Info(strings.Repeat("=", 60))
	zlog.Info("📊 Seeding summary",
		zap.Int32("successful", successCount.Load()),
		zap.Int32("failed", failCount.Load()),
	)

	if failCount.Load() > 0 {
		zlog.Warn("⚠️  Some roles failed to seed. Please check the logs above.")
		zlog.Sync()
		os.Exit(1)
	}

	zlog.Info("✅ All roles seeded successfully!")
}
