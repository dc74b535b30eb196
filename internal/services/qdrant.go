package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
)

// RoleVectorStore caches role-description embeddings keyed by role key.
type RoleVectorStore interface {
	InitCollection(ctx context.Context) error
	UpsertRoleVector(ctx context.Context, role *models.Role, embedding []float32) error
	FindRoleVector(ctx context.Context, role *models.Role) ([]float32, bool, error)
	Close() error
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	embedModel     string
	vectorSize     uint64
	log            *zap.Logger
}

// NewQdrantService connects to the role vector cache. Vectors are tagged with
// embedModel and only served back for the same model.
func NewQdrantService(urlStr, apiKey, collectionName, embedModel string, log *zap.Logger) (RoleVectorStore, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		embedModel:     embedModel,
		vectorSize:     768, // text-embedding-004
		log:            log,
	}, nil
}

// InitCollection implements RoleVectorStore.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Debug("qdrant collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// UpsertRoleVector implements RoleVectorStore.
func (q *qdrantService) UpsertRoleVector(ctx context.Context, role *models.Role, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(rolePointID(role.Key)),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"role_key":    role.Key,
			"title":       role.Title,
			"description": role.Description,
			"model":       q.embedModel,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert role vector: %w", err)
	}

	return nil
}

// FindRoleVector implements RoleVectorStore. A stored vector whose description
// or embedding model no longer matches is reported as a miss.
func (q *qdrantService) FindRoleVector(ctx context.Context, role *models.Role) ([]float32, bool, error) {
	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.collectionName,
		Ids:            []*qdrant.PointId{qdrant.NewID(rolePointID(role.Key))},
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to get role vector: %w", err)
	}

	if len(points) == 0 {
		return nil, false, nil
	}

	vec, ok := roleVectorFromPoint(points[0], role, q.embedModel, int(q.vectorSize))
	if !ok {
		q.log.Debug("stale role vector", zap.String("role", role.Key), zap.String("model", q.embedModel))
	}

	return vec, ok, nil
}

func roleVectorFromPoint(point *qdrant.RetrievedPoint, role *models.Role, embedModel string, size int) ([]float32, bool) {
	if point.Payload["description"].GetStringValue() != role.Description {
		return nil, false
	}
	if point.Payload["model"].GetStringValue() != embedModel {
		return nil, false
	}

	vector := point.GetVectors().GetVector()
	if vector == nil {
		return nil, false
	}

	data := vector.GetData()
	if dense := vector.GetDense(); dense != nil {
		data = dense.GetData()
	}

	if len(data) != size {
		return nil, false
	}

	return data, true
}

// Close implements RoleVectorStore.
func (q *qdrantService) Close() error {
	return q.client.Close()
}

// rolePointID derives a stable point ID from the role key.
func rolePointID(roleKey string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("role:"+roleKey)).String()
}
