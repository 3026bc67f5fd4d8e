package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/polish-calc/internal/domain"
	"github.com/DjordjeVuckovic/polish-calc/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the stored form of a conversion in Elasticsearch
type Document struct {
	ID        string    `json:"id"`
	Input     string    `json:"input"`
	Infix     string    `json:"infix"`
	Postfix   string    `json:"postfix"`
	Strict    bool      `json:"strict"`
	CreatedAt time.Time `json:"created_at"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	indexName := config.IndexName
	if indexName == "" {
		indexName = DefaultIndexName
	}

	s := &Storer{
		client:    client,
		indexName: indexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Storer) Save(ctx context.Context, c domain.Conversion) (uuid.UUID, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	doc := toDocument(c)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index conversion: %w", err)
	}

	slog.Debug("conversion indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return c.ID, nil
}

func (s *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Conversion, error) {
	res, err := s.client.Get(s.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion: %w", err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversion: %w", err)
	}
	return fromDocument(doc)
}

func (s *Storer) List(ctx context.Context, limit int) ([]domain.Conversion, error) {
	sortOrderDesc := sortorder.Desc

	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(storage.NormalizeLimit(limit)).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}

	conversions := make([]domain.Conversion, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conversion: %w", err)
		}
		c, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, *c)
	}

	return conversions, nil
}

func (s *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"input":      types.NewKeywordProperty(),
			"infix":      types.NewTextProperty(),
			"postfix":    types.NewTextProperty(),
			"strict":     types.NewBooleanProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func toDocument(c domain.Conversion) Document {
	return Document{
		ID:        c.ID.String(),
		Input:     c.Input,
		Infix:     c.Infix,
		Postfix:   c.Postfix,
		Strict:    c.Strict,
		CreatedAt: c.CreatedAt,
	}
}

func fromDocument(doc Document) (*domain.Conversion, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse conversion ID: %w", err)
	}
	return &domain.Conversion{
		ID:        id,
		Input:     doc.Input,
		Infix:     doc.Infix,
		Postfix:   doc.Postfix,
		Strict:    doc.Strict,
		CreatedAt: doc.CreatedAt,
	}, nil
}
