package search

import (
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/tours360/tourgraph/internal/config"
)

// PropertyDocument is the public listing document for a published property.
type PropertyDocument struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Type        string   `json:"type"`
	CoverURL    string   `json:"cover_url,omitempty"`
	SceneCount  int      `json:"scene_count"`
	SceneTitles []string `json:"scene_titles,omitempty"`
}

type SearchClient struct {
	client *meilisearch.Client
	index  string
}

func NewSearchClient(cfg *config.Config) *SearchClient {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   cfg.Search.Host,
		APIKey: cfg.Search.APIKey,
	})

	index := cfg.Search.Index
	if index == "" {
		index = "properties"
	}
	return &SearchClient{client: client, index: index}
}

// InitIndex creates the index and its attribute settings.
func (s *SearchClient) InitIndex() error {
	_, err := s.client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.index,
		PrimaryKey: "id",
	})
	if err != nil && !strings.Contains(err.Error(), "index_already_exists") {
		return err
	}

	if _, err := s.client.Index(s.index).UpdateSearchableAttributes(&[]string{
		"title",
		"description",
		"location",
		"scene_titles",
	}); err != nil {
		return err
	}

	if _, err := s.client.Index(s.index).UpdateFilterableAttributes(&[]string{
		"type",
		"price",
		"location",
	}); err != nil {
		return err
	}

	_, err = s.client.Index(s.index).UpdateSortableAttributes(&[]string{
		"price",
	})
	return err
}

// IndexProperty upserts a published property.
func (s *SearchClient) IndexProperty(doc PropertyDocument) error {
	_, err := s.client.Index(s.index).AddDocuments([]PropertyDocument{doc}, "id")
	return err
}

// RemoveProperty drops a property from the public index.
func (s *SearchClient) RemoveProperty(id string) error {
	_, err := s.client.Index(s.index).DeleteDocument(id)
	return err
}
