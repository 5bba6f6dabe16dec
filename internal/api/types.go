package api

// Knowledge is one unit of content in a pet's knowledge base.
type Knowledge struct {
	ID         string   `json:"id" yaml:"id"`
	PetID      string   `json:"pet_id,omitempty" yaml:"pet_id,omitempty"`
	Title      string   `json:"title,omitempty" yaml:"title,omitempty"`
	Content    string   `json:"content" yaml:"content"`
	Category   string   `json:"category,omitempty" yaml:"category,omitempty"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	SourceType string   `json:"source_type,omitempty" yaml:"source_type,omitempty"`
	// Similarity is set on semantic search results.
	Similarity float64 `json:"similarity,omitempty" yaml:"similarity,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// DataInstance records one ingestion and the knowledge it produced.
type DataInstance struct {
	ID          string         `json:"id" yaml:"id"`
	PetID       string         `json:"pet_id,omitempty" yaml:"pet_id,omitempty"`
	Content     string         `json:"content" yaml:"content"`
	ContentType string         `json:"content_type" yaml:"content_type"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Knowledge   []Knowledge    `json:"knowledge,omitempty" yaml:"knowledge,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

type KnowledgeEntry struct {
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type CreateInstanceRequest struct {
	Content       string           `json:"content"`
	ContentType   string           `json:"content_type"`
	Category      string           `json:"category,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	Metadata      map[string]any   `json:"metadata"`
	KnowledgeList []KnowledgeEntry `json:"knowledge_list,omitempty"`
}

type SearchParams struct {
	Query               string
	Limit               int
	SimilarityThreshold float64
}
