// Package knowledge turns pasted text, a URL or a local file into one
// knowledge submission for a pet.
package knowledge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/datagotchi/datagotchi/internal/api"
	"github.com/datagotchi/datagotchi/internal/config"
	"github.com/datagotchi/datagotchi/internal/notify"
)

type Type string

const (
	TypeText Type = "text"
	TypeURL  Type = "url"
	TypeFile Type = "file"
)

// Input is what the user entered. Only the field matching Type is used.
type Input struct {
	Type     Type `validate:"oneof=text url file"`
	Title    string
	Content  string
	URL      string
	FilePath string
	Category string
	Tags     []string
}

// ValidationError is returned when input is rejected before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InstanceCreator stores a new data instance for a pet.
type InstanceCreator interface {
	CreateInstance(ctx context.Context, petID string, request api.CreateInstanceRequest) (*api.DataInstance, error)
}

type Ingester struct {
	creator     InstanceCreator
	notifier    notify.Notifier
	validate    *validator.Validate
	maxFileSize int64
	readFile    func(name string) ([]byte, error)
}

func NewIngester(creator InstanceCreator, notifier notify.Notifier, cfg config.IngestionConfig) *Ingester {
	maxFileSize := cfg.MaxFileSizeBytes
	if maxFileSize <= 0 {
		maxFileSize = config.DefaultMaxFileSizeBytes
	}
	return &Ingester{
		creator:     creator,
		notifier:    notifier,
		validate:    validator.New(),
		maxFileSize: maxFileSize,
		readFile:    os.ReadFile,
	}
}

// Submit validates input, reads a file if one was given and posts the result
// once. Every failure is also shown through the notifier. Nothing is retried.
func (i *Ingester) Submit(ctx context.Context, petID string, input Input) (*api.DataInstance, error) {
	request, err := i.prepare(petID, input)
	if err != nil {
		i.notifier.Error(err.Error())
		return nil, err
	}

	instance, err := i.creator.CreateInstance(ctx, petID, request)
	if err != nil {
		slog.Default().Error("create instance", "pet", petID, "content_type", request.ContentType, "error", err)
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			i.notifier.Error(apiErr.Error())
		} else {
			i.notifier.Error(err.Error())
		}
		return nil, err
	}

	i.notifier.Success("Data added successfully!")
	return instance, nil
}

func (i *Ingester) prepare(petID string, input Input) (api.CreateInstanceRequest, error) {
	if petID == "" {
		return api.CreateInstanceRequest{}, &ValidationError{Field: "pet", Message: "Please select a pet first"}
	}
	if err := i.validate.Struct(input); err != nil {
		return api.CreateInstanceRequest{}, &ValidationError{Field: "type", Message: fmt.Sprintf("Unsupported data type %q", input.Type)}
	}

	metadata := map[string]any{"source_type": string(input.Type)}
	if input.Title != "" {
		metadata["title"] = input.Title
	}

	var content string
	switch input.Type {
	case TypeText:
		if err := i.validate.Var(input.Content, "required"); err != nil {
			return api.CreateInstanceRequest{}, &ValidationError{Field: "content", Message: "Please enter some content"}
		}
		content = input.Content
	case TypeURL:
		if err := i.validate.Var(input.URL, "required"); err != nil {
			return api.CreateInstanceRequest{}, &ValidationError{Field: "url", Message: "Please enter a URL"}
		}
		if err := i.validate.Var(input.URL, "http_url"); err != nil {
			return api.CreateInstanceRequest{}, &ValidationError{Field: "url", Message: "Please enter a valid URL"}
		}
		content = input.URL
		metadata["url"] = input.URL
	case TypeFile:
		text, fileMeta, err := i.loadFile(input.FilePath)
		if err != nil {
			return api.CreateInstanceRequest{}, err
		}
		content = text
		for k, v := range fileMeta {
			metadata[k] = v
		}
	}

	return api.CreateInstanceRequest{
		Content:     content,
		ContentType: string(input.Type),
		Category:    input.Category,
		Tags:        input.Tags,
		Metadata:    metadata,
		KnowledgeList: []api.KnowledgeEntry{{
			Title:    input.Title,
			Content:  content,
			Category: input.Category,
			Tags:     input.Tags,
		}},
	}, nil
}

// loadFile returns the file as text. A file that exists but cannot be read
// yields a placeholder text rather than an error.
func (i *Ingester) loadFile(path string) (string, map[string]any, error) {
	if path == "" {
		return "", nil, &ValidationError{Field: "file", Message: "Please choose a file"}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", nil, &ValidationError{Field: "file", Message: fmt.Sprintf("File not found: %s", path)}
	}
	if info.Size() > i.maxFileSize {
		return "", nil, &ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("File size must be less than %dMB", i.maxFileSize/(1024*1024)),
		}
	}

	name := filepath.Base(path)
	metadata := map[string]any{
		"file_name": name,
		"file_size": info.Size(),
	}
	if mimeType := mime.TypeByExtension(filepath.Ext(name)); mimeType != "" {
		metadata["file_type"] = mimeType
	}

	data, err := i.readFile(path)
	if err != nil {
		slog.Default().Warn("read file", "path", path, "error", err)
		return fmt.Sprintf("[File content could not be read: %s]", name), metadata, nil
	}
	return string(data), metadata, nil
}
