package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/datagotchi/datagotchi/internal/api"
	"github.com/datagotchi/datagotchi/internal/config"
	mock_notify "github.com/datagotchi/datagotchi/internal/mocks/notify"
)

type backend struct {
	posts   atomic.Int32
	status  int
	payload any

	mu   sync.Mutex
	last api.CreateInstanceRequest
}

func (b *backend) lastRequest() api.CreateInstanceRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

func (b *backend) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.posts.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/storage/pets/pet-1/instances", r.URL.Path)
		var request api.CreateInstanceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		b.mu.Lock()
		b.last = request
		b.mu.Unlock()

		status := b.status
		if status == 0 {
			status = http.StatusCreated
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		payload := b.payload
		if payload == nil {
			payload = api.DataInstance{ID: "inst-1", ContentType: request.ContentType}
		}
		assert.NoError(t, json.NewEncoder(w).Encode(payload))
	}
}

func newIngester(t *testing.T, b *backend) (*Ingester, *mock_notify.MockNotifier) {
	t.Helper()
	server := httptest.NewServer(b.handler(t))
	t.Cleanup(server.Close)
	client := api.NewClient(config.APIConfig{BaseURL: server.URL})
	t.Cleanup(func() { _ = client.Close() })

	notifier := mock_notify.NewMockNotifier(gomock.NewController(t))
	return NewIngester(client, notifier, config.IngestionConfig{MaxFileSizeBytes: 64}), notifier
}

func TestIngester_Submit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		petID   string
		input   Input
		wantMsg string
	}{
		{name: "empty url", petID: "pet-1", input: Input{Type: TypeURL}, wantMsg: "Please enter a URL"},
		{name: "malformed url", petID: "pet-1", input: Input{Type: TypeURL, URL: "not a url"}, wantMsg: "Please enter a valid URL"},
		{name: "empty text", petID: "pet-1", input: Input{Type: TypeText}, wantMsg: "Please enter some content"},
		{name: "no file", petID: "pet-1", input: Input{Type: TypeFile}, wantMsg: "Please choose a file"},
		{name: "unknown type", petID: "pet-1", input: Input{Type: "video"}, wantMsg: `Unsupported data type "video"`},
		{name: "no pet", input: Input{Type: TypeText, Content: "hi"}, wantMsg: "Please select a pet first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &backend{}
			ingester, notifier := newIngester(t, b)
			notifier.EXPECT().Error(tt.wantMsg).Times(1)

			_, err := ingester.Submit(context.Background(), tt.petID, tt.input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Message)
			assert.Zero(t, b.posts.Load())
		})
	}
}

func TestIngester_Submit(t *testing.T) {
	t.Run("url posts once with its content type", func(t *testing.T) {
		b := &backend{}
		ingester, notifier := newIngester(t, b)
		notifier.EXPECT().Success(gomock.Any())

		got, err := ingester.Submit(context.Background(), "pet-1", Input{
			Type:     TypeURL,
			Title:    "Go blog",
			URL:      "https://go.dev/blog",
			Category: "programming",
			Tags:     []string{"go"},
		})
		require.NoError(t, err)
		assert.Equal(t, "inst-1", got.ID)
		assert.Equal(t, int32(1), b.posts.Load())
		assert.Equal(t, "url", b.lastRequest().ContentType)
		assert.Equal(t, "https://go.dev/blog", b.lastRequest().Content)
		assert.Equal(t, "programming", b.lastRequest().Category)
		assert.Equal(t, "Go blog", b.lastRequest().Metadata["title"])
		assert.Equal(t, []api.KnowledgeEntry{{Title: "Go blog", Content: "https://go.dev/blog", Category: "programming", Tags: []string{"go"}}}, b.lastRequest().KnowledgeList)
	})

	t.Run("text", func(t *testing.T) {
		b := &backend{}
		ingester, notifier := newIngester(t, b)
		notifier.EXPECT().Success(gomock.Any())

		_, err := ingester.Submit(context.Background(), "pet-1", Input{Type: TypeText, Content: "Channels synchronize goroutines."})
		require.NoError(t, err)
		assert.Equal(t, "text", b.lastRequest().ContentType)
		assert.Equal(t, "Channels synchronize goroutines.", b.lastRequest().Content)
	})

	t.Run("file is read as text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("select blocks"), 0o600))

		b := &backend{}
		ingester, notifier := newIngester(t, b)
		notifier.EXPECT().Success(gomock.Any())

		_, err := ingester.Submit(context.Background(), "pet-1", Input{Type: TypeFile, FilePath: path})
		require.NoError(t, err)
		assert.Equal(t, "file", b.lastRequest().ContentType)
		assert.Equal(t, "select blocks", b.lastRequest().Content)
		assert.Equal(t, "notes.txt", b.lastRequest().Metadata["file_name"])
	})

	t.Run("unreadable file sends a placeholder", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scan.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o600))

		b := &backend{}
		ingester, notifier := newIngester(t, b)
		ingester.readFile = func(string) ([]byte, error) { return nil, fmt.Errorf("input/output error") }
		notifier.EXPECT().Success(gomock.Any())

		_, err := ingester.Submit(context.Background(), "pet-1", Input{Type: TypeFile, FilePath: path})
		require.NoError(t, err)
		assert.Equal(t, "[File content could not be read: scan.pdf]", b.lastRequest().Content)
	})

	t.Run("file over the size limit is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.txt")
		require.NoError(t, os.WriteFile(path, make([]byte, 65), 0o600))

		b := &backend{}
		ingester, notifier := newIngester(t, b)
		notifier.EXPECT().Error(gomock.Any())

		_, err := ingester.Submit(context.Background(), "pet-1", Input{Type: TypeFile, FilePath: path})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "file", validationErr.Field)
		assert.Zero(t, b.posts.Load())
	})

	t.Run("backend detail is shown", func(t *testing.T) {
		b := &backend{status: http.StatusUnprocessableEntity, payload: map[string]string{"detail": "Content too short"}}
		ingester, notifier := newIngester(t, b)
		notifier.EXPECT().Error("Content too short")

		_, err := ingester.Submit(context.Background(), "pet-1", Input{Type: TypeText, Content: "x"})
		assert.Error(t, err)
		assert.Equal(t, int32(1), b.posts.Load())
	})

	t.Run("backend without detail shows the status", func(t *testing.T) {
		b := &backend{status: http.StatusBadGateway, payload: map[string]string{}}
		ingester, notifier := newIngester(t, b)
		notifier.EXPECT().Error("HTTP error! status: 502")

		_, err := ingester.Submit(context.Background(), "pet-1", Input{Type: TypeText, Content: "x"})
		assert.Error(t, err)
	})
}
