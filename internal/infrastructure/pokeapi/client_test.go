package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.CatalogConfig{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	})
}

func TestClient_ListPage(t *testing.T) {
	var pageTwoURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("offset") {
		case "":
			fmt.Fprintf(w, `{"next":%q,"results":[{"name":"bulbasaur","url":"http://up/1/"},{"name":"ivysaur","url":"http://up/2/"}]}`, pageTwoURL)
		default:
			fmt.Fprint(w, `{"next":null,"results":[{"name":"venusaur","url":"http://up/3/"}]}`)
		}
	}))
	defer server.Close()
	pageTwoURL = server.URL + "/?offset=2"

	client := newTestClient(server.URL)

	t.Run("empty url fetches configured first page", func(t *testing.T) {
		page, err := client.ListPage(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, page.Results, 2)
		assert.Equal(t, "bulbasaur", page.Results[0].Name)
		assert.Equal(t, "http://up/1/", page.Results[0].URL)
		assert.Equal(t, pageTwoURL, page.Next)
	})

	t.Run("null next maps to empty string", func(t *testing.T) {
		page, err := client.ListPage(context.Background(), pageTwoURL)
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Empty(t, page.Next)
	})
}

func TestClient_FetchDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/pokemon/25":
			fmt.Fprint(w, `{"id":25,"name":"pikachu","sprites":{"front_default":"https://img/25.png"}}`)
		case "/pokemon/132":
			fmt.Fprint(w, `{"id":132,"name":"ditto","sprites":{"front_default":null}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	t.Run("maps detail to catalog entry", func(t *testing.T) {
		entry, err := client.FetchDetail(context.Background(), catalog.EntryRef{Name: "pikachu", URL: server.URL + "/pokemon/25"})
		require.NoError(t, err)
		assert.Equal(t, 25, entry.ID)
		assert.Equal(t, "pikachu", entry.Name)
		assert.Equal(t, "https://img/25.png", entry.ImageURL)
	})

	t.Run("null sprite maps to empty image url", func(t *testing.T) {
		entry, err := client.FetchDetail(context.Background(), catalog.EntryRef{Name: "ditto", URL: server.URL + "/pokemon/132"})
		require.NoError(t, err)
		assert.Empty(t, entry.ImageURL)
	})

	t.Run("non-200 surfaces an error", func(t *testing.T) {
		_, err := client.FetchDetail(context.Background(), catalog.EntryRef{Name: "missingno", URL: server.URL + "/pokemon/0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 404")
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.FetchDetail(ctx, catalog.EntryRef{Name: "pikachu", URL: server.URL + "/pokemon/25"})
		assert.Error(t, err)
	})
}
