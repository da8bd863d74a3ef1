package collection_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/watchapi"
	"github.com/fwojciec/watchapi/collection"
	"github.com/fwojciec/watchapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure FetchedSource implements watchapi.DocumentSource at compile time.
var _ watchapi.DocumentSource = (*collection.FetchedSource)(nil)

func TestFetchedSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("combines fetched page and links", func(t *testing.T) {
		t.Parallel()

		var fetchedURL string
		src := &collection.FetchedSource{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, url string) (string, error) {
					fetchedURL = url
					return "<html>page</html>", nil
				},
			},
			URL:   "https://example.com/collection/watches",
			Links: watchapi.StaticLinks{"a", "b"},
		}

		doc, err := src.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/collection/watches", fetchedURL)
		assert.Equal(t, "<html>page</html>", doc.HTML)
		assert.Equal(t, []string{"a", "b"}, doc.Links)
	})

	t.Run("allows nil link source", func(t *testing.T) {
		t.Parallel()

		src := &collection.FetchedSource{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "<html></html>", nil
				},
			},
			URL: "https://example.com",
		}

		doc, err := src.Load(context.Background())

		require.NoError(t, err)
		assert.Nil(t, doc.Links)
	})

	t.Run("returns fetch error", func(t *testing.T) {
		t.Parallel()

		src := &collection.FetchedSource{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) (string, error) {
					return "", errors.New("HTTP 503 for https://example.com")
				},
			},
			URL:   "https://example.com",
			Links: watchapi.StaticLinks{"a"},
		}

		_, err := src.Load(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 503")
	})

	t.Run("cancels fetch when links fail", func(t *testing.T) {
		t.Parallel()

		src := &collection.FetchedSource{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, _ string) (string, error) {
					<-ctx.Done()
					return "", ctx.Err()
				},
			},
			URL: "https://example.com",
			Links: &mock.LinkSource{
				LinksFn: func(_ context.Context) ([]string, error) {
					return nil, errors.New("sitemap unavailable")
				},
			},
		}

		_, err := src.Load(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sitemap unavailable")
	})
}
