package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/watchapi"
	"github.com/fwojciec/watchapi/mock"
	wslog "github.com/fwojciec/watchapi/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingDocumentSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs document size and link count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentSource{
			LoadFn: func(ctx context.Context) (*watchapi.Document, error) {
				return &watchapi.Document{HTML: "<p>hi</p>", Links: []string{"a", "b"}}, nil
			},
		}

		doc, err := wslog.NewLoggingDocumentSource(inner, debugLogger(&buf)).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", doc.HTML)
		output := buf.String()
		assert.Contains(t, output, `msg="load document"`)
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "links=2")
	})

	t.Run("logs error without a document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentSource{
			LoadFn: func(ctx context.Context) (*watchapi.Document, error) {
				return nil, errors.New("disk error")
			},
		}

		_, err := wslog.NewLoggingDocumentSource(inner, debugLogger(&buf)).Load(context.Background())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, `err="disk error"`)
	})

	t.Run("stays silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DocumentSource{
			LoadFn: func(ctx context.Context) (*watchapi.Document, error) {
				return &watchapi.Document{}, nil
			},
		}

		_, err := wslog.NewLoggingDocumentSource(inner, logger).Load(context.Background())

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingLinkSource_Links(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.LinkSource{
		LinksFn: func(ctx context.Context) ([]string, error) {
			return []string{"https://a.test", "https://b.test", "https://c.test"}, nil
		},
	}

	links, err := wslog.NewLoggingLinkSource(inner, debugLogger(&buf)).Links(context.Background())

	require.NoError(t, err)
	assert.Len(t, links, 3)
	output := buf.String()
	assert.Contains(t, output, `msg="load links"`)
	assert.Contains(t, output, "count=3")
}
