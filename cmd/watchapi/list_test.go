package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/watchapi"
	main "github.com/fwojciec/watchapi/cmd/watchapi"
	"github.com/fwojciec/watchapi/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the collection as JSON", func(t *testing.T) {
		t.Parallel()

		collections := &mock.CollectionService{
			CollectionFn: func(_ context.Context) (*watchapi.Collection, error) {
				return &watchapi.Collection{
					Watches:    []watchapi.Watch{{Name: "Swatch Obsidian Ink", ImageURL: "ink.png", Link: "https://a.test/ink"}},
					ModeStatus: watchapi.ModeStatus{Mode3D: true},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Collections: collections,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		var got watchapi.Collection
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		require.Len(t, got.Watches, 1)
		assert.Equal(t, "Swatch Obsidian Ink", got.Watches[0].Name)
		assert.True(t, got.ModeStatus.Mode3D)
		assert.Empty(t, stderr.String())
	})

	t.Run("reports the error message and returns the error", func(t *testing.T) {
		t.Parallel()

		loadErr := errors.New("disk on fire")
		collections := &mock.CollectionService{
			CollectionFn: func(_ context.Context) (*watchapi.Collection, error) {
				return nil, loadErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      stderr,
			Collections: collections,
		}

		err := (&main.ListCmd{}).Run(deps)

		require.ErrorIs(t, err, loadErr)
		assert.Empty(t, stdout.String())
		assert.Equal(t, "error: Internal error.\n", stderr.String())
	})
}

func TestMain_Run_List(t *testing.T) {
	t.Parallel()

	t.Run("serves the embedded reference page by default", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"list"}, stdout, stderr)

		require.NoError(t, err)
		var got watchapi.Collection
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Len(t, got.Watches, 8)
		assert.Equal(t, "Watches", got.Viewer.Category)
		assert.True(t, got.ModeStatus.Mode3D)
		assert.False(t, got.ModeStatus.ModeAR)
	})

	t.Run("reads a file source from the config", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		htmlPath := filepath.Join(dir, "page.html")
		linksPath := filepath.Join(dir, "links.txt")
		configPath := filepath.Join(dir, "watchapi.yaml")
		require.NoError(t, os.WriteFile(htmlPath, []byte(`<div class="flex space-x-4 min-h-[60px]">
<div class="inline-block"><img alt="Tide" src="tide.png"></div>
</div>`), 0o600))
		require.NoError(t, os.WriteFile(linksPath, []byte("https://a.test/tide\n"), 0o600))
		require.NoError(t, os.WriteFile(configPath, []byte("source: file\nhtml_path: "+htmlPath+"\nlinks_path: "+linksPath+"\n"), 0o600))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--config", configPath, "list"}, stdout, stderr)

		require.NoError(t, err)
		var got watchapi.Collection
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, []watchapi.Watch{{Name: "Tide", ImageURL: "tide.png", Link: "https://a.test/tide"}}, got.Watches)
		assert.False(t, got.ModeStatus.Mode3D)
	})

	t.Run("invalid config fails before running the command", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "watchapi.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("source: ftp\n"), 0o600))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--config", configPath, "list"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, watchapi.EINVALID, watchapi.ErrorCode(err))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), `error: unknown source "ftp"`)
	})
}
