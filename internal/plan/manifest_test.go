package plan

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/elmen-dev/elmen/internal/pkgmanager"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestManifestRender(t *testing.T) {
	t.Run("standalone-defaults", func(t *testing.T) {
		p := Build(Options{
			Name:            "demo",
			Type:            ProjectTypeStandalone,
			Build:           BuildToolTsup,
			IncludeTest:     true,
			IncludePrettier: true,
			IncludeEslint:   true,
			IncludeGit:      true,
		}, pkgmanager.NPM)

		snaps.MatchSnapshot(t, p.Manifest.Render())
	})

	t.Run("integrated-npm-minimal", func(t *testing.T) {
		p := Build(Options{
			Name:  "mono",
			Type:  ProjectTypeIntegrated,
			Build: BuildToolUnbuild,
		}, pkgmanager.NPM)

		snaps.MatchSnapshot(t, p.Manifest.Render())
	})
}

func TestManifestRender_KeyOrder(t *testing.T) {
	m := buildManifest(Options{
		Name:            "demo",
		Build:           BuildToolTsup,
		IncludePrettier: true,
		IncludeEslint:   true,
	}, true)

	rendered := m.Render()

	// build and test come first regardless of alphabetical order
	var decoded struct {
		Scripts json.RawMessage `json:"scripts"`
	}
	require.NoError(t, json.Unmarshal([]byte(rendered), &decoded))

	var keys []string
	dec := json.NewDecoder(bytes.NewReader(decoded.Scripts))
	_, err := dec.Token()
	require.NoError(t, err)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		_, err = dec.Token()
		require.NoError(t, err)
	}
	require.Equal(t, []string{"build", "test", "format", "lint"}, keys)
}

func TestManifestRender_TrailingNewlineNoHTMLEscape(t *testing.T) {
	m := buildManifest(Options{Name: "demo", Build: BuildToolTsup, IncludeEslint: true}, false)

	rendered := m.Render()
	require.True(t, rendered[len(rendered)-1] == '\n')
	require.NotContains(t, rendered, `\u003e`)
	require.Contains(t, rendered, `"lint": "eslint --cache --ext .ts,.js,.mjs,.cjs,.tsx,.jsx ."`)
}
