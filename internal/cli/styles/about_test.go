package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/subdivide/internal/cli/styles"
	"github.com/bnema/subdivide/internal/domain/build"
)

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))

	out := r.Render(build.Info{Version: "v0.3.0", Commit: "a1b2c3d", BuildDate: "2026-10-01", GoVersion: "go1.25.3"})

	for _, want := range []string{"subdivide", "v0.3.0", "a1b2c3d", "2026-10-01", "go1.25.3", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}
