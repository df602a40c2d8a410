package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/subdivide/internal/domain/build"
)

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info build.Info
		want string
	}{
		{"empty", build.Info{}, "dev (unknown)"},
		{"release", build.Info{Version: "v0.3.0", Commit: "a1b2c3d4e5f6"}, "v0.3.0 (a1b2c3d)"},
		{"short_commit", build.Info{Version: "v0.3.0", Commit: "abc"}, "v0.3.0 (abc)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}
