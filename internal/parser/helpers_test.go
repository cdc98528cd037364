package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/argtree/internal/schema"
	"github.com/footprint-tools/argtree/internal/usage"
	"github.com/footprint-tools/argtree/internal/values"
)

type parseCase struct {
	name string
	args []string
	want values.Map
	// wantErr is the expected error kind; ErrUnknown means no error.
	wantErr usage.ErrorKind
}

func runParseCases(t *testing.T, s *schema.Schema, tests []parseCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(s, tt.args)
			if tt.wantErr != usage.ErrUnknown {
				require.Error(t, err)
				require.Nil(t, got, "a failed parse returns no result")
				ue, ok := usage.As(err)
				require.True(t, ok, "expected a usage error, got %T: %v", err, err)
				require.Equal(t, tt.wantErr, ue.Kind, "error: %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func args(a ...string) []string { return a }
