package tabjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeError_Kind(t *testing.T) {
	_, err := Marshal(complex(1, 2))
	require.Error(t, err)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, KindType, encErr.Kind)
}

func TestEncodeError_PathOnNestedFailure(t *testing.T) {
	_, err := Marshal(map[string]any{"bad": complex(1, 2)})
	require.Error(t, err)

	var encErr *EncodeError
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, ".bad", encErr.Path)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "overflow", KindOverflow.String())
	require.Equal(t, "unknown", Kind(99).String())
}
