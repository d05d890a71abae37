package baseline

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashcheck/internal/model"
)

func TestDecode_Array(t *testing.T) {
	got, err := Decode([]byte(`["x", "y"]`))
	require.NoError(t, err)
	assert.Equal(t, model.Exclusions{"x": nil, "y": nil}, got)
}

func TestDecode_Object(t *testing.T) {
	got, err := Decode([]byte(`{"x": {"note": "ok"}, "y": "CQ 1234", "z": null}`))
	require.NoError(t, err)
	assert.Equal(t, model.Exclusions{
		"x": map[string]any{"note": "ok"},
		"y": "CQ 1234",
		"z": nil,
	}, got)
}

func TestDecode_DuplicateKeysLastWins(t *testing.T) {
	got, err := Decode([]byte(`{"x": 1, "x": 2}`))
	require.NoError(t, err)
	assert.Equal(t, model.Exclusions{"x": float64(2)}, got)

	got, err = Decode([]byte(`["x", "x"]`))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDecode_Rejects(t *testing.T) {
	tests := map[string]string{
		"null":              `null`,
		"number":            `42`,
		"string":            `"x"`,
		"non-string member": `["x", 3]`,
		"nested array":      `[["x"]]`,
		"not json":          `{x}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(doc))

			var fe *FormatError
			require.True(t, errors.As(err, &fe), "got %v", err)
		})
	}
}

func TestLoad_AddsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, os.WriteFile(path, []byte(`true`), 0o600))

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "a boolean")
}
