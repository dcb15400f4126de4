package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]string{"title": "Taxes"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"title\": \"Taxes\"\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	err := WriteWith(&out, &errOut, map[string]any{"ch": make(chan int)})
	require.Error(t, err)

	assert.Empty(t, out.String())

	var doc Error
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &doc))
	assert.Contains(t, doc.Message, "error marshaling")
	assert.Contains(t, doc.Data, "json_error")
}

func TestMarshalError(t *testing.T) {
	got := MarshalError("bad \"input\"", map[string]any{"path": "a.org"})

	var doc Error
	require.NoError(t, json.Unmarshal([]byte(got), &doc))
	assert.Equal(t, "bad \"input\"", doc.Message)
	assert.Equal(t, "a.org", doc.Data["path"])
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteError(&buf, "no projects", nil))
	assert.Equal(t, "{\n  \"message\": \"no projects\"\n}\n", buf.String())
}

func TestFileReader(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		fr := FileReader[map[string]string]{Stdin: strings.NewReader(`{"STATUS":"stuck"}`)}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"STATUS": "stuck"}, got)
	})

	t.Run("file wins over stdin", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fields.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"EFFORT":"flow"}`), 0o644))

		fr := FileReader[map[string]string]{fileFlagValue: path, Stdin: strings.NewReader(`{}`)}
		got, err := fr.Read()
		require.NoError(t, err)
		assert.Equal(t, "flow", got["EFFORT"])
	})

	t.Run("invalid json", func(t *testing.T) {
		fr := FileReader[map[string]string]{Stdin: strings.NewReader(`[1,2`)}
		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode JSON")
	})

	t.Run("missing file", func(t *testing.T) {
		fr := FileReader[map[string]string]{fileFlagValue: filepath.Join(t.TempDir(), "nope.json")}
		_, err := fr.Read()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open file")
	})
}

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]int{"score": 45}))
	require.NoError(t, WriteLine(&buf, map[string]int{"score": 20}))

	assert.Equal(t, "{\"score\":45}\n{\"score\":20}\n", buf.String())
}
