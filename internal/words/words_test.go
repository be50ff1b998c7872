package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	in := []string{" CRANE ", "slate", "toolong", "hi", "cran3", "", "Trace"}
	assert.Equal(t, []string{"crane", "slate", "trace"}, Normalize(in, 5))
	assert.Equal(t, []string{"hi"}, Normalize(in, 2))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFilePlainList(t *testing.T) {
	path := writeFile(t, "words.txt", "CRANE\nslate\nshort\nnope!\nab\n")
	got, err := LoadFile(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "short"}, got)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "words.json", `["CRANE", "slate", "xy", "trace"]`)
	got, err := LoadFile(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace"}, got)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 5)
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `["unterminated`)
	_, err = LoadFile(bad, 5)
	assert.Error(t, err)

	empty := writeFile(t, "empty.txt", "ab\ncd\n")
	_, err = LoadFile(empty, 5)
	assert.Error(t, err)
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	t.Setenv("WORD_LENGTH", "")
	got, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	for _, w := range got {
		assert.Len(t, w, DefaultLength)
	}
}

func TestLoadHonorsEnv(t *testing.T) {
	path := writeFile(t, "words.txt", "abcd\nwxyz\ncrane\n")
	t.Setenv("WORDS_FILE", path)
	t.Setenv("WORD_LENGTH", "4")
	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd", "wxyz"}, got)
}
