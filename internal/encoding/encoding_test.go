package encoding

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffPassesThroughUTF8(t *testing.T) {
	in := []byte("<html><body><p>héllo</p></body></html>")

	r, err := Sniff(in, "text/html; charset=utf-8")
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(out))
}

func TestSniffDecodesWindows1252(t *testing.T) {
	// 0xE9 is é in windows-1252.
	in := []byte("<p>caf\xe9</p>")

	r, err := Sniff(in, "text/html; charset=windows-1252")
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "café")
}

func TestSniffUsesMetaCharset(t *testing.T) {
	in := []byte("<html><head><meta charset=\"windows-1252\"></head><body><p>caf\xe9</p></body></html>")

	r, err := Sniff(in, "")
	require.NoError(t, err)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "café")
}
