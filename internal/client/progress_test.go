package client

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns at most n bytes per Read.
type chunkReader struct {
	r io.Reader
	n int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}

func TestProgressReader_ReportsEachPercentOnce(t *testing.T) {
	data := make([]byte, 1000)
	var got []int
	pr := newProgressReader(&chunkReader{r: bytes.NewReader(data), n: 3}, int64(len(data)), func(p int) {
		got = append(got, p)
	})

	n, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)

	require.NotEmpty(t, got)
	assert.Equal(t, 0, got[0])
	assert.Equal(t, 100, got[len(got)-1])
	seen := map[int]bool{}
	for i, p := range got {
		assert.False(t, seen[p], "duplicate %d", p)
		seen[p] = true
		if i > 0 {
			assert.Greater(t, p, got[i-1])
		}
	}
}

func TestProgressReader_EmptyBody(t *testing.T) {
	var got []int
	pr := newProgressReader(bytes.NewReader(nil), 0, func(p int) { got = append(got, p) })

	_, err := io.Copy(io.Discard, pr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 100}, got)
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 200))
	assert.Equal(t, 1, percent(1, 200))
	assert.Equal(t, 50, percent(100, 200))
	assert.Equal(t, 100, percent(200, 200))
	assert.Equal(t, 100, percent(5, 0))
}
