package read

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"CSV_Bench_in_Go/internal/fixture"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openFixture(tb testing.TB) *os.File {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "test.csv")
	require.NoError(tb, fixture.Generate(path, fixture.DefaultRows))

	file, err := os.Open(path)
	require.NoError(tb, err)
	tb.Cleanup(func() { file.Close() })

	return file
}

func TestOnceCountsHeaderAndRows(t *testing.T) {
	file := openFixture(t)

	rows, err := Once(file)
	require.NoError(t, err)
	assert.Equal(t, fixture.DefaultRows+1, rows)
}

func TestOnceRewinds(t *testing.T) {
	file := openFixture(t)

	for i := 0; i < 3; i++ {
		rows, err := Once(file)
		require.NoError(t, err)
		assert.Equal(t, fixture.DefaultRows+1, rows, "pass %d", i)

		pos, err := file.Seek(0, io.SeekCurrent)
		require.NoError(t, err)
		assert.Zero(t, pos)
	}
}

func TestOnceDoubledQuotes(t *testing.T) {
	in := strings.NewReader("a,b\n\"he said \"\"hi\"\"\",x\n\"multi\nline\",y\n")

	rows, err := Once(in)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
}

func TestOnceVariableFieldCount(t *testing.T) {
	rows, err := Once(strings.NewReader("a,b,c\n1\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
}

func TestOnceMalformed(t *testing.T) {
	in := strings.NewReader("a,b,c\n\"x\"y,1,2\n")

	_, err := Once(in)
	require.Error(t, err)

	var parseErr *csv.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, csv.ErrQuote, parseErr.Err)
}

type failingSeeker struct {
	io.Reader
}

func (failingSeeker) Seek(int64, int) (int64, error) {
	return 0, errors.New("seek not supported")
}

func TestOnceSeekFailure(t *testing.T) {
	rows, err := Once(failingSeeker{strings.NewReader("a,b,c\n")})
	require.Error(t, err)
	assert.Equal(t, 1, rows)
	assert.Contains(t, err.Error(), "rewind csv")
}

func BenchmarkOnce(b *testing.B) {
	file := openFixture(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Once(file); err != nil {
			b.Fatalf("Error reading fixture: %v", err)
		}
	}
}
