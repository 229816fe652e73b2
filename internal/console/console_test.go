package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadLine(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	r := NewReader(strings.NewReader("1234\r\nexit \n\nlast"), out)

	for _, want := range []string{"1234", "exit ", "", "last"} {
		got, err := r.ReadLine(ctx, "> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := r.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, strings.Repeat("> ", 5)+"\n", out.String())

	// stays at EOF without printing another prompt
	_, err = r.ReadLine(ctx, "> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, strings.Repeat("> ", 5)+"\n", out.String())
	assert.NoError(t, r.Close())
}

func TestReader_LongLine(t *testing.T) {
	long := strings.Repeat("9", 200000)
	r := NewReader(strings.NewReader(long+"\n1243\n"), io.Discard)

	got, err := r.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, long, got)

	got, err = r.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1243", got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReader_ReadError(t *testing.T) {
	r := NewReader(failingReader{}, io.Discard)

	_, err := r.ReadLine(context.Background(), "> ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestReader_CanceledWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	out := &bytes.Buffer{}
	r := NewReader(pr, out)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "> \n", out.String())
}

func TestReadline_ReadLine(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"line", "1234\n", "1234", nil},
		{"ctrl-c", "12\x03", "", ErrInterrupted},
		{"ctrl-d on empty line", "\x04", "", io.EOF},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewReadline(io.NopCloser(strings.NewReader(tc.input)), io.Discard)
			require.NoError(t, err)
			defer r.Close()

			got, err := r.ReadLine(context.Background(), "> ")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOpen_NonTerminalUsesReader(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("5678\n")
	require.NoError(t, err)
	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	r, err := Open(f, io.Discard)
	require.NoError(t, err)
	require.IsType(t, &Reader{}, r)

	line, err := r.ReadLine(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "5678", line)
}
