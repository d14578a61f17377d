package draw

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)

	cw.WriteString("\033[4;3H")
	_, err := cw.Write([]byte("hi"))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Equal(t, len("\033[4;3Hhi"), cw.Len())

	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[4;3Hhi", buf.String())
	assert.Zero(t, cw.Len())
}

func TestChunkWriterFlushesLargeFrames(t *testing.T) {
	var buf bytes.Buffer
	cw := NewChunkWriter(&buf)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)

	require.NoError(t, cw.Flush())
	assert.Equal(t, big, buf.String())
}

func TestFitTerminal(t *testing.T) {
	tests := []struct {
		name                   string
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{"fits", 80, 24, 80, 24, 0, 0},
		{"too wide", 200, 24, 160, 24, 20, 0},
		{"too tall", 80, 81, 80, 60, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw, rh, oc, or := FitTerminal(tt.w, tt.h, 160, 60)
			assert.Equal(t, []int{tt.rw, tt.rh, tt.offCol, tt.offRow}, []int{rw, rh, oc, or})
		})
	}
}

func TestCheckTerminalRejectsPipes(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.ErrorIs(t, CheckTerminal(int(r.Fd())), ErrNoTerminal)
}
