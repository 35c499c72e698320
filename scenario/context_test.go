package scenario

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextAccumulatesErrors(t *testing.T) {
	ctx := NewContext()
	ctx.NewError("first")
	ctx.Errorf("second: %d", 2)
	require.Equal(t, 2, ctx.NumErrors())
	require.EqualError(t, ctx.GetError(0), "first")
	require.EqualError(t, ctx.GetError(1), "second: 2")
}

func TestContextPrintErrors(t *testing.T) {
	ctx := NewContext()
	ctx.NewError("boom")
	var buf bytes.Buffer
	ctx.PrintErrors(&buf)
	require.Contains(t, buf.String(), "boom")
}

func TestContextLogErrorReturnsSameError(t *testing.T) {
	ctx := NewContext()
	err := ctx.Errorf("x=%d", 1)
	require.EqualError(t, err, "x=1")
	require.Equal(t, 1, ctx.NumErrors())
}
