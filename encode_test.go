package json

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeScalarRoot(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.AppendInteger("", 42))
	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, "42", string(out))
}

// Concrete scenario 5 from spec §8.
func TestEncodeObjectWithTabEscape(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.BeginObject(""))
	require.NoError(t, e.AppendString("x", "\t"))
	require.NoError(t, e.EndObject())
	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, `{"x":"\t"}`, string(out))
}

func TestEncodeNestedArraysAndObjects(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.BeginObject(""))
	require.NoError(t, e.AppendString("name", "ada"))
	require.NoError(t, e.BeginArray("tags"))
	require.NoError(t, e.AppendString("", "x"))
	require.NoError(t, e.AppendString("", "y"))
	require.NoError(t, e.EndArray())
	require.NoError(t, e.AppendNull("extra"))
	require.NoError(t, e.EndObject())

	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, `{"name":"ada","tags":["x","y"],"extra":null}`, string(out))
}

func TestEncodeArrayRejectsNamedElement(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.BeginArray(""))
	err := e.AppendInteger("bad", 1)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOption)

	// a rejected sub-step must roll back, leaving the array as if the
	// failed append never happened.
	require.NoError(t, e.AppendInteger("", 1))
	require.NoError(t, e.EndArray())
	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, `[1]`, string(out))
}

func TestEncodeObjectRequiresFieldName(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.BeginObject(""))
	err := e.AppendInteger("", 1)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOption)
}

func TestEncodeCloseMismatchFails(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.BeginArray(""))
	err := e.EndObject()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOption)
}

// Concrete scenario 6: depth limit exceeded leaves the buffer
// unchanged.
func TestEncodeDepthLimitRollsBack(t *testing.T) {
	e := NewEncodeContext(64, 2)
	require.NoError(t, e.BeginArray(""))
	require.NoError(t, e.BeginArray(""))

	beforeLen := len(e.buf)
	err := e.BeginArray("")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOption)
	require.Equal(t, beforeLen, len(e.buf), "buffer must be unchanged after a failed open")
}

func TestEncodeResultFailsWithOpenContainer(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.BeginArray(""))
	_, err := e.Result()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOption)
}

func TestEncodeResultFailsWithNoValue(t *testing.T) {
	e := NewEncodeContext(64, 16)
	_, err := e.Result()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrOption)
}

func TestEncodeRawFieldNamesSkipsEscaping(t *testing.T) {
	e := NewEncodeContext(64, 16, WithRawFieldNames())
	require.NoError(t, e.BeginObject(""))
	require.NoError(t, e.AppendInteger(`unsafe"name`, 1))
	require.NoError(t, e.EndObject())
	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, `{"unsafe"name":1}`, string(out))
}

func TestEncodeStringEscapesNonASCII(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.AppendString("", "é"))
	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, "\"\\u00e9\"", string(out))
}

func TestEncodeSurrogatePairForSupplementary(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.AppendString("", "\U0001F600"))
	out, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, "\"\\ud83d\\ude00\"", string(out))
}

func TestEncodeInvalidUTF8Fails(t *testing.T) {
	e := NewEncodeContext(64, 16)
	err := e.AppendString("", string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
}

func TestEncodeClearReusesBuffer(t *testing.T) {
	e := NewEncodeContext(64, 16)
	require.NoError(t, e.AppendInteger("", 1))
	out1, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, "1", string(out1))

	e.Clear()
	require.NoError(t, e.AppendString("", "hi"))
	out2, err := e.Result()
	require.NoError(t, err)
	require.Equal(t, `"hi"`, string(out2))
}

func TestEncodeNumberFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{-2.5e2, "-250"},
		{100, "100"},
	}
	for _, tc := range tests {
		e := NewEncodeContext(32, 4)
		require.NoError(t, e.AppendNumber("", tc.in))
		out, err := e.Result()
		require.NoError(t, err)
		require.Equal(t, tc.want, string(out))
	}
}
