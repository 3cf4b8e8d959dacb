package json

import (
	"fmt"
	"math/rand"
	"testing"
)

// These fuzz the scalar and SWAR scanner variants against each other
// on random inputs, since spec §4.1 requires them to "agree
// byte-for-byte on non-SIMD-observable inputs."

func randomScanInput(seed int64, n int, alphabet string) []byte {
	r := rand.New(rand.NewSource(seed))
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return b
}

func TestSkipWhitespaceAgrees(t *testing.T) {
	alphabet := " \t\r\nxyz{}[]\"0"
	for n := 0; n < 40; n++ {
		for seed := int64(0); seed < 5; seed++ {
			data := randomScanInput(seed*100+int64(n), n, alphabet)
			for start := 0; start <= len(data); start++ {
				got := skipWhitespace(data, start)
				want := skipWhitespaceScalar(data, start)
				if got != want {
					t.Fatalf("len=%d start=%d: SWAR=%d scalar=%d, data=%q", n, start, got, want, data)
				}
			}
		}
	}
}

func TestSkipDigitsAgrees(t *testing.T) {
	alphabet := "0123456789.eE-+x"
	for n := 0; n < 40; n++ {
		for seed := int64(0); seed < 5; seed++ {
			data := randomScanInput(seed*100+int64(n), n, alphabet)
			for start := 0; start <= len(data); start++ {
				got := skipDigits(data, start)
				want := skipDigitsScalar(data, start)
				if got != want {
					t.Fatalf("len=%d start=%d: SWAR=%d scalar=%d, data=%q", n, start, got, want, data)
				}
			}
		}
	}
}

func TestSkipToStringTerminatorAgrees(t *testing.T) {
	alphabet := `abc"\xyz `
	for n := 0; n < 40; n++ {
		for seed := int64(0); seed < 5; seed++ {
			data := randomScanInput(seed*100+int64(n), n, alphabet)
			for start := 0; start <= len(data); start++ {
				gotPos, gotEsc := skipToStringTerminator(data, start)
				wantPos, wantEsc := skipToStringTerminatorScalar(data, start)
				if gotPos != wantPos || gotEsc != wantEsc {
					t.Fatalf("len=%d start=%d: SWAR=(%d,%v) scalar=(%d,%v), data=%q",
						n, start, gotPos, gotEsc, wantPos, wantEsc, data)
				}
			}
		}
	}
}

func TestSkipWhitespaceExact(t *testing.T) {
	tests := []struct {
		in   string
		pos  int
		want int
	}{
		{"", 0, 0},
		{"   x", 0, 3},
		{"x", 0, 0},
		{"\t\r\n\n\n\n\n\n\n\n\n\n\n\n\n\n\n\nx", 0, 18},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q@%d", tc.in, tc.pos), func(t *testing.T) {
			if got := skipWhitespace([]byte(tc.in), tc.pos); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMatchAnyIsOrOfLanes(t *testing.T) {
	chunk := broadcast('a')
	m := matchAny(chunk, []byte{'a', 'b'})
	if m != msb {
		t.Errorf("expected all 8 lanes to match, got mask %016x", m)
	}
	m = matchAny(chunk, []byte{'b', 'c'})
	if m != 0 {
		t.Errorf("expected no lanes to match, got mask %016x", m)
	}
}
