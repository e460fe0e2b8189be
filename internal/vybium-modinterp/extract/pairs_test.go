package extract

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPairs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Pair
	}{
		{"empty", "", []Pair{}},
		{"no pairs", "nothing to see (here)", []Pair{}},
		{"single", "(1,2)", []Pair{NewPair(1, 2)}},
		{
			name: "embedded in prose",
			text: "start (3,4) then (10,20)\nnext line (0,0).",
			want: []Pair{NewPair(3, 4), NewPair(10, 20), NewPair(0, 0)},
		},
		{"spaces are not pairs", "(1, 2) ( 3,4)", []Pair{}},
		{"negative numbers are not pairs", "(-1,2)", []Pair{}},
		{"nested parentheses", "((5,6))", []Pair{NewPair(5, 6)}},
		{"adjacent", "(1,2)(3,4)", []Pair{NewPair(1, 2), NewPair(3, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractPairs(tt.text)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.Equal(t, 0, got[i].X.Cmp(tt.want[i].X), "x at %d", i)
				assert.Equal(t, 0, got[i].Y.Cmp(tt.want[i].Y), "y at %d", i)
			}
		})
	}
}

func TestExtractPairsBigValues(t *testing.T) {
	pairs := ExtractPairs("(123456789012345678901234567890,28)")
	require.Len(t, pairs, 1)

	want, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.Equal(t, 0, pairs[0].X.Cmp(want))

	x, y := pairs[0].Reduce(27)
	assert.Equal(t, new(big.Int).Mod(want, big.NewInt(27)).Int64(), x)
	assert.Equal(t, int64(1), y)
}

func TestPairFormatting(t *testing.T) {
	assert.Equal(t, "(1, 2)", NewPair(1, 2).String())
	assert.Equal(t, "[(1, 2), (3, 4)]", FormatPairs([]Pair{NewPair(1, 2), NewPair(3, 4)}))
	assert.Equal(t, "[]", FormatPairs(nil))
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("ಅ (7,8) ಆ (9,10)"), 0o644))

	pairs, err := ExtractFile(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, "(9, 10)", pairs[1].String())

	_, err = ExtractFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
