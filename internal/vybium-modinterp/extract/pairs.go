// Package extract finds "(x,y)" integer pairs in text and samples them for
// interpolation.
package extract

import (
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strings"
)

// pairPattern matches "(x,y)" with unsigned decimal integers and no spaces
var pairPattern = regexp.MustCompile(`\((\d+),(\d+)\)`)

// Pair is a raw coordinate pair as found in the text. Values are kept at
// full precision; they are reduced only when handed to the engine.
type Pair struct {
	X *big.Int
	Y *big.Int
}

// NewPair creates a pair from int64 values
func NewPair(x, y int64) Pair {
	return Pair{X: big.NewInt(x), Y: big.NewInt(y)}
}

// Reduce returns the pair's coordinates reduced into [0, modulus)
func (p Pair) Reduce(modulus int64) (x, y int64) {
	m := big.NewInt(modulus)
	return new(big.Int).Mod(p.X, m).Int64(), new(big.Int).Mod(p.Y, m).Int64()
}

// String returns "(x, y)"
func (p Pair) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// FormatPairs renders pairs as "[(x0, y0), (x1, y1)]"
func FormatPairs(pairs []Pair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ExtractPairs returns every "(x,y)" pair in text, in order of appearance
func ExtractPairs(text string) []Pair {
	matches := pairPattern.FindAllStringSubmatch(text, -1)
	pairs := make([]Pair, 0, len(matches))
	for _, m := range matches {
		// the pattern only admits digits, SetString cannot fail
		x, _ := new(big.Int).SetString(m[1], 10)
		y, _ := new(big.Int).SetString(m[2], 10)
		pairs = append(pairs, Pair{X: x, Y: y})
	}
	return pairs
}

// ExtractFile reads a UTF-8 text file and extracts its pairs
func ExtractFile(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ExtractPairs(string(data)), nil
}
