package report

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	tip5 "github.com/vybium/vybium-crypto/pkg/vybium-crypto/hash"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// Digest fingerprints a pair of coefficient sequences. The encoding is the
// x length, the x coefficients, the y length and the y coefficients, each as
// a little-endian uint64.
func Digest(hashFunc string, xCoeffs, yCoeffs []int64) (string, error) {
	words := encodeWords(xCoeffs, yCoeffs)

	if hashFunc == "tip5" {
		return tip5Digest(words), nil
	}

	var h hash.Hash
	switch hashFunc {
	case "", "sha3":
		h = sha3.New256()
	case "sha256":
		h = sha256.New()
	case "blake3":
		h = blake3.New()
	default:
		return "", fmt.Errorf("unsupported hash function: %s", hashFunc)
	}

	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func encodeWords(xCoeffs, yCoeffs []int64) []uint64 {
	words := make([]uint64, 0, len(xCoeffs)+len(yCoeffs)+2)
	words = append(words, uint64(len(xCoeffs)))
	for _, c := range xCoeffs {
		words = append(words, uint64(c))
	}
	words = append(words, uint64(len(yCoeffs)))
	for _, c := range yCoeffs {
		words = append(words, uint64(c))
	}
	return words
}

// tip5Digest hashes the words as field elements with the variable-length Tip5 sponge
func tip5Digest(words []uint64) string {
	elems := make([]field.Element, 0, len(words))
	for _, w := range words {
		elems = append(elems, field.New(w))
	}

	// Pad to multiple of 10 for Tip5
	for len(elems)%10 != 0 {
		elems = append(elems, field.Zero)
	}

	digest := tip5.HashVarlen(elems)

	out := make([]byte, len(digest)*8)
	for i, elem := range digest {
		binary.LittleEndian.PutUint64(out[i*8:], elem.Value())
	}
	return hex.EncodeToString(out)
}
