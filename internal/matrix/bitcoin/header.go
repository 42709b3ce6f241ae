package bitcoin

import (
	"math"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/blockmatrix-fetcher/internal/matrix/model"
)

// HeaderString flattens header fields and the coinbase text into a lowercase
// string made of [a-z0-9 ] only.
func HeaderString(s model.BlockSummary, coinbaseText string) string {
	joined := strings.Join([]string{
		s.Hash,
		s.MerkleRoot,
		"version" + strconv.FormatInt(int64(s.Version), 10),
		"bits" + s.Bits,
		"nonce" + strconv.FormatUint(uint64(s.Nonce), 10),
		"difficulty" + FormatDifficulty(s.Difficulty),
		"timestamp" + strconv.FormatInt(s.Timestamp, 10),
		"height" + strconv.FormatInt(s.Height, 10),
		coinbaseText,
	}, " ")

	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ', 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			return r
		default:
			return -1
		}
	}, strings.ToLower(joined))
}

// FormatDifficulty renders d as the shortest round-trip decimal. Integral values
// keep a ".0" suffix and magnitudes outside [1e-4, 1e16) use exponent form, so
// the digits fed into the header string stay stable for existing consumers.
func FormatDifficulty(d float64) string {
	switch {
	case math.IsNaN(d):
		return "nan"
	case math.IsInf(d, 1):
		return "inf"
	case math.IsInf(d, -1):
		return "-inf"
	case d == 0:
		return "0.0"
	}

	sci := strconv.FormatFloat(d, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
