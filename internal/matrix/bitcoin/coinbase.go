package bitcoin

import (
	"encoding/hex"
	"strings"
)

// payloadSource is one place an input may carry its script payload.
type payloadSource struct {
	name   string
	lookup func(Input) (string, bool)
}

// coinbasePayloadSources is ordered by precedence. A source matches when its
// field is present, even if the value is empty.
var coinbasePayloadSources = []payloadSource{
	{
		name: "coinbase",
		lookup: func(in Input) (string, bool) {
			return in.Coinbase, in.HasCoinbase
		},
	},
	{
		name: "scriptSig.hex",
		lookup: func(in Input) (string, bool) {
			if in.ScriptSig == nil {
				return "", false
			}
			return in.ScriptSig.Hex, true
		},
	},
}

// CoinbasePayload returns the hex payload of in and the field it was read from.
func CoinbasePayload(in Input) (payload, source string, ok bool) {
	for _, src := range coinbasePayloadSources {
		if v, found := src.lookup(in); found {
			return v, src.name, true
		}
	}
	return "", "", false
}

// PrintableASCII decodes a hex string and keeps printable ASCII only, lowercased.
// Non-hex characters are ignored and a trailing unpaired digit is dropped.
func PrintableASCII(payload string) string {
	cleaned := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); i++ {
		if isHexDigit(payload[i]) {
			cleaned = append(cleaned, payload[i])
		}
	}
	cleaned = cleaned[:len(cleaned)&^1]

	raw := make([]byte, hex.DecodedLen(len(cleaned)))
	if _, err := hex.Decode(raw, cleaned); err != nil {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		if c >= 32 && c <= 126 {
			b.WriteByte(c)
		}
	}
	return strings.ToLower(b.String())
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
