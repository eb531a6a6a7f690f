// Package address normalizes and abbreviates Aptos account addresses.
package address

import "strings"

const longLength = 64

// Normalize returns the canonical long form of an account address:
// lowercase, "0x" prefixed and left-padded to 64 hex digits. Inputs that are
// not plain hex addresses (e.g. coin type tags "0x1::aptos_coin::AptosCoin")
// are returned trimmed but otherwise unchanged.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)

	hex, ok := strings.CutPrefix(strings.ToLower(addr), "0x")
	if !ok || hex == "" || len(hex) > longLength || !isHex(hex) {
		return addr
	}

	return "0x" + strings.Repeat("0", longLength-len(hex)) + hex
}

// Short abbreviates s as its first five and last five characters joined by
// "...". Strings of ten characters or fewer are returned unchanged.
func Short(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[:5] + "..." + s[len(s)-5:]
}

func isHex(s string) bool {
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
