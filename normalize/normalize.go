// Package normalize prepares user-entered address text for the strict
// codecs: surrounding whitespace is removed and hex input is lowercased
// and 0x-prefixed. The codecs themselves never normalize.
package normalize

import (
	"strings"

	vlxaddr "github.com/CipherDogs/velas-address-go"
)

// Eth normalizes an Ethereum-style address string.
// A missing or uppercase 0x prefix is repaired and the digits lowercased.
func Eth(address string) vlxaddr.EthAddress {
	address = strings.TrimSpace(address)
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		address = "0x" + address
	}
	return vlxaddr.EthAddress("0x" + strings.ToLower(address[2:]))
}

// Vlx normalizes a Velas-style address string.
// Base58 is case-sensitive, so only whitespace is removed.
func Vlx(address string) vlxaddr.VlxAddress {
	return vlxaddr.VlxAddress(strings.TrimSpace(address))
}

// AddressEqual reports whether two Ethereum-style addresses refer to the
// same account, ignoring case and prefix differences.
func AddressEqual(address1 string, address2 string) bool {
	return Eth(address1) == Eth(address2)
}
