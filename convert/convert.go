// Package convert ties the two address codecs together into the public
// eth-to-vlx and vlx-to-eth conversions.
package convert

import (
	vlxaddr "github.com/CipherDogs/velas-address-go"
	"github.com/CipherDogs/velas-address-go/eth"
	"github.com/CipherDogs/velas-address-go/vlx"
)

// EthToVlx converts a 0x-prefixed hex address to its Base58Check form.
func EthToVlx(address vlxaddr.EthAddress) (vlxaddr.VlxAddress, error) {
	raw, err := eth.Decode(address)
	if err != nil {
		return "", err
	}
	return vlx.Encode(raw), nil
}

// VlxToEth converts a Base58Check address to lowercase 0x-prefixed hex.
func VlxToEth(address vlxaddr.VlxAddress) (vlxaddr.EthAddress, error) {
	raw, err := vlx.Decode(address)
	if err != nil {
		return "", err
	}
	return eth.Encode(raw), nil
}
