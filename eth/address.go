package eth

import (
	"encoding/hex"
	"fmt"
	"strings"

	vlxaddr "github.com/CipherDogs/velas-address-go"
	"github.com/ethereum/go-ethereum/common"
)

// Decode parses a 0x-prefixed hex address into its 20 raw bytes.
// The hex digits are accepted case-insensitively.
func Decode(address vlxaddr.EthAddress) (common.Address, error) {
	str := string(address)
	if !strings.HasPrefix(str, "0x") && !strings.HasPrefix(str, "0X") {
		return common.Address{}, fmt.Errorf("invalid eth address %q: must start with 0x prefix: %w", address, vlxaddr.ErrInvalidHexLength)
	}
	hexPart := str[2:]
	if len(hexPart) != common.AddressLength*2 {
		return common.Address{}, fmt.Errorf("invalid eth address %q: must be %d hex characters (got %d): %w", address, common.AddressLength*2, len(hexPart), vlxaddr.ErrInvalidHexLength)
	}
	bz, err := hex.DecodeString(hexPart)
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid eth address %q: %w", address, vlxaddr.ErrInvalidHexCharacter)
	}
	return common.BytesToAddress(bz), nil
}

// Encode renders the raw address in normalized form, lowercase with 0x prefix.
func Encode(raw common.Address) vlxaddr.EthAddress {
	// Lowercase the address is our normalized format
	return vlxaddr.EthAddress(strings.ToLower(raw.Hex()))
}

// EncodeEIP55 renders the raw address with the EIP-55 mixed-case checksum.
func EncodeEIP55(raw common.Address) vlxaddr.EthAddress {
	return vlxaddr.EthAddress(raw.Hex())
}

// Validate checks the text form without returning the decoded bytes.
func Validate(address vlxaddr.EthAddress) error {
	_, err := Decode(address)
	return err
}
