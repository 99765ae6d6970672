package vlx

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"strings"

	vlxaddr "github.com/CipherDogs/velas-address-go"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/common"
)

// alphabet is the standard Base58 alphabet (0, O, I and l excluded).
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const prefixLength = 1 + common.AddressLength
const payloadLength = prefixLength + vlxaddr.ChecksumLength

// Encode renders the raw address in Base58Check form under the Velas
// version byte. Output is always 34 characters and starts with 'V'.
func Encode(raw common.Address) vlxaddr.VlxAddress {
	return vlxaddr.VlxAddress(base58.CheckEncode(raw.Bytes(), vlxaddr.VersionByte))
}

// Checksum returns the 4 checksum bytes for a raw address, the first 4
// bytes of SHA256(SHA256(version ‖ address)).
func Checksum(raw common.Address) []byte {
	prefix := make([]byte, 0, prefixLength)
	prefix = append(prefix, vlxaddr.VersionByte)
	prefix = append(prefix, raw.Bytes()...)
	return checksum(prefix)
}

func checksum(prefix []byte) []byte {
	first := sha256.Sum256(prefix)
	second := sha256.Sum256(first[:])
	return second[:vlxaddr.ChecksumLength]
}

// Decode parses a Base58Check address and returns its 20 raw bytes.
// The pipeline is strict: alphabet, payload length, checksum, then
// version byte, aborting on the first failed stage.
func Decode(address vlxaddr.VlxAddress) (common.Address, error) {
	str := string(address)
	for _, c := range str {
		if !strings.ContainsRune(alphabet, c) {
			return common.Address{}, fmt.Errorf("invalid vlx address %q: character %q is not base58: %w", address, c, vlxaddr.ErrInvalidBase58Character)
		}
	}
	decoded := base58.Decode(str)
	if len(decoded) != payloadLength {
		return common.Address{}, fmt.Errorf("invalid vlx address %q: payload must be %d bytes (got %d): %w", address, payloadLength, len(decoded), vlxaddr.ErrInvalidPayloadLength)
	}
	prefix, claimed := decoded[:prefixLength], decoded[prefixLength:]
	if !bytes.Equal(checksum(prefix), claimed) {
		return common.Address{}, fmt.Errorf("invalid vlx address %q: %w", address, vlxaddr.ErrChecksumMismatch)
	}
	if prefix[0] != vlxaddr.VersionByte {
		return common.Address{}, fmt.Errorf("invalid vlx address %q: version byte 0x%02x is not 0x%02x: %w", address, prefix[0], vlxaddr.VersionByte, vlxaddr.ErrVersionMismatch)
	}
	return common.BytesToAddress(prefix[1:]), nil
}

// Validate checks the text form without returning the decoded bytes.
func Validate(address vlxaddr.VlxAddress) error {
	_, err := Decode(address)
	return err
}
