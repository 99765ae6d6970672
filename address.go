package velasaddress

// AddressLength is the number of bytes in a raw account identifier.
// Both text forms are views onto the same 20 bytes.
const AddressLength = 20

// VersionByte tags Base58Check payloads belonging to the Velas address
// family. Under 0x46 every 20-byte value encodes to a string beginning
// with the letter 'V'.
const VersionByte = 0x46

// ChecksumLength is the number of checksum bytes appended to the
// version+address prefix before Base58 encoding.
const ChecksumLength = 4

// EncodedLength is the length of every Base58Check-encoded Velas address.
const EncodedLength = 34

// EthAddress is an Ethereum-style address, 0x-prefixed hex.
// Lowercase is the normalized form.
type EthAddress string

// VlxAddress is a Velas-style address, Base58Check beginning with 'V'.
type VlxAddress string
