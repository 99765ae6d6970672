package velasaddress

import "errors"

// Address parsing failures form a closed set. Callers match on the
// sentinel with errors.Is; the wrapped message carries the offending input.
var (
	// The hex form has the wrong shape (missing 0x prefix, or not 40 digits).
	ErrInvalidHexLength = errors.New("invalid hex length")
	// The hex form contains a character outside [0-9a-fA-F].
	ErrInvalidHexCharacter = errors.New("invalid hex character")
	// The Base58 form contains a character outside the Base58 alphabet.
	ErrInvalidBase58Character = errors.New("invalid base58 character")
	// The Base58 form decodes to something other than 25 bytes.
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	// The 4 trailing checksum bytes do not match the version+address prefix.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// The payload is well formed but carries a different version byte.
	ErrVersionMismatch = errors.New("version mismatch")
)
