package normalize_test

import (
	"testing"

	vlxaddr "github.com/CipherDogs/velas-address-go"
	"github.com/CipherDogs/velas-address-go/normalize"
	"github.com/stretchr/testify/require"
)

func TestEth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected vlxaddr.EthAddress
	}{
		{
			name:     "already normalized",
			input:    "0x32be343b94f860124dc4fee278fdcbd38c102d88",
			expected: "0x32be343b94f860124dc4fee278fdcbd38c102d88",
		},
		{
			name:     "mixed case",
			input:    "0x32Be343B94f860124dC4fEe278FDCBD38C102D88",
			expected: "0x32be343b94f860124dc4fee278fdcbd38c102d88",
		},
		{
			name:     "uppercase prefix",
			input:    "0X32BE343B94F860124DC4FEE278FDCBD38C102D88",
			expected: "0x32be343b94f860124dc4fee278fdcbd38c102d88",
		},
		{
			name:     "missing prefix",
			input:    "32be343b94f860124dc4fee278fdcbd38c102d88",
			expected: "0x32be343b94f860124dc4fee278fdcbd38c102d88",
		},
		{
			name:     "surrounding whitespace",
			input:    "  0x32be343b94f860124dc4fee278fdcbd38c102d88\n",
			expected: "0x32be343b94f860124dc4fee278fdcbd38c102d88",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, normalize.Eth(tt.input))
		})
	}
}

func TestVlx(t *testing.T) {
	require := require.New(t)

	require.Equal(vlxaddr.VlxAddress("VFHXZoSHJQCB1u18kqA3NNqF7yJ8XiQWJv"),
		normalize.Vlx(" VFHXZoSHJQCB1u18kqA3NNqF7yJ8XiQWJv "))
	// base58 is case sensitive, casing must survive
	require.Equal(vlxaddr.VlxAddress("VFHXZoSHJQCB1u18kqA3NNqF7yJ8XiQWJv"),
		normalize.Vlx("VFHXZoSHJQCB1u18kqA3NNqF7yJ8XiQWJv"))
}

func TestAddressEqual(t *testing.T) {
	require := require.New(t)

	require.True(normalize.AddressEqual(
		"0x32Be343B94f860124dC4fEe278FDCBD38C102D88",
		"32be343b94f860124dc4fee278fdcbd38c102d88"))
	require.False(normalize.AddressEqual(
		"0x32be343b94f860124dc4fee278fdcbd38c102d88",
		"0x32be343b94f860124dc4fee278fdcbd38c102d87"))
}
