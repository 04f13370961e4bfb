package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeccak256(t *testing.T) {
	cases := []struct {
		input  string
		result string
	}{
		{
			input:  "",
			result: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
		{
			input:  "abc",
			result: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
		},
	}
	for _, c := range cases {
		digest := Keccak256([]byte(c.input))
		assert.Equal(t, c.result, hex.EncodeToString(digest))
		assert.Len(t, digest, Keccak256Length)
	}
}

func TestKeccak256Concat(t *testing.T) {
	assert.Equal(t, Keccak256([]byte("abc")), Keccak256([]byte("a"), []byte("bc")))
}
