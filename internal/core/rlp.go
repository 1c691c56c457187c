package core

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"
)

var ErrInvalidRLP = errors.New("invalid rlp hash list")

// ParseRLP decodes a hex-encoded RLP list of byte strings into 0x-prefixed hashes.
func ParseRLP(rlphex string) ([]string, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(rlphex, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode hex string: %s", ErrInvalidRLP, err)
	}

	var txHashBytes [][]byte
	if err := rlp.DecodeBytes(data, &txHashBytes); err != nil {
		return nil, fmt.Errorf("%w: decode rlp bytes: %s", ErrInvalidRLP, err)
	}

	txHashes := make([]string, len(txHashBytes))
	for i, b := range txHashBytes {
		txHashes[i] = fmt.Sprintf("0x%s", hex.EncodeToString(b))
	}
	return txHashes, nil
}
