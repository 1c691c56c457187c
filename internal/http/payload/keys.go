package payload

import (
	"errors"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

// MaxKeys bounds the number of hashes or addresses accepted by one lookup.
const MaxKeys = 1000

var errNotHex = errors.New("must be 0x-prefixed hex")

// KeysRequest carries the hashes or addresses of one lookup.
type KeysRequest struct {
	Keys []string `json:"keys"`
}

func (k KeysRequest) Validate() error {
	return validation.ValidateStruct(&k,
		validation.Field(&k.Keys,
			validation.Required,
			validation.Length(1, MaxKeys),
			validation.Each(validation.By(isHexKey)),
		),
	)
}

func isHexKey(value any) error {
	s, _ := value.(string)
	b, err := hexutil.Decode(s)
	if err != nil || len(b) == 0 {
		return errNotHex
	}
	return nil
}
