package core

import "encoding/json"

// AddressActivity splits the records touching an address by role.
type AddressActivity struct {
	From []json.RawMessage `json:"from"`
	To   []json.RawMessage `json:"to"`
}
