package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Uint64 is an unsigned 64-bit integer that the Aptos REST API encodes as a
// decimal JSON string ("123"). Bare JSON numbers are accepted too.
type Uint64 uint64

func (u Uint64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatUint(uint64(u), 10))
}

func (u *Uint64) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid u64 %q: %w", raw, err)
	}

	*u = Uint64(v)
	return nil
}

func (u Uint64) Uint64() uint64 {
	return uint64(u)
}
