package api

import (
	"bytes"
	"fmt"
	"strconv"
)

// Decimal is a numeric value the backend serves either as a JSON number or
// as a string ("3.50"), the way database decimals often come off the wire.
// It decodes both forms and always encodes as a number.
type Decimal float64

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*d = 0
		return nil
	}

	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("api: malformed numeric string %s: %w", raw, err)
		}
		raw = []byte(unquoted)
	}

	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return fmt.Errorf("api: malformed number %s: %w", raw, err)
	}
	*d = Decimal(v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(d), 'f', -1, 64)), nil
}

// Float64 returns the plain float value.
func (d Decimal) Float64() float64 {
	return float64(d)
}
