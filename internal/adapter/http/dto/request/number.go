package request

import (
	"bytes"
	"encoding/json"
)

// NumberString accepts either a JSON string or a JSON number and keeps the
// raw text. Material fields are parsed later with the builder's lenient
// number rules ("12,5" is accepted).
type NumberString string

func (n *NumberString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumberString(num.String())
	return nil
}
