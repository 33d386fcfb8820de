package legal

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes text values as a JSON string and list values as a
// JSON array, matching the wire shape callers supply.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = FieldValue{Text: text}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		*v = FieldValue{List: list}
		return nil
	}

	return fmt.Errorf("field value must be a string or an array of strings")
}
