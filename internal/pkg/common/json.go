package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// ParseJSONBytes parses a JSON byte slice into v.
func ParseJSONBytes(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// make sure there is no trailing data
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

// ToJSON marshals v into a JSON string.
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
