package apiv1connect

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const codecName = "json"

// Codec marshals the plain message structs of apiv1 as JSON. It is registered under the name Connect uses
// for application/json, replacing the protobuf JSON codec.
type Codec struct{}

func (Codec) Name() string {
	return codecName
}

func (Codec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", message, err)
	}

	return data, nil
}

func (Codec) Unmarshal(data []byte, message any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(message); err != nil {
		return fmt.Errorf("unmarshal %T: %w", message, err)
	}

	return nil
}
