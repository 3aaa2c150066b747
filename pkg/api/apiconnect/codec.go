// Package apiconnect binds the tablepos services to Connect handlers and
// clients. Messages travel as JSON.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals api messages with encoding/json under the "json" name,
// which Connect maps to the application/json content type.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (Codec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}
