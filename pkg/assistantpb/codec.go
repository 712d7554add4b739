package assistantpb

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype both sides of the wire use.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec exchanges the hand-maintained wire structs as JSON frames.
// Registering it makes the server pick it up by content-subtype; clients opt
// in through DefaultCallOptions (see NewAssistantClient).
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("json codec marshal: %w", err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("json codec unmarshal: %w", err)
	}
	return nil
}

func (jsonCodec) Name() string {
	return CodecName
}

// CallOption returns the per-call option that selects this codec.
func CallOption() grpc.CallOption {
	return grpc.CallContentSubtype(CodecName)
}
