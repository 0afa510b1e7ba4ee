// Package toeicv1connect binds the toeic.v1 messages to connect handlers and clients.
package toeicv1connect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// CodecName is registered under connect's "json" name, so Connect, gRPC and gRPC-Web
// clients select it with application/json, application/grpc+json and
// application/grpc-web+json.
const CodecName = "json"

// JSONCodec serializes the plain toeic.v1 structs.
type JSONCodec struct{}

var _ connect.Codec = JSONCodec{}

func (JSONCodec) Name() string { return CodecName }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func noSideEffects(opts []connect.HandlerOption) []connect.HandlerOption {
	return append(opts[:len(opts):len(opts)], connect.WithIdempotency(connect.IdempotencyNoSideEffects))
}
