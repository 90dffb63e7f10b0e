package collcodec

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections/codec"
)

type jsonValue[T any] struct {
	name string
}

// JSONValue returns a collections value codec that persists values as their
// canonical JSON encoding. State records in this repository are plain Go
// structs with JSON tags, so one codec serves every module.
func JSONValue[T any](name string) codec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("decoding %s: %w", c.name, err)
	}
	return value, nil
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValue[T]) ValueType() string {
	return c.name
}
