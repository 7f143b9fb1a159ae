package dto

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Optional records whether a merge-patch key was sent and whether it was null.
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// IsSet is true when the key carried a non-null value.
func (o Optional[T]) IsSet() bool {
	return o.Present && !o.Null
}

type ParentEntityPatch struct {
	Id            *int64
	RequiredField Optional[string]
}

// ChildEntityPatch has no owner/parent: relationships are not patchable.
type ChildEntityPatch struct {
	Id         *int64
	ChildField Optional[string]
}

func DecodeParentEntityPatch(body []byte) (*ParentEntityPatch, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	patch := &ParentEntityPatch{}
	if patch.Id, err = decodeId(raw); err != nil {
		return nil, err
	}
	if patch.RequiredField, err = decodeField[string](raw, "requiredField"); err != nil {
		return nil, err
	}
	return patch, nil
}

func DecodeChildEntityPatch(body []byte) (*ChildEntityPatch, error) {
	raw, err := decodeObject(body)
	if err != nil {
		return nil, err
	}
	patch := &ChildEntityPatch{}
	if patch.Id, err = decodeId(raw); err != nil {
		return nil, err
	}
	if patch.ChildField, err = decodeField[string](raw, "childField"); err != nil {
		return nil, err
	}
	return patch, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid merge-patch document: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("invalid merge-patch document: expected an object")
	}
	return raw, nil
}

func decodeId(raw map[string]json.RawMessage) (*int64, error) {
	field, err := decodeField[int64](raw, "id")
	if err != nil || !field.IsSet() {
		return nil, err
	}
	id := field.Value
	return &id, nil
}

func decodeField[T any](raw map[string]json.RawMessage, key string) (Optional[T], error) {
	var out Optional[T]
	value, ok := raw[key]
	if !ok {
		return out, nil
	}
	out.Present = true
	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		out.Null = true
		return out, nil
	}
	if err := json.Unmarshal(value, &out.Value); err != nil {
		return out, fmt.Errorf("invalid value for %q: %w", key, err)
	}
	return out, nil
}
