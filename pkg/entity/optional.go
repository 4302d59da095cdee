package entity

import "github.com/bytedance/sonic"

// Optional marks a patch field as either unset or set to Value.
// A field decoded from JSON is set whenever its key is present, including
// an explicit null, so Optional[*T] can express "set to NULL".
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Set = true
	o.Value = v
	return nil
}

// Pointer returns a nil *T for an unset field and a pointer to Value
// otherwise, so "omitnil" validation rules skip unset fields only.
func (o Optional[T]) Pointer() any {
	if !o.Set {
		return (*T)(nil)
	}
	return &o.Value
}
