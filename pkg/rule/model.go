package rule

import (
	"fmt"
	"reflect"
)

// DefaultKeyName is the key column assumed for entities given by table name.
const DefaultKeyName = "id"

// Model is an entity backed by a database table.
type Model interface {
	TableName() string
	KeyName() string
}

// Keyed is an entity that exposes its primary key value.
type Keyed interface {
	Key() any
}

// ResolveTable returns the table and key column for an entity given as a
// literal table name, a Model instance, or a reflect.Type whose value (or
// pointer) implements Model.
func ResolveTable(entity any) (table, key string, err error) {
	switch v := entity.(type) {
	case string:
		return v, DefaultKeyName, nil
	case reflect.Type:
		if m, ok := instantiate(v); ok {
			return m.TableName(), m.KeyName(), nil
		}
	case Model:
		return v.TableName(), v.KeyName(), nil
	}
	return "", "", fmt.Errorf("%w: %T", ErrUnresolvableEntity, entity)
}

func instantiate(t reflect.Type) (Model, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	ptr := reflect.New(t)
	if m, ok := ptr.Interface().(Model); ok {
		return m, true
	}
	m, ok := ptr.Elem().Interface().(Model)
	return m, ok
}
