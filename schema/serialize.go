package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/rakunlabs/kuba/apierr"
)

// Date is a calendar date without a time component. It serializes as
// "2006-01-02" where datetime attributes serialize as RFC 3339.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// ToWire converts a typed value into a JSON-encodable tree: primitives pass
// through, times become ISO-8601 strings, slices and string-keyed maps recurse
// and registered objects become maps keyed by their wire names with nil
// attributes omitted.
func ToWire(v any) (any, error) {
	return toWire(reflect.ValueOf(v))
}

func toWire(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return toWire(rv.Elem())

	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.Interface(), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface(), nil // raw bytes, json handles the encoding
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			sub, err := toWire(rv.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = sub
		}
		return out, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, apierr.Serialization("map key type %s is not a string", rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			sub, err := toWire(iter.Value())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = sub
		}
		return out, nil

	case reflect.Struct:
		switch t := rv.Interface().(type) {
		case time.Time:
			return t.Format(time.RFC3339), nil
		case Date:
			return t.Format(dateLayout), nil
		}

		desc := lookupGoType(rv.Type())
		if desc == nil {
			return nil, apierr.Serialization("type %s is not registered", rv.Type())
		}

		out := make(map[string]any, len(desc.Attrs))
		for i, a := range desc.Attrs {
			fv := rv.Field(desc.fields[i])
			if isNilish(fv) {
				continue
			}
			sub, err := toWire(fv)
			if err != nil {
				return nil, err
			}
			out[a.Wire] = sub
		}
		return out, nil
	}

	return nil, apierr.Serialization("cannot serialize value of kind %s", rv.Kind())
}

// isNilish reports whether a struct field holds the wire equivalent of null.
func isNilish(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}

// FromWire decodes a JSON tree into the value described by declared. Named
// types come back as the registered struct pointer; "list[X]" as []any;
// "dict(K,V)" as map[string]any with keys taken verbatim (the server only
// ever sends string keys); primitives as their converted Go value.
func FromWire(tree any, declared string) (any, error) {
	if tree == nil {
		return nil, nil
	}

	if elem, ok := listElem(declared); ok {
		arr, ok := tree.([]any)
		if !ok {
			return nil, apierr.Serialization("expected array for %s, got %T", declared, tree)
		}
		out := make([]any, len(arr))
		for i, sub := range arr {
			v, err := FromWire(sub, elem)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	if val, ok := dictValue(declared); ok {
		m, ok := tree.(map[string]any)
		if !ok {
			return nil, apierr.Serialization("expected object for %s, got %T", declared, tree)
		}
		out := make(map[string]any, len(m))
		for k, sub := range m {
			v, err := FromWire(sub, val)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}

	if isPrimitive(declared) {
		return convertPrimitive(tree, declared)
	}

	desc := Lookup(declared)
	if desc == nil {
		return nil, apierr.Validation("unknown schema type %q", declared)
	}

	m, ok := tree.(map[string]any)
	if !ok {
		return nil, apierr.Serialization("expected object for %s, got %T", declared, tree)
	}

	// Polymorphic types dispatch to a concrete subtype by discriminator.
	if desc.ResolveSubtype != nil {
		if name := desc.ResolveSubtype(m); name != "" && name != desc.TypeName {
			if sub := Lookup(name); sub != nil {
				desc = sub
			}
		}
	}

	obj := desc.New()
	if err := fillObject(desc, obj, m); err != nil {
		return nil, err
	}
	return obj, nil
}

// fillObject decodes each known wire field of m into the matching attribute
// of obj. Missing wire fields leave the attribute nil, unknown wire fields
// are ignored.
func fillObject(desc *Descriptor, obj any, m map[string]any) error {
	rv := reflect.ValueOf(obj).Elem()
	for i, a := range desc.Attrs {
		raw, ok := m[a.Wire]
		if !ok || raw == nil {
			continue
		}
		if err := decodeInto(rv.Field(desc.fields[i]), raw, a.Type); err != nil {
			return fmt.Errorf("attribute %s.%s: %w", desc.TypeName, a.Name, err)
		}
	}
	return nil
}

// decodeInto decodes a wire tree directly into a struct field, so slices and
// maps come out with their concrete element types instead of []any.
func decodeInto(dst reflect.Value, tree any, declared string) error {
	if tree == nil {
		return nil
	}

	switch dst.Kind() {
	case reflect.Ptr:
		p := reflect.New(dst.Type().Elem())
		if err := decodeInto(p.Elem(), tree, declared); err != nil {
			return err
		}
		dst.Set(p)
		return nil

	case reflect.Interface:
		dst.Set(reflect.ValueOf(tree))
		return nil

	case reflect.Slice:
		elemDecl, ok := listElem(declared)
		if !ok {
			return apierr.Serialization("declared type %q does not match slice field", declared)
		}
		arr, ok := tree.([]any)
		if !ok {
			return apierr.Serialization("expected array for %s, got %T", declared, tree)
		}
		out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, sub := range arr {
			if sub == nil {
				continue
			}
			if err := decodeInto(out.Index(i), sub, elemDecl); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil

	case reflect.Map:
		valDecl, ok := dictValue(declared)
		if !ok {
			return apierr.Serialization("declared type %q does not match map field", declared)
		}
		m, ok := tree.(map[string]any)
		if !ok {
			return apierr.Serialization("expected object for %s, got %T", declared, tree)
		}
		out := reflect.MakeMapWithSize(dst.Type(), len(m))
		for k, sub := range m {
			ev := reflect.New(dst.Type().Elem()).Elem()
			if sub != nil {
				if err := decodeInto(ev, sub, valDecl); err != nil {
					return err
				}
			}
			out.SetMapIndex(reflect.ValueOf(k), ev)
		}
		dst.Set(out)
		return nil

	case reflect.Struct:
		switch dst.Type() {
		case reflect.TypeOf(time.Time{}):
			t, err := parseDatetime(tree)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(t))
			return nil
		case reflect.TypeOf(Date{}):
			d, err := parseDate(tree)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(d))
			return nil
		}

		desc := Lookup(declared)
		if desc == nil {
			return apierr.Validation("unknown schema type %q", declared)
		}
		if desc.goType != dst.Type() {
			return apierr.Serialization("declared type %s is backed by %s, field is %s", declared, desc.goType, dst.Type())
		}
		m, ok := tree.(map[string]any)
		if !ok {
			return apierr.Serialization("expected object for %s, got %T", declared, tree)
		}
		return fillObject(desc, dst.Addr().Interface(), m)

	case reflect.String:
		s, ok := tree.(string)
		if !ok {
			return apierr.Serialization("expected string, got %T", tree)
		}
		dst.SetString(s)
		return nil

	case reflect.Bool:
		b, ok := tree.(bool)
		if !ok {
			return apierr.Serialization("expected bool, got %T", tree)
		}
		dst.SetBool(b)
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := tree.(float64)
		if !ok {
			return apierr.Serialization("expected number, got %T", tree)
		}
		dst.SetInt(int64(f))
		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := tree.(float64)
		if !ok {
			return apierr.Serialization("expected number, got %T", tree)
		}
		dst.SetFloat(f)
		return nil
	}

	return apierr.Serialization("cannot decode into field of kind %s", dst.Kind())
}

// Unpack decodes a raw JSON document into the registered type selected by its
// embedded apiVersion and kind discriminator.
func Unpack(data []byte) (any, error) {
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, &apierr.SerializationError{Msg: "unpack: invalid json", Err: err}
	}

	apiVersion, _ := tree["apiVersion"].(string)
	kind, _ := tree["kind"].(string)
	if apiVersion == "" || kind == "" {
		return nil, apierr.Serialization("unpack: document has no apiVersion/kind")
	}

	return FromWire(tree, ResolveKind(apiVersion, kind))
}

func isPrimitive(declared string) bool {
	switch declared {
	case TypeInt, TypeLong, TypeFloat, TypeStr, TypeBool, TypeDate, TypeDatetime, TypeObject:
		return true
	}
	return false
}

func convertPrimitive(tree any, declared string) (any, error) {
	switch declared {
	case TypeObject:
		return tree, nil
	case TypeStr:
		s, ok := tree.(string)
		if !ok {
			return nil, apierr.Serialization("expected string, got %T", tree)
		}
		return s, nil
	case TypeBool:
		b, ok := tree.(bool)
		if !ok {
			return nil, apierr.Serialization("expected bool, got %T", tree)
		}
		return b, nil
	case TypeInt, TypeLong:
		f, ok := tree.(float64)
		if !ok {
			return nil, apierr.Serialization("expected number, got %T", tree)
		}
		return int64(f), nil
	case TypeFloat:
		f, ok := tree.(float64)
		if !ok {
			return nil, apierr.Serialization("expected number, got %T", tree)
		}
		return f, nil
	case TypeDate:
		return parseDate(tree)
	case TypeDatetime:
		return parseDatetime(tree)
	}
	return nil, apierr.Serialization("unknown primitive tag %q", declared)
}

func parseDatetime(tree any) (time.Time, error) {
	s, ok := tree.(string)
	if !ok {
		return time.Time{}, apierr.Serialization("expected datetime string, got %T", tree)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, &apierr.SerializationError{Msg: fmt.Sprintf("failed to parse %q as datetime", s), Err: err}
	}
	return t, nil
}

func parseDate(tree any) (Date, error) {
	s, ok := tree.(string)
	if !ok {
		return Date{}, apierr.Serialization("expected date string, got %T", tree)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &apierr.SerializationError{Msg: fmt.Sprintf("failed to parse %q as date", s), Err: err}
	}
	return Date{Time: t}, nil
}

// listElem unpacks "list[T]" into T.
func listElem(declared string) (string, bool) {
	if len(declared) > 6 && declared[:5] == "list[" && declared[len(declared)-1] == ']' {
		return declared[5 : len(declared)-1], true
	}
	return "", false
}

// dictValue unpacks "dict(K, V)" into V. Keys are not decoded: the server
// only sends string keys, so they are taken verbatim.
func dictValue(declared string) (string, bool) {
	if len(declared) > 7 && declared[:5] == "dict(" && declared[len(declared)-1] == ')' {
		inner := declared[5 : len(declared)-1]
		for i := 0; i < len(inner); i++ {
			if inner[i] == ',' {
				v := inner[i+1:]
				for len(v) > 0 && v[0] == ' ' {
					v = v[1:]
				}
				return v, true
			}
		}
	}
	return "", false
}
