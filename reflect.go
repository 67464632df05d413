package toolspec

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

var (
	bigIntType   = reflect.TypeOf(big.Int{})
	bigFloatType = reflect.TypeOf(big.Float{})
	bigRatType   = reflect.TypeOf(big.Rat{})
)

// DescribeType adapts a reflect.Type to a TypeDescriptor. Pointers map to
// their element type (a *int parameter is still an integer), math/big types
// map to integer/number like any other arbitrary-precision scalar, and a
// slice of interface values becomes a raw list with an undetermined element.
// Kinds with no schema rendition (maps, channels, funcs) come back as generic
// objects rather than errors.
func DescribeType(t reflect.Type) TypeDescriptor {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		return DescribeType(t.Elem())
	case reflect.String:
		return String
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Number
	case reflect.Array:
		return ArrayOf(DescribeType(t.Elem()))
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Interface {
			return RawList()
		}
		return ListOf(DescribeType(t.Elem()))
	case reflect.Struct:
		switch t {
		case bigIntType:
			return Int
		case bigFloatType, bigRatType:
			return Number
		}
		return structType{t: t}
	default:
		return ObjectOf(t.String())
	}
}

// structType adapts a reflect struct type to ObjectDescriptor. It is a value
// wrapper around reflect.Type, so two descriptors derived independently from
// the same Go type compare equal and the cycle guard recognizes them.
type structType struct {
	t reflect.Type
}

func (s structType) TypeName() string { return s.t.String() }

// Fields enumerates the exported instance fields. Unexported fields and
// fields tagged json:"-" never reach the builder. The field name comes from
// the json tag when present; the description comes from the description tag
// (the same tag vocabulary the rest of this package's adapters use).
func (s structType) Fields() []Field {
	out := make([]Field, 0, s.t.NumField())
	for i := range s.t.NumField() {
		f := s.t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, skip := parseJSONTag(f)
		if skip {
			continue
		}
		out = append(out, Field{
			Name:        name,
			Type:        fieldDescriptor(f),
			Description: f.Tag.Get("description"),
		})
	}
	return out
}

// fieldDescriptor maps one struct field to a descriptor. A non-empty enum tag
// on a string-kinded field turns it into an enumeration with the tag's
// comma-separated literals, in declared order.
func fieldDescriptor(f reflect.StructField) TypeDescriptor {
	if tag := f.Tag.Get("enum"); tag != "" && baseType(f.Type).Kind() == reflect.String {
		return EnumOf(f.Type.String(), splitEnumTag(tag)...)
	}
	return DescribeType(f.Type)
}

// baseType unwraps pointers.
func baseType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func splitEnumTag(tag string) []string {
	parts := strings.Split(tag, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseJSONTag resolves the wire name of a field from its json tag, reporting
// whether the field carries omitempty and whether it is excluded (json:"-").
func parseJSONTag(f reflect.StructField) (name string, omitempty, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name = f.Name
	if tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				omitempty = true
			}
		}
	}
	return name, omitempty, false
}

// CallableFor enumerates the parameters of a tool whose arguments are carried
// by the tagged struct T (Go has no named function parameters at runtime, so
// an args struct is the carrier, one field per parameter). Returns
// ErrNotStruct when T is not a struct or a pointer to one.
//
// Tag vocabulary: json names the parameter, description attaches metadata,
// enum restricts a string parameter to the listed literals, and a non-empty
// inject tag marks a runtime-supplied value (e.g. inject:"session") that is
// excluded from the schema. A pointer field or ,omitempty marks the parameter
// optional; everything else is required.
func CallableFor[T any](name string, description ...string) (Callable, error) {
	t := baseType(reflect.TypeOf((*T)(nil)).Elem())
	if t.Kind() != reflect.Struct {
		return Callable{}, fmt.Errorf("callable %q args %s: %w", name, t.String(), ErrNotStruct)
	}
	c := Callable{Name: name, Description: description}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		pname, omitempty, skip := parseJSONTag(f)
		if skip {
			continue
		}
		c.Params = append(c.Params, Parameter{
			Name:        pname,
			Type:        fieldDescriptor(f),
			Description: f.Tag.Get("description"),
			Optional:    omitempty || f.Type.Kind() == reflect.Pointer,
			Injected:    f.Tag.Get("inject") != "",
		})
	}
	return c, nil
}
