package toolspec

// Primitive is the scalar category of a PrimitiveDescriptor.
type Primitive int

// Scalar categories. Each maps to exactly one JSON Schema type keyword.
const (
	PrimitiveString Primitive = iota
	PrimitiveBool
	PrimitiveInteger
	PrimitiveNumber
)

// TypeDescriptor is an opaque, immutable handle to a type. The schema builder
// never inspects types directly; it only sees descriptors, so the core works
// the same with reflect-backed descriptors (DescribeType) and hand-built ones
// (String, ObjectOf, etc.).
//
// Implementations must be comparable (pointer identity or value equality):
// structured descriptors key the cycle guard during expansion.
type TypeDescriptor interface {
	TypeName() string
}

// PrimitiveDescriptor describes a scalar type (string, bool, integer, number).
type PrimitiveDescriptor interface {
	TypeDescriptor
	Primitive() Primitive
}

// ArrayDescriptor describes a fixed-size native array and its component type.
type ArrayDescriptor interface {
	TypeDescriptor
	Component() TypeDescriptor
}

// EnumDescriptor describes an enumeration. EnumValues returns the literal
// values in their declared order.
type EnumDescriptor interface {
	TypeDescriptor
	EnumValues() []string
}

// ListDescriptor describes an ordered generic collection. Element reports
// ok=false when the element type cannot be determined (a raw, type-erased
// container); the builder then falls back to a generic object item schema.
type ListDescriptor interface {
	TypeDescriptor
	Element() (TypeDescriptor, bool)
}

// ObjectDescriptor describes a structured record with named member fields.
type ObjectDescriptor interface {
	TypeDescriptor
	Fields() []Field
}

// Field is one named member of a structured type. Meta marks fields that
// belong to the type's definition machinery rather than instance data; the
// builder skips them during expansion.
type Field struct {
	Name        string
	Type        TypeDescriptor
	Description string
	Meta        bool
}

type primitiveType struct {
	name string
	kind Primitive
}

func (p primitiveType) TypeName() string     { return p.name }
func (p primitiveType) Primitive() Primitive { return p.kind }

// Ready-made primitive descriptors for hand-built callables and tests.
var (
	String TypeDescriptor = primitiveType{name: "string", kind: PrimitiveString}
	Bool   TypeDescriptor = primitiveType{name: "bool", kind: PrimitiveBool}
	Int    TypeDescriptor = primitiveType{name: "int", kind: PrimitiveInteger}
	Number TypeDescriptor = primitiveType{name: "number", kind: PrimitiveNumber}
)

type arrayType struct {
	elem TypeDescriptor
}

func (a arrayType) TypeName() string {
	if a.elem == nil {
		return "array"
	}
	return "array of " + a.elem.TypeName()
}

func (a arrayType) Component() TypeDescriptor { return a.elem }

// ArrayOf returns a descriptor for a fixed-size array of elem.
func ArrayOf(elem TypeDescriptor) TypeDescriptor { return arrayType{elem: elem} }

type listType struct {
	elem TypeDescriptor
}

func (l listType) TypeName() string {
	if l.elem == nil {
		return "list"
	}
	return "list of " + l.elem.TypeName()
}

func (l listType) Element() (TypeDescriptor, bool) { return l.elem, l.elem != nil }

// ListOf returns a descriptor for an ordered collection of elem.
func ListOf(elem TypeDescriptor) TypeDescriptor { return listType{elem: elem} }

// RawList returns a descriptor for a collection whose element type is unknown
// (the Go analogue of a type-erased container, e.g. []any).
func RawList() TypeDescriptor { return listType{} }

type enumType struct {
	name   string
	values []string
}

func (e *enumType) TypeName() string { return e.name }

func (e *enumType) EnumValues() []string {
	return append([]string(nil), e.values...)
}

// EnumOf returns a descriptor for an enumeration with the given literal
// values. Declaration order is preserved in generated schemas.
func EnumOf(name string, values ...string) TypeDescriptor {
	return &enumType{name: name, values: append([]string(nil), values...)}
}

// ObjectType is a hand-built structured descriptor. Fields may be added after
// construction with Add, which is how self-referential type graphs are built:
//
//	node := toolspec.ObjectOf("Node")
//	node.Add(toolspec.Field{Name: "next", Type: node})
//
// ObjectType is identity-compared: two ObjectOf calls with the same name are
// distinct types for the cycle guard.
type ObjectType struct {
	name   string
	fields []Field
}

func (o *ObjectType) TypeName() string { return o.name }

func (o *ObjectType) Fields() []Field {
	return append([]Field(nil), o.fields...)
}

// Add appends member fields and returns the descriptor for chaining.
func (o *ObjectType) Add(fields ...Field) *ObjectType {
	o.fields = append(o.fields, fields...)
	return o
}

// ObjectOf returns a structured descriptor with the given member fields.
func ObjectOf(name string, fields ...Field) *ObjectType {
	return (&ObjectType{name: name}).Add(fields...)
}
