// Package schema holds the type registry that drives serialization. Each
// registered type describes its attributes as (wire name, declared type)
// pairs; the serializer walks these descriptors instead of struct tags so the
// wire shape stays a pure data table that codegen can emit.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Declared type tags for primitive attributes. Anything else is a named type,
// "list[T]" or "dict(K,V)".
const (
	TypeInt      = "int"
	TypeLong     = "long"
	TypeFloat    = "float"
	TypeStr      = "str"
	TypeBool     = "bool"
	TypeDate     = "date"
	TypeDatetime = "datetime"
	TypeObject   = "object"
)

// Attr describes one attribute of a registered type: the in-process
// snake_case name, the camelCase wire key, and the declared type.
type Attr struct {
	Name string
	Wire string
	Type string
}

// Descriptor describes one named type. New must return a pointer to the zero
// value of the Go struct backing the type.
type Descriptor struct {
	TypeName string
	Attrs    []Attr
	New      func() any

	// ResolveSubtype, when set, inspects a decoded wire tree and returns the
	// name of the concrete subtype to dispatch to, or "" to keep TypeName.
	ResolveSubtype func(tree map[string]any) string

	// fields[i] is the struct field index bound to Attrs[i], resolved once at
	// registration.
	fields []int
	goType reflect.Type
}

var (
	mu       sync.RWMutex
	byName   = map[string]*Descriptor{}
	byGoType = map[reflect.Type]*Descriptor{}
)

// Register adds a descriptor to the registry. It panics on any inconsistency:
// registration runs from init functions and a broken table is a programming
// error, not a runtime condition.
func Register(d *Descriptor) {
	if d.TypeName == "" {
		panic("schema: descriptor without a type name")
	}
	if d.New == nil {
		panic(fmt.Sprintf("schema: %s has no constructor", d.TypeName))
	}

	rt := reflect.TypeOf(d.New())
	if rt.Kind() != reflect.Ptr || rt.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("schema: %s constructor must return a struct pointer", d.TypeName))
	}
	st := rt.Elem()

	seenName := make(map[string]bool, len(d.Attrs))
	seenWire := make(map[string]bool, len(d.Attrs))
	d.fields = make([]int, len(d.Attrs))
	for i, a := range d.Attrs {
		if seenName[a.Name] || seenWire[a.Wire] {
			panic(fmt.Sprintf("schema: %s has duplicate attribute %q / wire key %q", d.TypeName, a.Name, a.Wire))
		}
		seenName[a.Name] = true
		seenWire[a.Wire] = true

		goName := fieldName(a.Name)
		f, ok := st.FieldByName(goName)
		if !ok {
			panic(fmt.Sprintf("schema: %s attribute %q has no struct field %s", d.TypeName, a.Name, goName))
		}
		d.fields[i] = f.Index[0]
	}
	d.goType = st

	mu.Lock()
	defer mu.Unlock()
	if _, ok := byName[d.TypeName]; ok {
		panic(fmt.Sprintf("schema: %s registered twice", d.TypeName))
	}
	byName[d.TypeName] = d
	byGoType[st] = d
}

// Lookup returns the descriptor registered under name, or nil.
func Lookup(name string) *Descriptor {
	mu.RLock()
	defer mu.RUnlock()
	return byName[name]
}

func lookupGoType(t reflect.Type) *Descriptor {
	mu.RLock()
	defer mu.RUnlock()
	return byGoType[t]
}

// initialisms maps snake_case segments that become fully upper-cased in Go
// field names, the way the upstream API types spell them.
var initialisms = map[string]string{
	"api": "API",
	"dns": "DNS",
	"id":  "ID",
	"ip":  "IP",
	"tls": "TLS",
	"tty": "TTY",
	"uid": "UID",
	"url": "URL",
}

// fieldName converts a snake_case attribute name to the bound Go field name:
// "api_version" -> "APIVersion", "grace_period_seconds" -> "GracePeriodSeconds".
func fieldName(attr string) string {
	parts := strings.Split(attr, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if up, ok := initialisms[p]; ok {
			b.WriteString(up)
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}

// ResolveKind composes the registered type name for a wire object from its
// apiVersion and kind: every path segment of apiVersion is capitalized and
// concatenated, the kind gets its first rune capitalized, and a trailing
// "list" becomes "List".
//
//	ResolveKind("v1", "Pod")                        -> "V1Pod"
//	ResolveKind("extensions/v1beta1", "Deployment") -> "ExtensionsV1beta1Deployment"
//	ResolveKind("v1", "Namespacelist")              -> "V1NamespaceList"
func ResolveKind(apiVersion, kind string) string {
	var b strings.Builder
	for _, seg := range strings.Split(apiVersion, "/") {
		b.WriteString(capitalize(seg))
	}
	kind = capitalize(kind)
	if strings.HasSuffix(kind, "list") {
		kind = strings.TrimSuffix(kind, "list") + "List"
	}
	b.WriteString(kind)
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
