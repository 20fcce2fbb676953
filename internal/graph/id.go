package graph

import (
	"fmt"
	"strings"
)

// NodeKind identifies the kind of element a NodeId refers to.
type NodeKind string

const (
	KindType        NodeKind = "type"
	KindField       NodeKind = "field"
	KindMethod      NodeKind = "method"
	KindConstructor NodeKind = "ctor"
)

// NodeId is a stable, totally ordered key for a node.
//
// The encoded form is "kind:qualifiedName" for types and
// "kind:declaringType#member" (methods additionally carry a parameter
// signature, e.g. "method:com.example.Order#total()" ). Because the
// encoding is a plain string, NodeId is comparable, usable as a map key,
// and orders lexicographically.
type NodeId string

// TypeId returns the id for a type with the given qualified name.
func TypeId(qualifiedName string) NodeId {
	return NodeId(string(KindType) + ":" + qualifiedName)
}

// FieldId returns the id for a field declared in the given type.
func FieldId(declaringType, fieldName string) NodeId {
	return NodeId(string(KindField) + ":" + declaringType + "#" + fieldName)
}

// MethodId returns the id for a method declared in the given type.
// The signature is the comma-joined list of parameter type names.
func MethodId(declaringType, methodName, signature string) NodeId {
	return NodeId(fmt.Sprintf("%s:%s#%s(%s)", KindMethod, declaringType, methodName, signature))
}

// ConstructorId returns the id for a constructor of the given type.
func ConstructorId(declaringType, signature string) NodeId {
	return NodeId(fmt.Sprintf("%s:%s#<init>(%s)", KindConstructor, declaringType, signature))
}

// Kind returns the node kind encoded in the id.
func (id NodeId) Kind() NodeKind {
	s := string(id)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return NodeKind(s[:i])
	}
	return ""
}

// IsType reports whether this id refers to a type node.
func (id NodeId) IsType() bool {
	return id.Kind() == KindType
}

// QualifiedName returns the qualified name of the type this id refers to,
// or of the declaring type for member ids.
func (id NodeId) QualifiedName() string {
	s := string(id)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return s
}

// SimpleName returns the last dot-separated segment of the qualified name.
func (id NodeId) SimpleName() string {
	name := id.QualifiedName()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (id NodeId) String() string {
	return string(id)
}
