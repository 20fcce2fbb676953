package graph

import "strings"

// TypeForm is the declared form of a type.
type TypeForm string

const (
	FormClass     TypeForm = "class"
	FormInterface TypeForm = "interface"
	FormRecord    TypeForm = "record"
	FormEnum      TypeForm = "enum"
)

// Modifier is a declared modifier on a type or member.
type Modifier string

const (
	ModPublic    Modifier = "public"
	ModProtected Modifier = "protected"
	ModPrivate   Modifier = "private"
	ModStatic    Modifier = "static"
	ModFinal     Modifier = "final"
	ModAbstract  Modifier = "abstract"
)

// TypeRef is a reference to a type by qualified name, possibly carrying
// generic type arguments. A reference may point outside the analyzed
// codebase; resolution against the graph decides whether it is internal.
type TypeRef struct {
	Name     string    `json:"name"`
	TypeArgs []TypeRef `json:"typeArgs,omitempty"`
}

// SimpleName returns the last segment of the referenced name.
func (r TypeRef) SimpleName() string {
	if i := strings.LastIndexByte(r.Name, '.'); i >= 0 {
		return r.Name[i+1:]
	}
	return r.Name
}

// IsVoid reports whether the reference is the void pseudo-type.
func (r TypeRef) IsVoid() bool {
	return r.Name == "void" || r.Name == ""
}

// AnnotationRef is an annotation marker attached to a type or member.
type AnnotationRef struct {
	Name string `json:"name"`
}

// SimpleName returns the last segment of the annotation name.
func (a AnnotationRef) SimpleName() string {
	if i := strings.LastIndexByte(a.Name, '.'); i >= 0 {
		return a.Name[i+1:]
	}
	return a.Name
}

// Node is implemented by all graph nodes.
type Node interface {
	ID() NodeId
	SimpleName() string
	QualifiedName() string
}

// Member is implemented by nodes declared inside a type.
type Member interface {
	Node
	DeclaringTypeId() NodeId
	DeclaringTypeName() string
	Modifiers() []Modifier
}

// TypeNode represents a declared type.
type TypeNode struct {
	Qualified  string
	Form       TypeForm
	Mods       []Modifier
	Annots     []AnnotationRef
	Supertype  *TypeRef
	Interfaces []TypeRef
}

func (t *TypeNode) ID() NodeId            { return TypeId(t.Qualified) }
func (t *TypeNode) QualifiedName() string { return t.Qualified }

func (t *TypeNode) SimpleName() string {
	if i := strings.LastIndexByte(t.Qualified, '.'); i >= 0 {
		return t.Qualified[i+1:]
	}
	return t.Qualified
}

// PackageName returns the package portion of the qualified name,
// or "" for an unpackaged type.
func (t *TypeNode) PackageName() string {
	if i := strings.LastIndexByte(t.Qualified, '.'); i >= 0 {
		return t.Qualified[:i]
	}
	return ""
}

func (t *TypeNode) IsInterface() bool { return t.Form == FormInterface }
func (t *TypeNode) IsRecord() bool    { return t.Form == FormRecord }
func (t *TypeNode) IsEnum() bool      { return t.Form == FormEnum }

// IsAbstract reports whether the type carries the abstract modifier.
func (t *TypeNode) IsAbstract() bool {
	for _, m := range t.Mods {
		if m == ModAbstract {
			return true
		}
	}
	return false
}

// HasAnnotation reports whether the type carries an annotation with the
// given simple name.
func (t *TypeNode) HasAnnotation(simpleName string) bool {
	for _, a := range t.Annots {
		if a.SimpleName() == simpleName {
			return true
		}
	}
	return false
}

// FieldNode represents a declared field.
type FieldNode struct {
	Name          string
	DeclaringType string
	Type          TypeRef
	Mods          []Modifier
	Annots        []AnnotationRef
}

func (f *FieldNode) ID() NodeId                { return FieldId(f.DeclaringType, f.Name) }
func (f *FieldNode) SimpleName() string        { return f.Name }
func (f *FieldNode) QualifiedName() string     { return f.DeclaringType + "#" + f.Name }
func (f *FieldNode) DeclaringTypeId() NodeId   { return TypeId(f.DeclaringType) }
func (f *FieldNode) DeclaringTypeName() string { return f.DeclaringType }
func (f *FieldNode) Modifiers() []Modifier     { return f.Mods }

// IsFinal reports whether the field carries the final modifier.
func (f *FieldNode) IsFinal() bool {
	for _, m := range f.Mods {
		if m == ModFinal {
			return true
		}
	}
	return false
}

// HasAnnotation reports whether the field carries an annotation with the
// given simple name.
func (f *FieldNode) HasAnnotation(simpleName string) bool {
	for _, a := range f.Annots {
		if a.SimpleName() == simpleName {
			return true
		}
	}
	return false
}

// MethodNode represents a declared method.
type MethodNode struct {
	Name          string
	DeclaringType string
	ReturnType    TypeRef
	Params        []TypeRef
	Mods          []Modifier
	Annots        []AnnotationRef
}

func (m *MethodNode) ID() NodeId {
	return MethodId(m.DeclaringType, m.Name, m.signature())
}

func (m *MethodNode) SimpleName() string { return m.Name }

func (m *MethodNode) QualifiedName() string {
	return m.DeclaringType + "#" + m.Name + "(" + m.signature() + ")"
}

func (m *MethodNode) DeclaringTypeId() NodeId   { return TypeId(m.DeclaringType) }
func (m *MethodNode) DeclaringTypeName() string { return m.DeclaringType }
func (m *MethodNode) Modifiers() []Modifier     { return m.Mods }

func (m *MethodNode) signature() string {
	names := make([]string, len(m.Params))
	for i, p := range m.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ",")
}

// ConstructorNode represents a declared constructor.
type ConstructorNode struct {
	DeclaringType string
	Params        []TypeRef
	Mods          []Modifier
}

func (c *ConstructorNode) ID() NodeId {
	return ConstructorId(c.DeclaringType, c.signature())
}

func (c *ConstructorNode) SimpleName() string        { return "<init>" }
func (c *ConstructorNode) QualifiedName() string     { return c.DeclaringType + "#<init>" }
func (c *ConstructorNode) DeclaringTypeId() NodeId   { return TypeId(c.DeclaringType) }
func (c *ConstructorNode) DeclaringTypeName() string { return c.DeclaringType }
func (c *ConstructorNode) Modifiers() []Modifier     { return c.Mods }

func (c *ConstructorNode) signature() string {
	names := make([]string, len(c.Params))
	for i, p := range c.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ",")
}
