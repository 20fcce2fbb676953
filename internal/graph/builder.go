package graph

import (
	"sort"

	"archlens/internal/facts"
	"archlens/internal/logging"
)

// Builder turns extracted facts into a populated graph.
type Builder struct {
	logger *logging.Logger
}

// NewBuilder creates a builder logging through the given logger.
func NewBuilder(logger *logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Builder{logger: logger}
}

// Build constructs a graph from the given facts. Types are inserted in
// lexicographic order of qualified name so that identical facts always
// produce an identically ordered graph. References to types that are not
// declared in the facts are treated as external and produce no edges.
func (b *Builder) Build(f *facts.Facts) (*Graph, error) {
	g := New(Metadata{
		BasePackage:   f.BasePackage,
		LanguageLevel: f.LanguageLevel,
		SourceUnits:   f.SourceUnits,
		Style:         StyleUnknown,
	})

	decls := make([]facts.TypeDecl, len(f.Types))
	copy(decls, f.Types)
	sort.Slice(decls, func(i, j int) bool {
		return decls[i].QualifiedName < decls[j].QualifiedName
	})

	// First pass: all type nodes, so that edge resolution in the later
	// passes can see every declared type.
	for _, decl := range decls {
		if err := g.AddNode(typeNodeFrom(decl)); err != nil {
			return nil, err
		}
	}

	for _, decl := range decls {
		if err := b.addMembers(g, decl); err != nil {
			return nil, err
		}
	}
	for _, decl := range decls {
		if err := b.addRawEdges(g, decl); err != nil {
			return nil, err
		}
	}

	g.SetStyle(DetectStyle(g.Indexes().Packages()))

	b.logger.Info("graph built", map[string]interface{}{
		"types": g.TypeCount(),
		"nodes": g.NodeCount(),
		"edges": g.EdgeCount(),
		"style": string(g.Metadata().Style),
	})
	return g, nil
}

func typeNodeFrom(decl facts.TypeDecl) *TypeNode {
	t := &TypeNode{
		Qualified: decl.QualifiedName,
		Form:      TypeForm(decl.Form),
		Mods:      modifiersFrom(decl.Modifiers),
		Annots:    annotationsFrom(decl.Annotations),
	}
	if decl.Supertype != nil {
		ref := typeRefFrom(*decl.Supertype)
		t.Supertype = &ref
	}
	for _, iface := range decl.Interfaces {
		t.Interfaces = append(t.Interfaces, typeRefFrom(iface))
	}
	return t
}

func (b *Builder) addMembers(g *Graph, decl facts.TypeDecl) error {
	typeId := TypeId(decl.QualifiedName)
	for _, fd := range decl.Fields {
		field := &FieldNode{
			Name:          fd.Name,
			DeclaringType: decl.QualifiedName,
			Type:          typeRefFrom(fd.Type),
			Mods:          modifiersFrom(fd.Modifiers),
			Annots:        annotationsFrom(fd.Annotations),
		}
		if err := g.AddNode(field); err != nil {
			return err
		}
		if err := g.AddEdge(Raw(typeId, field.ID(), EdgeDeclares)); err != nil {
			return err
		}
	}
	for _, md := range decl.Methods {
		method := &MethodNode{
			Name:          md.Name,
			DeclaringType: decl.QualifiedName,
			ReturnType:    typeRefFrom(md.ReturnType),
			Params:        typeRefsFrom(md.Params),
			Mods:          modifiersFrom(md.Modifiers),
			Annots:        annotationsFrom(md.Annotations),
		}
		if err := g.AddNode(method); err != nil {
			return err
		}
		if err := g.AddEdge(Raw(typeId, method.ID(), EdgeDeclares)); err != nil {
			return err
		}
	}
	for _, cd := range decl.Constructors {
		ctor := &ConstructorNode{
			DeclaringType: decl.QualifiedName,
			Params:        typeRefsFrom(cd.Params),
			Mods:          modifiersFrom(cd.Modifiers),
		}
		if err := g.AddNode(ctor); err != nil {
			return err
		}
		if err := g.AddEdge(Raw(typeId, ctor.ID(), EdgeDeclares)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) addRawEdges(g *Graph, decl facts.TypeDecl) error {
	typeId := TypeId(decl.QualifiedName)

	if decl.Supertype != nil {
		if target, ok := resolveType(g, decl.Supertype.Name); ok {
			if err := addStructural(g, typeId, target, EdgeExtends); err != nil {
				return err
			}
		}
	}
	for _, iface := range decl.Interfaces {
		if target, ok := resolveType(g, iface.Name); ok {
			if err := addStructural(g, typeId, target, EdgeImplements); err != nil {
				return err
			}
		}
	}

	for _, fd := range decl.Fields {
		if err := addTypeRefEdges(g, typeId, typeRefFrom(fd.Type), EdgeFieldType); err != nil {
			return err
		}
	}
	for _, md := range decl.Methods {
		if err := addTypeRefEdges(g, typeId, typeRefFrom(md.ReturnType), EdgeReturnType); err != nil {
			return err
		}
		for _, p := range md.Params {
			if err := addTypeRefEdges(g, typeId, typeRefFrom(p), EdgeParameterType); err != nil {
				return err
			}
		}
	}
	for _, cd := range decl.Constructors {
		for _, p := range cd.Params {
			if err := addTypeRefEdges(g, typeId, typeRefFrom(p), EdgeParameterType); err != nil {
				return err
			}
		}
	}
	return nil
}

// addTypeRefEdges adds an edge of the given kind for a resolving ref and
// TYPE_ARGUMENT edges for each resolving type argument, one level deep.
func addTypeRefEdges(g *Graph, from NodeId, ref TypeRef, kind EdgeKind) error {
	if !ref.IsVoid() {
		if target, ok := resolveType(g, ref.Name); ok {
			if err := addStructural(g, from, target, kind); err != nil {
				return err
			}
		}
	}
	for _, arg := range ref.TypeArgs {
		if arg.IsVoid() {
			continue
		}
		if target, ok := resolveType(g, arg.Name); ok {
			if err := addStructural(g, from, target, EdgeTypeArgument); err != nil {
				return err
			}
		}
	}
	return nil
}

// addStructural records a structural edge and rolls it up into a generic
// REFERENCES edge between the two types. Duplicates are skipped so that a
// type referencing another several ways yields one edge per kind.
func addStructural(g *Graph, from, to NodeId, kind EdgeKind) error {
	if from == to {
		return nil
	}
	if !g.ContainsEdge(from, to, kind) {
		if err := g.AddEdge(Raw(from, to, kind)); err != nil {
			return err
		}
	}
	if !g.ContainsEdge(from, to, EdgeReferences) {
		if err := g.AddEdge(Raw(from, to, EdgeReferences)); err != nil {
			return err
		}
	}
	return nil
}

func resolveType(g *Graph, name string) (NodeId, bool) {
	id := TypeId(name)
	if g.ContainsNode(id) {
		return id, true
	}
	return "", false
}

func typeRefFrom(decl facts.TypeRefDecl) TypeRef {
	return TypeRef{Name: decl.Name, TypeArgs: typeRefsFrom(decl.TypeArgs)}
}

func typeRefsFrom(decls []facts.TypeRefDecl) []TypeRef {
	if len(decls) == 0 {
		return nil
	}
	out := make([]TypeRef, len(decls))
	for i, d := range decls {
		out[i] = typeRefFrom(d)
	}
	return out
}

func modifiersFrom(names []string) []Modifier {
	if len(names) == 0 {
		return nil
	}
	out := make([]Modifier, len(names))
	for i, n := range names {
		out[i] = Modifier(n)
	}
	return out
}

func annotationsFrom(names []string) []AnnotationRef {
	if len(names) == 0 {
		return nil
	}
	out := make([]AnnotationRef, len(names))
	for i, n := range names {
		out[i] = AnnotationRef{Name: n}
	}
	return out
}
