package graph

// Indexes maintains secondary lookup tables over nodes and edges.
// They are populated incrementally as the graph is built and never
// recomputed, so lookups are O(1) in the number of candidates.
type Indexes struct {
	byPackage    map[string][]NodeId
	byForm       map[TypeForm][]NodeId
	byAnnotation map[string][]NodeId

	allTypes []NodeId

	declaredMembers map[NodeId][]NodeId
	declaringType   map[NodeId]NodeId
	supertypes      map[NodeId][]NodeId
	subtypes        map[NodeId][]NodeId
	implemented     map[NodeId][]NodeId
	implementors    map[NodeId][]NodeId
	fieldsByType    map[NodeId][]NodeId
}

func newIndexes() *Indexes {
	return &Indexes{
		byPackage:       make(map[string][]NodeId),
		byForm:          make(map[TypeForm][]NodeId),
		byAnnotation:    make(map[string][]NodeId),
		declaredMembers: make(map[NodeId][]NodeId),
		declaringType:   make(map[NodeId]NodeId),
		supertypes:      make(map[NodeId][]NodeId),
		subtypes:        make(map[NodeId][]NodeId),
		implemented:     make(map[NodeId][]NodeId),
		implementors:    make(map[NodeId][]NodeId),
		fieldsByType:    make(map[NodeId][]NodeId),
	}
}

func (ix *Indexes) indexNode(node Node) {
	switch n := node.(type) {
	case *TypeNode:
		id := n.ID()
		ix.allTypes = append(ix.allTypes, id)
		ix.byPackage[n.PackageName()] = append(ix.byPackage[n.PackageName()], id)
		ix.byForm[n.Form] = append(ix.byForm[n.Form], id)
		for _, a := range n.Annots {
			ix.byAnnotation[a.SimpleName()] = append(ix.byAnnotation[a.SimpleName()], id)
		}
	case Member:
		id := n.ID()
		declaring := n.DeclaringTypeId()
		ix.declaredMembers[declaring] = append(ix.declaredMembers[declaring], id)
		ix.declaringType[id] = declaring
	}
}

func (ix *Indexes) indexEdge(edge Edge) {
	switch edge.Kind {
	case EdgeExtends:
		ix.supertypes[edge.From] = append(ix.supertypes[edge.From], edge.To)
		ix.subtypes[edge.To] = append(ix.subtypes[edge.To], edge.From)
	case EdgeImplements:
		ix.implemented[edge.From] = append(ix.implemented[edge.From], edge.To)
		ix.implementors[edge.To] = append(ix.implementors[edge.To], edge.From)
	case EdgeFieldType:
		ix.fieldsByType[edge.To] = append(ix.fieldsByType[edge.To], edge.From)
	}
}

// TypesInPackage returns the ids of all types declared in the given package.
func (ix *Indexes) TypesInPackage(pkg string) []NodeId {
	return ix.byPackage[pkg]
}

// TypesByForm returns the ids of all types with the given form.
func (ix *Indexes) TypesByForm(form TypeForm) []NodeId {
	return ix.byForm[form]
}

// TypesByAnnotation returns the ids of all types annotated with the given
// simple annotation name.
func (ix *Indexes) TypesByAnnotation(simpleName string) []NodeId {
	return ix.byAnnotation[simpleName]
}

// Packages returns all package names that contain at least one type.
func (ix *Indexes) Packages() []string {
	out := make([]string, 0, len(ix.byPackage))
	for pkg := range ix.byPackage {
		out = append(out, pkg)
	}
	return out
}

// MembersOf returns the member ids declared by the given type.
func (ix *Indexes) MembersOf(typeId NodeId) []NodeId {
	return ix.declaredMembers[typeId]
}

// DeclaringTypeOf returns the declaring type of the given member id.
func (ix *Indexes) DeclaringTypeOf(memberId NodeId) (NodeId, bool) {
	id, ok := ix.declaringType[memberId]
	return id, ok
}

// SupertypesOf returns the declared supertypes of the given type.
func (ix *Indexes) SupertypesOf(typeId NodeId) []NodeId {
	return ix.supertypes[typeId]
}

// SubtypesOf returns the types extending the given type.
func (ix *Indexes) SubtypesOf(typeId NodeId) []NodeId {
	return ix.subtypes[typeId]
}

// InterfacesOf returns the interfaces implemented by the given type.
func (ix *Indexes) InterfacesOf(typeId NodeId) []NodeId {
	return ix.implemented[typeId]
}

// ImplementorsOf returns the types implementing the given interface.
func (ix *Indexes) ImplementorsOf(interfaceId NodeId) []NodeId {
	return ix.implementors[interfaceId]
}

// FieldHolders returns the ids of types declaring a field of the given type.
func (ix *Indexes) FieldHolders(typeId NodeId) []NodeId {
	return ix.fieldsByType[typeId]
}

func (ix *Indexes) typeCount() int {
	return len(ix.allTypes)
}
