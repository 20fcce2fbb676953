package facts

// Facts is the frontend contract: everything a language frontend must
// extract from a codebase for the analysis to run. Type references are
// plain names; references that do not resolve to a declared type are
// treated as external and never produce edges.
type Facts struct {
	BasePackage   string     `json:"basePackage" yaml:"basePackage"`
	LanguageLevel string     `json:"languageLevel,omitempty" yaml:"languageLevel,omitempty"`
	SourceUnits   int        `json:"sourceUnits,omitempty" yaml:"sourceUnits,omitempty"`
	Types         []TypeDecl `json:"types" yaml:"types"`
}

// TypeDecl describes one declared type.
type TypeDecl struct {
	QualifiedName string            `json:"qualifiedName" yaml:"qualifiedName"`
	Form          string            `json:"form" yaml:"form"`
	Modifiers     []string          `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations   []string          `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Supertype     *TypeRefDecl      `json:"supertype,omitempty" yaml:"supertype,omitempty"`
	Interfaces    []TypeRefDecl     `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Fields        []FieldDecl       `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods       []MethodDecl      `json:"methods,omitempty" yaml:"methods,omitempty"`
	Constructors  []ConstructorDecl `json:"constructors,omitempty" yaml:"constructors,omitempty"`
}

// TypeRefDecl is a reference to a type by name, possibly parameterized.
type TypeRefDecl struct {
	Name     string        `json:"name" yaml:"name"`
	TypeArgs []TypeRefDecl `json:"typeArgs,omitempty" yaml:"typeArgs,omitempty"`
}

// FieldDecl describes one declared field.
type FieldDecl struct {
	Name        string      `json:"name" yaml:"name"`
	Type        TypeRefDecl `json:"type" yaml:"type"`
	Modifiers   []string    `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []string    `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// MethodDecl describes one declared method.
type MethodDecl struct {
	Name        string        `json:"name" yaml:"name"`
	ReturnType  TypeRefDecl   `json:"returnType" yaml:"returnType"`
	Params      []TypeRefDecl `json:"params,omitempty" yaml:"params,omitempty"`
	Modifiers   []string      `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []string      `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

// ConstructorDecl describes one declared constructor.
type ConstructorDecl struct {
	Params    []TypeRefDecl `json:"params,omitempty" yaml:"params,omitempty"`
	Modifiers []string      `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
}
