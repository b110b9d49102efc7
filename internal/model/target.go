package model

type Kind int

const (
	KindInvalid   Kind = iota
	KindClass          // mutable class with fields
	KindInterface      // accessor-only interface (rare path)
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	default:
		return "invalid"
	}
}

// TypeRef is a reference to another type, captured as a raw name at creation
// and resolved against the model index during linking. An unresolved TypeRef
// whose Raw contains a dot is an accepted external qualified name.
type TypeRef struct {
	Raw      string
	Resolved *TargetType
}

// Display returns the name to emit for this reference.
func (r *TypeRef) Display() string {
	if r == nil {
		return ""
	}
	if r.Resolved != nil {
		return r.Resolved.Name
	}
	return r.Raw
}

// TargetProperty is one field of an emitted type.
type TargetProperty struct {
	Name        string
	Type        string // canonical target type expression
	Optional    bool
	Annotations []string
}

// EnumValue carries an enum constant and its raw source value text
// (the tsIndex), classified integer- or text-backed at emission.
type EnumValue struct {
	Name     string
	RawValue string
}

// TargetType represents one emitted declaration. Created once, mutated in
// place by the rewrite passes, then frozen for emission.
type TargetType struct {
	Name       string
	Kind       Kind
	Package    string // empty until the package-resolution pass
	Extends    *TypeRef
	Implements []*TypeRef
	Properties []*TargetProperty
	EnumValues []EnumValue

	// Origin metadata for header-comment traceability.
	SourceFile string // full path of the declaring file
	SourceRoot string // configured root containing SourceFile
	Keyword    string // original declaration keyword

	// FromInterface marks types materialized from interface declarations.
	FromInterface bool
	// FromAlias marks types synthesized from type aliases.
	FromAlias bool

	// Helper types are synthesized for recognized inline-object shapes and
	// rendered nested inside their owner.
	Helper    bool
	Owner     string // owning type name, helpers only
	OwnerProp string // owning property name, helpers only

	// UnresolvedBases records base names dropped by the inheritance pass.
	UnresolvedBases []string
}

// TargetModel is the arena of created types: stable declaration order plus a
// by-name index. Name collisions are last-write-wins in the index while both
// entries stay in Types.
type TargetModel struct {
	Types []*TargetType
	Index map[string]*TargetType
}

// Add appends a type and (re-)indexes it by name.
func (m *TargetModel) Add(t *TargetType) {
	if m.Index == nil {
		m.Index = make(map[string]*TargetType)
	}
	m.Types = append(m.Types, t)
	m.Index[t.Name] = t
}

// Lookup resolves a name against the index.
func (m *TargetModel) Lookup(name string) (*TargetType, bool) {
	t, ok := m.Index[name]
	return t, ok
}
