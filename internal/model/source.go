package model

// DeclKind is the original TypeScript declaration keyword.
type DeclKind string

const (
	DeclInterface DeclKind = "interface"
	DeclClass     DeclKind = "class"
	DeclEnum      DeclKind = "enum"
	DeclTypeAlias DeclKind = "type"
)

// SourceProperty is one parsed interface/class property before modeling.
type SourceProperty struct {
	Name       string `yaml:"name"`
	RawType    string `yaml:"rawType"`            // type annotation text, verbatim
	Optional   bool   `yaml:"optional,omitempty"` // trailing "?" on the name
	Readonly   bool   `yaml:"readonly,omitempty"`
	Visibility string `yaml:"visibility,omitempty"` // "", "public", "private", "protected"
	Override   string `yaml:"override,omitempty"`   // explicit-type pragma, wins over RawType
}

// EnumMember is one enum constant with its raw assigned value text, if any.
type EnumMember struct {
	Name     string `yaml:"name"`
	RawValue string `yaml:"rawValue,omitempty"`
}

// SourceDeclaration is a parsed interface/class/enum/type-alias, read-only
// after parse.
type SourceDeclaration struct {
	Name        string            `yaml:"name"`
	Kind        DeclKind          `yaml:"kind"`
	File        string            `yaml:"file"`
	Properties  []*SourceProperty `yaml:"properties,omitempty"`
	Extends     []string          `yaml:"extends,omitempty"`
	Implements  []string          `yaml:"implements,omitempty"`
	Members     []EnumMember      `yaml:"members,omitempty"`
	AliasTarget string            `yaml:"aliasTarget,omitempty"`
}

// SourceFile groups the declarations discovered in one file.
type SourceFile struct {
	Path  string               `yaml:"path"`
	Root  string               `yaml:"root"` // configured root directory containing Path
	Decls []*SourceDeclaration `yaml:"decls"`
}

// SourceModel is the full parse result, in stable discovery order.
type SourceModel struct {
	Files []*SourceFile `yaml:"files"`
}

// Declarations returns all declarations across all files in order.
func (m *SourceModel) Declarations() []*SourceDeclaration {
	var out []*SourceDeclaration
	for _, f := range m.Files {
		out = append(out, f.Decls...)
	}
	return out
}
