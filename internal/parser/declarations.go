package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/voxelforge/tsmodelgen/internal/model"
)

// pragmaMarker introduces an explicit-type override in a trailing comment,
// e.g. `speed: number; // !type: long`.
const pragmaMarker = "!type:"

func text(n *sitter.Node, content []byte) string {
	if n == nil {
		return ""
	}
	return string(content[n.StartByte():n.EndByte()])
}

// processInterface extracts an interface declaration. Interfaces may extend
// several parents; all are captured in declaration order.
func (p *Parser) processInterface(node *sitter.Node, content []byte, path string) *model.SourceDeclaration {
	d := &model.SourceDeclaration{Kind: model.DeclInterface, File: path}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			d.Name = text(child, content)
		case "extends_type_clause":
			d.Extends = append(d.Extends, heritageNames(child, content)...)
		case "interface_body", "object_type":
			d.Properties = p.extractMembers(child, content)
		}
	}

	if d.Name == "" {
		return nil
	}
	return d
}

// processClass extracts a class declaration: one extends name plus an
// implements list, and every instance field.
func (p *Parser) processClass(node *sitter.Node, content []byte, path string) *model.SourceDeclaration {
	d := &model.SourceDeclaration{Kind: model.DeclClass, File: path}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			d.Name = text(child, content)
		case "class_heritage":
			ext, impl := classHeritage(child, content)
			d.Extends = append(d.Extends, ext...)
			d.Implements = append(d.Implements, impl...)
		case "class_body":
			d.Properties = p.extractClassFields(child, content)
		}
	}

	if d.Name == "" {
		return nil
	}
	return d
}

// processEnum extracts an enum declaration and each member's raw assigned
// value text, if any.
func (p *Parser) processEnum(node *sitter.Node, content []byte, path string) *model.SourceDeclaration {
	d := &model.SourceDeclaration{Kind: model.DeclEnum, File: path}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			d.Name = text(child, content)
		case "enum_body":
			d.Members = enumMembers(child, content)
		}
	}

	if d.Name == "" {
		return nil
	}
	return d
}

// processTypeAlias extracts a type-alias statement. When the alias target is
// an object literal its members are captured as properties so the alias can
// be modeled as a class.
func (p *Parser) processTypeAlias(node *sitter.Node, content []byte, path string) *model.SourceDeclaration {
	d := &model.SourceDeclaration{Kind: model.DeclTypeAlias, File: path}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			if d.Name == "" {
				d.Name = text(child, content)
				continue
			}
			d.AliasTarget = text(child, content)
		case "type", "=", ";", "type_parameters":
			// keywords and punctuation
		default:
			if d.Name == "" {
				continue
			}
			d.AliasTarget = text(child, content)
			if child.Type() == "object_type" {
				d.Properties = p.extractMembers(child, content)
			}
		}
	}

	if d.Name == "" {
		return nil
	}
	return d
}

// extractMembers collects property signatures from an interface body or
// object type. Method signatures and index signatures are skipped.
func (p *Parser) extractMembers(body *sitter.Node, content []byte) []*model.SourceProperty {
	var out []*model.SourceProperty
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		if child.Type() != "property_signature" {
			continue
		}
		if prop := p.processProperty(child, content); prop != nil {
			out = append(out, prop)
		}
	}
	return out
}

// extractClassFields collects public_field_definition members of a class
// body. Methods and static fields carry no model state and are skipped.
func (p *Parser) extractClassFields(body *sitter.Node, content []byte) []*model.SourceProperty {
	var out []*model.SourceProperty
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		if child.Type() != "public_field_definition" {
			continue
		}
		if isStatic(child) {
			continue
		}
		if prop := p.processProperty(child, content); prop != nil {
			out = append(out, prop)
		}
	}
	return out
}

func isStatic(node *sitter.Node) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "static" {
			return true
		}
	}
	return false
}

// processProperty extracts one property with optionality, visibility and an
// optional trailing override pragma. A property without a name or type
// annotation is skipped, not fatal.
func (p *Parser) processProperty(node *sitter.Node, content []byte) *model.SourceProperty {
	prop := &model.SourceProperty{}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "accessibility_modifier":
			prop.Visibility = text(child, content)
		case "readonly":
			prop.Readonly = true
		case "property_identifier":
			prop.Name = text(child, content)
		case "string":
			// quoted property names: { "max-depth": number }
			if prop.Name == "" {
				prop.Name = strings.Trim(text(child, content), `"'`)
			}
		case "?":
			prop.Optional = true
		case "type_annotation":
			prop.RawType = typeAnnotation(child, content)
		}
	}

	if prop.Name == "" || prop.RawType == "" {
		return nil
	}

	prop.Override = trailingPragma(node, content)
	return prop
}

// typeAnnotation returns the annotation text after the colon.
func typeAnnotation(node *sitter.Node, content []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != ":" {
			return strings.TrimSpace(text(child, content))
		}
	}
	return ""
}

// trailingPragma scans comment siblings on the member's last line for an
// explicit-type override.
func trailingPragma(node *sitter.Node, content []byte) string {
	row := node.EndPoint().Row
	for sib := node.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if sib.StartPoint().Row != row {
			return ""
		}
		if sib.Type() != "comment" {
			continue
		}
		if v, ok := parsePragma(text(sib, content)); ok {
			return v
		}
	}
	return ""
}

func parsePragma(comment string) (string, bool) {
	c := strings.TrimSpace(comment)
	c = strings.TrimPrefix(c, "//")
	if strings.HasPrefix(c, "/*") {
		c = strings.TrimSuffix(strings.TrimPrefix(c, "/*"), "*/")
	}
	c = strings.TrimSpace(c)
	if rest, ok := strings.CutPrefix(c, pragmaMarker); ok {
		v := strings.TrimSpace(rest)
		if v != "" {
			return v, true
		}
	}
	return "", false
}

// heritageNames collects parent names from an extends_type_clause, reducing
// generic parents to their base name.
func heritageNames(node *sitter.Node, content []byte) []string {
	var parents []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier", "nested_type_identifier":
			parents = append(parents, text(child, content))
		case "generic_type":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				if gc.Type() == "type_identifier" || gc.Type() == "nested_type_identifier" {
					parents = append(parents, text(gc, content))
					break
				}
			}
		}
	}
	return parents
}

// classHeritage splits a class_heritage node into extends and implements
// name lists.
func classHeritage(node *sitter.Node, content []byte) (extends, implements []string) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "extends_clause":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				switch gc.Type() {
				case "identifier", "type_identifier", "nested_type_identifier", "member_expression":
					extends = append(extends, text(gc, content))
				case "generic_type":
					for k := 0; k < int(gc.ChildCount()); k++ {
						ggc := gc.Child(k)
						if ggc.Type() == "type_identifier" {
							extends = append(extends, text(ggc, content))
							break
						}
					}
				}
			}
		case "implements_clause":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				if gc.Type() == "type_identifier" || gc.Type() == "generic_type" || gc.Type() == "nested_type_identifier" {
					name := text(gc, content)
					if idx := strings.IndexByte(name, '<'); idx > 0 {
						name = name[:idx]
					}
					implements = append(implements, name)
				}
			}
		}
	}
	return extends, implements
}

// enumMembers collects enum constants. Assigned members capture the raw
// value text verbatim; bare members capture none.
func enumMembers(body *sitter.Node, content []byte) []model.EnumMember {
	var out []model.EnumMember
	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(i)
		switch child.Type() {
		case "enum_assignment":
			m := model.EnumMember{}
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				switch gc.Type() {
				case "property_identifier":
					m.Name = text(gc, content)
				case "=":
				default:
					m.RawValue = strings.TrimSpace(text(gc, content))
				}
			}
			if m.Name != "" {
				out = append(out, m)
			}
		case "property_identifier":
			out = append(out, model.EnumMember{Name: text(child, content)})
		}
	}
	return out
}
