// Package parser turns TypeScript declaration files into a SourceModel.
// Parsing is error-tolerant: a declaration or member that cannot be
// recognized is skipped and the rest of the file continues; only an
// unreadable root directory is fatal.
package parser

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/voxelforge/tsmodelgen/internal/config"
	"github.com/voxelforge/tsmodelgen/internal/model"
)

// Parser holds the configuration consulted while scanning roots.
type Parser struct {
	cfg *config.Config
}

// New returns a Parser bound to cfg.
func New(cfg *config.Config) *Parser {
	return &Parser{cfg: cfg}
}

// ParseRoots scans each root directory for .ts files and parses every
// declaration found, in stable discovery order.
func (p *Parser) ParseRoots(ctx context.Context, roots []string) (*model.SourceModel, error) {
	out := &model.SourceModel{}

	for _, root := range roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve root %s: %w", root, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("read root %s: %w", root, err)
		}

		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("walk %s: %w", path, err)
			}
			if d.IsDir() {
				if p.excludedDir(abs, path) {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.HasSuffix(d.Name(), ".ts") {
				return nil
			}

			sf, err := p.parseFile(ctx, abs, path)
			if err != nil {
				return err
			}
			if sf != nil {
				out.Files = append(out.Files, sf)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// excludedDir tests the directory's root-relative path against the
// configured exclude suffixes.
func (p *Parser) excludedDir(root, dir string) bool {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, suffix := range p.cfg.ExcludeDirSuffixes {
		s := strings.Trim(filepath.ToSlash(suffix), "/")
		if rel == s || strings.HasSuffix(rel, "/"+s) {
			return true
		}
	}
	return false
}

// parseFile parses one file and extracts its declarations. Syntax errors in
// the tree never abort the file; affected declarations are skipped.
func (p *Parser) parseFile(ctx context.Context, root, path string) (*model.SourceFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	ts := sitter.NewParser()
	ts.SetLanguage(typescript.GetLanguage())

	tree, err := ts.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, nil
	}
	if rootNode.HasError() {
		slog.Warn("source contains syntax errors, continuing", "file", path)
	}

	sf := &model.SourceFile{Path: path, Root: root}
	p.extractDeclarations(rootNode, content, path, sf)

	if len(sf.Decls) == 0 {
		return nil, nil
	}
	return sf, nil
}

// extractDeclarations walks the top level of the tree, descending into
// export statements.
func (p *Parser) extractDeclarations(node *sitter.Node, content []byte, path string, sf *model.SourceFile) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "export_statement":
			p.extractDeclarations(child, content, path, sf)
		case "interface_declaration":
			p.addDecl(sf, p.processInterface(child, content, path))
		case "class_declaration", "abstract_class_declaration":
			p.addDecl(sf, p.processClass(child, content, path))
		case "enum_declaration":
			p.addDecl(sf, p.processEnum(child, content, path))
		case "type_alias_declaration":
			p.addDecl(sf, p.processTypeAlias(child, content, path))
		}
	}
}

func (p *Parser) addDecl(sf *model.SourceFile, d *model.SourceDeclaration) {
	if d == nil {
		return
	}
	if p.cfg.Ignored(d.Name) {
		slog.Debug("ignoring declaration", "name", d.Name)
		return
	}
	sf.Decls = append(sf.Decls, d)
}
