// Package tsexport extracts the top-level exported binding names from
// TypeScript and TSX sources, classifying each as a value or a type export.
//
// Recognition is deliberately shallow: no type graph is built and re-exports
// are not followed. Export shapes outside the recognized set (export class,
// export * from, export =) produce no records.
package tsexport

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Kind classifies an exported binding.
type Kind int

const (
	// KindValue is a runtime binding (const, function, default export).
	KindValue Kind = iota
	// KindType is a type-level binding (type alias, interface, type specifier).
	KindType
)

// Export is one exported identifier found in a source file. Duplicate names
// within a file are preserved in file order, not deduplicated.
type Export struct {
	Name string
	Kind Kind
}

// DefaultExportName is recorded when an anonymous function or arrow
// expression is default-exported. Re-exporting { default } is syntactically
// valid but semantically odd; the behavior is kept as observed rather than
// papered over.
const DefaultExportName = "default"

var (
	// ErrUnsupportedGrammar indicates no tree-sitter grammar is registered
	// for the requested name.
	ErrUnsupportedGrammar = errors.New("unsupported grammar")

	errPoolType   = errors.New("parser pool returned unexpected type")
	errNoRootNode = errors.New("no root node in parse tree")
)

// Extractor parses sources and collects export records. It is safe for
// sequential reuse across files; parsers are pooled per grammar.
type Extractor struct {
	pools map[string]*sync.Pool
}

// NewExtractor initializes parser pools for the TSX and TypeScript grammars.
func NewExtractor() (*Extractor, error) {
	pools := make(map[string]*sync.Pool, len(languageFuncs))

	for name := range languageFuncs {
		lang := GetLanguage(name)
		if lang == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedGrammar, name)
		}

		pools[name] = &sync.Pool{
			New: func() any {
				tsParser := sitter.NewParser()
				tsParser.SetLanguage(lang)

				return tsParser
			},
		}
	}

	return &Extractor{pools: pools}, nil
}

// GrammarFor returns the grammar name used to parse the given filename:
// tsx for .tsx files, typescript for everything else.
func GrammarFor(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".tsx") {
		return GrammarTSX
	}

	return GrammarTypeScript
}

// Extract parses src and returns its export records in file order.
func (e *Extractor) Extract(ctx context.Context, filename string, src []byte) ([]Export, error) {
	pool, ok := e.pools[GrammarFor(filename)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGrammar, GrammarFor(filename))
	}

	tsParser, ok := pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, fmt.Errorf("parse %s: %w", filename, errNoRootNode)
	}

	w := &walker{src: src}
	w.walk(root)

	return w.exports, nil
}

// walker accumulates export records during a full-tree traversal.
type walker struct {
	src     []byte
	exports []Export
}

func (w *walker) walk(n sitter.Node) {
	if n.Type() == "export_statement" {
		w.collectExport(n)
	}

	for idx := range n.NamedChildCount() {
		w.walk(n.NamedChild(idx))
	}
}

func (w *walker) add(name string, kind Kind) {
	if name == "" {
		return
	}

	w.exports = append(w.exports, Export{Name: name, Kind: kind})
}

// collectExport dispatches on the shape of one export statement.
func (w *walker) collectExport(stmt sitter.Node) {
	decl := stmt.ChildByFieldName("declaration")
	if !decl.IsNull() {
		w.collectDeclaration(stmt, decl)

		return
	}

	clause := namedChildOfType(stmt, "export_clause")
	if !clause.IsNull() {
		w.collectClause(clause)

		return
	}

	if hasTokenChild(stmt, "default") {
		w.collectDefaultValue(stmt)
	}
}

// collectDeclaration handles export <declaration> forms. Class declarations
// and export assignments are intentionally not recognized.
func (w *walker) collectDeclaration(stmt, decl sitter.Node) {
	switch decl.Type() {
	case "lexical_declaration", "variable_declaration":
		for idx := range decl.NamedChildCount() {
			declarator := decl.NamedChild(idx)
			if declarator.Type() != "variable_declarator" {
				continue
			}

			// Destructuring patterns carry no single exported identifier.
			name := declarator.ChildByFieldName("name")
			if name.IsNull() || name.Type() != "identifier" {
				continue
			}

			w.add(w.text(name), KindValue)
		}
	case "function_declaration", "generator_function_declaration":
		name := decl.ChildByFieldName("name")
		if !name.IsNull() {
			w.add(w.text(name), KindValue)
		} else if hasTokenChild(stmt, "default") {
			w.add(DefaultExportName, KindValue)
		}
	case "type_alias_declaration", "interface_declaration":
		name := decl.ChildByFieldName("name")
		if !name.IsNull() {
			w.add(w.text(name), KindType)
		}
	}
}

// collectClause handles export { A, B as C, type D } lists. Only a type
// keyword on the individual specifier marks a type export; a statement-level
// export type { ... } clause still records value specifiers.
func (w *walker) collectClause(clause sitter.Node) {
	for idx := range clause.NamedChildCount() {
		spec := clause.NamedChild(idx)
		if spec.Type() != "export_specifier" {
			continue
		}

		// The exported local name is the alias when present.
		name := spec.ChildByFieldName("alias")
		if name.IsNull() {
			name = spec.ChildByFieldName("name")
		}

		if name.IsNull() {
			continue
		}

		kind := KindValue
		if hasTokenChild(spec, "type") {
			kind = KindType
		}

		w.add(w.text(name), kind)
	}
}

// collectDefaultValue handles export default <expression>. An identifier is
// recorded under its own name; an anonymous function or arrow expression is
// recorded as the literal name "default". Other expressions produce nothing.
func (w *walker) collectDefaultValue(stmt sitter.Node) {
	value := stmt.ChildByFieldName("value")
	if value.IsNull() {
		return
	}

	switch value.Type() {
	case "identifier":
		w.add(w.text(value), KindValue)
	case "function_expression", "function", "arrow_function":
		w.add(DefaultExportName, KindValue)
	}
}

// namedChildOfType returns the first named child with the given node type.
func namedChildOfType(n sitter.Node, typ string) sitter.Node {
	for idx := range n.NamedChildCount() {
		child := n.NamedChild(idx)
		if child.Type() == typ {
			return child
		}
	}

	return sitter.Node{}
}

// hasTokenChild reports whether n has a direct child token of the given type,
// anonymous tokens included.
func hasTokenChild(n sitter.Node, token string) bool {
	for idx := range n.ChildCount() {
		if n.Child(idx).Type() == token {
			return true
		}
	}

	return false
}

func (w *walker) text(n sitter.Node) string {
	start := n.StartByte()
	end := n.EndByte()

	if int(end) <= len(w.src) {
		return string(w.src[start:end])
	}

	return ""
}
