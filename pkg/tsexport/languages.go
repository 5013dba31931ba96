package tsexport

import (
	"sync"
	"unsafe"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/alexaandru/go-sitter-forest/tsx"
	"github.com/alexaandru/go-sitter-forest/typescript"
)

// Grammar names understood by this package.
const (
	GrammarTSX        = "tsx"
	GrammarTypeScript = "typescript"
)

// languageFuncs maps grammar names to their tree-sitter GetLanguage functions.
var languageFuncs = map[string]func() unsafe.Pointer{
	GrammarTSX:        tsx.GetLanguage,
	GrammarTypeScript: typescript.GetLanguage,
}

var languageCache sync.Map

// GetLanguage returns the tree-sitter Language for the given grammar name, or
// nil if not supported.
func GetLanguage(name string) *sitter.Language {
	if cached, ok := languageCache.Load(name); ok {
		lang, castOK := cached.(*sitter.Language)
		if castOK {
			return lang
		}
	}

	fn, ok := languageFuncs[name]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	languageCache.Store(name, lang)

	return lang
}
