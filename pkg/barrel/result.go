package barrel

// Component is the aggregated export set of one source file. Built once per
// run and immutable afterward.
type Component struct {
	// Key is the base name without extension; it doubles as the sort key.
	Key string `json:"key"`

	// Specifier is the module specifier emitted after "from".
	Specifier string `json:"specifier"`

	// Values and Types hold exported names in file order. Duplicates are
	// preserved.
	Values []string `json:"values,omitempty"`
	Types  []string `json:"types,omitempty"`

	// source is the originating file name. It breaks sort ties when a .ts
	// and a .tsx file share a base name.
	source string
}

func (c Component) exportCount() int {
	return len(c.Values) + len(c.Types)
}

// Result reports what one generation run produced. It is transient; nothing
// survives across runs except the written file.
type Result struct {
	// Output is the full rendered barrel text.
	Output string `json:"output"`

	// OutputPath is where the barrel was (or would have been) written.
	OutputPath string `json:"output_path"`

	// Components are the included files in final statement order.
	Components []Component `json:"components,omitempty"`

	FilesScanned   int `json:"files_scanned"`
	FilesSucceeded int `json:"files_succeeded"`
	FilesFailed    int `json:"files_failed"`

	// Reclassified counts value exports moved to the type bucket by the
	// naming heuristics.
	Reclassified int `json:"reclassified"`

	// Written is false under dry-run or when the target directory was
	// missing.
	Written bool `json:"written"`
}
