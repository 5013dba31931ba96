// Package probe inspects the consuming project to pick sensible defaults:
// whether generated module specifiers need explicit .js extensions, and
// whether a monorepo layout redirects scanning to a conventional component
// directory. Every check is best-effort; failures leave the corresponding
// field at its zero value and never abort a run.
package probe

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Env describes what was detected in the project rootward of the scan.
// It only influences defaults; explicit configuration always wins.
type Env struct {
	// ESM is true when the project declares itself an ES-module package or
	// requests strict module resolution, which means emitted specifiers need
	// runtime-resolvable .js extensions.
	ESM bool

	// Workspace is true when a multi-package repository layout was detected.
	Workspace bool

	// ComponentsDir is a conventional UI-component directory found inside a
	// detected workspace, or empty.
	ComponentsDir string
}

// workspaceMarkers are files whose presence signals a multi-package repo.
var workspaceMarkers = []string{
	"pnpm-workspace.yaml",
	"lerna.json",
	"nx.json",
	"turbo.json",
}

// workspaceDirs are directory names that signal a multi-package repo.
var workspaceDirs = []string{"packages", "apps"}

// componentDirCandidates are conventional UI-component locations, probed in
// order inside a detected workspace.
var componentDirCandidates = []string{
	"packages/ui/src/components/ui",
	"packages/ui/src/components",
	"packages/components/src",
	"apps/web/src/components/ui",
	"apps/web/src/components",
}

// Detect probes the project at root. It never fails.
func Detect(root string) Env {
	env := Env{}

	env.ESM = packageType(filepath.Join(root, "package.json")) == "module" ||
		strictResolution(filepath.Join(root, "tsconfig.json"))

	env.Workspace = hasWorkspaceLayout(root)
	if env.Workspace {
		for _, candidate := range componentDirCandidates {
			path := filepath.Join(root, filepath.FromSlash(candidate))

			info, err := os.Stat(path)
			if err == nil && info.IsDir() {
				env.ComponentsDir = path

				break
			}
		}
	}

	return env
}

// packageType reads the module-type field of a package manifest, or "".
func packageType(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var manifest struct {
		Type string `json:"type"`
	}

	unmarshalErr := json.Unmarshal(data, &manifest)
	if unmarshalErr != nil {
		return ""
	}

	return manifest.Type
}

// moduleResolutionRe is the JSONC-tolerant fallback for tsconfig files that
// strict JSON parsing rejects (comments, trailing commas).
var moduleResolutionRe = regexp.MustCompile(`"moduleResolution"\s*:\s*"(?i:node16|nodenext)"`)

// strictResolution reports whether the project config requests a module
// resolution mode that resolves specifiers the way the runtime does.
func strictResolution(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var cfg struct {
		CompilerOptions struct {
			ModuleResolution string `json:"moduleResolution"`
		} `json:"compilerOptions"`
	}

	unmarshalErr := json.Unmarshal(data, &cfg)
	if unmarshalErr == nil {
		switch strings.ToLower(cfg.CompilerOptions.ModuleResolution) {
		case "node16", "nodenext":
			return true
		default:
			return false
		}
	}

	return moduleResolutionRe.Match(data)
}

func hasWorkspaceLayout(root string) bool {
	for _, marker := range workspaceMarkers {
		_, err := os.Stat(filepath.Join(root, marker))
		if err == nil {
			return true
		}
	}

	for _, dir := range workspaceDirs {
		info, err := os.Stat(filepath.Join(root, dir))
		if err == nil && info.IsDir() {
			return true
		}
	}

	return false
}
