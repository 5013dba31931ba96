package barrel

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"

	"github.com/componentry/barrelgen/internal/probe"
	"github.com/componentry/barrelgen/pkg/tsexport"
	"github.com/componentry/barrelgen/pkg/typematch"
)

// outputFileMode is the permission set for the generated barrel.
const outputFileMode = 0o644

// Generate runs one scan-and-render pass over the configured directory and,
// unless DryRun is set, writes the barrel file into it. A missing target
// directory is a clean no-op, not an error. Per-file read or parse failures
// are reported and skipped; only directory-level and write failures abort
// the run.
func Generate(ctx context.Context, opts Options) (*Result, error) {
	cfg, dirExplicit := opts.withDefaults()
	rep := newReporter(cfg)

	dir, extMode, ext := applyProbe(cfg, dirExplicit, rep)

	res := &Result{OutputPath: filepath.Join(dir, cfg.Output)}

	entries, err := readDirUnsorted(dir)
	if errors.Is(err, fs.ErrNotExist) {
		rep.infof("directory %s does not exist, nothing to do", dir)

		return res, nil
	}

	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	matcher, err := typematch.New(cfg.TypePatterns)
	if err != nil {
		return nil, err
	}

	extractor, err := tsexport.NewExtractor()
	if err != nil {
		return nil, err
	}

	candidates := filterCandidates(entries, cfg)

	for i, name := range candidates {
		rep.progressf(i, len(candidates), name)
		res.FilesScanned++

		src, readErr := os.ReadFile(filepath.Join(dir, name))
		if readErr != nil {
			rep.warnf("skipping %s: %v", name, readErr)
			res.FilesFailed++

			continue
		}

		exports, parseErr := extractor.Extract(ctx, name, src)
		if parseErr != nil {
			rep.warnf("skipping %s: %v", name, parseErr)
			res.FilesFailed++

			continue
		}

		res.FilesSucceeded++

		component := buildComponent(name, exports, matcher, extMode, ext, res, rep)
		if component.exportCount() == 0 {
			rep.verbosef("%s: no exports, skipped", name)

			continue
		}

		res.Components = append(res.Components, component)
	}

	if !cfg.NoSort {
		sort.SliceStable(res.Components, func(i, j int) bool {
			if res.Components[i].Key != res.Components[j].Key {
				return res.Components[i].Key < res.Components[j].Key
			}

			return res.Components[i].source < res.Components[j].source
		})
	}

	res.Output = render(cfg.Header, res.Components, cfg.SingleLineThreshold)

	if cfg.DryRun {
		showDryRun(cfg, res, rep)

		return res, nil
	}

	writeErr := os.WriteFile(res.OutputPath, []byte(res.Output), outputFileMode)
	if writeErr != nil {
		return nil, fmt.Errorf("write %s: %w", res.OutputPath, writeErr)
	}

	res.Written = true

	rep.successf("wrote %s (%s, %d components)",
		res.OutputPath, humanize.IBytes(uint64(len(res.Output))), len(res.Components))
	rep.summary(res)

	return res, nil
}

// applyProbe resolves probe-driven defaults: a monorepo component directory
// when the caller did not name one, and the .js extension rewrite for
// ES-module projects when the extension mode is still automatic.
func applyProbe(cfg Options, dirExplicit bool, rep *reporter) (dir string, extMode ExtensionMode, ext string) {
	dir, extMode, ext = cfg.Dir, cfg.ExtMode, cfg.Ext

	if dirExplicit && extMode != ExtModeAuto {
		return dir, extMode, ext
	}

	env := probe.Detect(".")

	if !dirExplicit && env.ComponentsDir != "" {
		dir = env.ComponentsDir

		rep.verbosef("monorepo layout detected, scanning %s", dir)
	}

	if extMode == ExtModeAuto {
		if env.ESM {
			extMode, ext = ExtModeOverride, ".js"

			rep.verbosef("ES-module project detected, emitting .js specifiers")
		} else {
			extMode = ExtModeNone
		}
	}

	return dir, extMode, ext
}

// readDirUnsorted lists a directory without the lexical sort os.ReadDir
// applies, so NoSort runs reflect raw enumeration order.
func readDirUnsorted(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// filterCandidates keeps .ts/.tsx source files that match no exclusion
// pattern and are not the output file itself.
func filterCandidates(entries []fs.DirEntry, cfg Options) []string {
	candidates := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()

		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".ts" && ext != ".tsx" {
			continue
		}

		if name == cfg.Output || excluded(name, cfg.Excludes) {
			continue
		}

		candidates = append(candidates, name)
	}

	return candidates
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err == nil && ok {
			return true
		}
	}

	return false
}

// buildComponent aggregates one file's exports, reclassifying value exports
// whose names look like types.
func buildComponent(
	name string,
	exports []tsexport.Export,
	matcher *typematch.Matcher,
	extMode ExtensionMode,
	ext string,
	res *Result,
	rep *reporter,
) Component {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	component := Component{
		Key:       base,
		Specifier: "./" + base + resolveExtension(extMode, ext, filepath.Ext(name)),
		source:    name,
	}

	for _, exp := range exports {
		if exp.Kind == tsexport.KindType {
			component.Types = append(component.Types, exp.Name)

			continue
		}

		if matcher.Match(exp.Name) {
			component.Types = append(component.Types, exp.Name)
			res.Reclassified++

			rep.verbosef("%s: reclassified %s as a type export", name, exp.Name)

			continue
		}

		component.Values = append(component.Values, exp.Name)
	}

	return component
}

// showDryRun prints the render to stdout and a diff against the existing
// barrel when one is present and differs. Nothing is written.
func showDryRun(cfg Options, res *Result, rep *reporter) {
	existing, readErr := os.ReadFile(res.OutputPath)
	if readErr == nil && string(existing) != res.Output {
		rep.infof("diff against %s:", res.OutputPath)
		rep.diff(string(existing), res.Output)
	}

	fmt.Fprint(cfg.Stdout, res.Output)
	rep.summary(res)
}
