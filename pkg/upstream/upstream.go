package upstream

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSources lists the Primer primitive stylesheets bundled ahead of the
// theme overrides, relative to the node_modules directory.
var DefaultSources = []string{
	"@primer/primitives/tokens-next-private/css/base/size/size.css",
	"@primer/primitives/tokens-next-private/css/base/typography/typography.css",
	"@primer/primitives/tokens-next-private/css/functional/size/border.css",
	"@primer/primitives/tokens-next-private/css/functional/size/breakpoints.css",
	"@primer/primitives/tokens-next-private/css/functional/size/size-coarse.css",
	"@primer/primitives/tokens-next-private/css/functional/size/size-fine.css",
	"@primer/primitives/tokens-next-private/css/functional/size/size.css",
	"@primer/primitives/tokens-next-private/css/functional/size/viewport.css",
	"@primer/primitives/tokens-next-private/css/functional/typography/typography.css",
}

// File describes one aggregated source.
type File struct {
	Path  string // resolved path that was read
	Name  string // base name used in the banner comment
	Bytes int
	Err   error // non-nil when the file could not be read
}

// Result holds the concatenated CSS and per-file outcomes.
type Result struct {
	CSS    string
	Files  []File
	Errors []error // non-fatal per-file read failures
}

// Missing returns the files that could not be read.
func (r *Result) Missing() []File {
	var missing []File
	for _, f := range r.Files {
		if f.Err != nil {
			missing = append(missing, f)
		}
	}
	return missing
}

// Aggregate reads sources in order and concatenates them, each preceded by a
// "/* <file name> */" banner and separated by a blank line. Relative sources
// are resolved against baseDir. A file that cannot be read keeps its banner
// and contributes no content.
func Aggregate(baseDir string, sources []string) *Result {
	result := &Result{Files: make([]File, 0, len(sources))}
	blocks := make([]string, 0, len(sources))

	for _, src := range sources {
		path := resolvePath(baseDir, src)
		file := File{Path: path, Name: filepath.Base(path)}

		content, err := os.ReadFile(path)
		if err != nil {
			file.Err = fmt.Errorf("failed to read %q: %w", path, err)
			result.Errors = append(result.Errors, file.Err)
		}
		file.Bytes = len(content)

		result.Files = append(result.Files, file)
		blocks = append(blocks, banner(file.Name)+string(content))
	}

	result.CSS = strings.Join(blocks, "\n\n")
	return result
}

func banner(name string) string {
	return fmt.Sprintf("/* %s */\n", name)
}

func resolvePath(baseDir, src string) string {
	if filepath.IsAbs(src) || baseDir == "" {
		return filepath.Clean(src)
	}
	return filepath.Join(baseDir, src)
}
