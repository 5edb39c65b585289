package themebuilder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testRows = `method,variableName,scaleToken,alpha
hex,--color-bg, gray-1 ,
rgba,--color-bg-translucent,gray-1,0.5
skip,--color-skipped,gray-1,
Shadow,--shadow-medium,,
blend,--color-blend,gray-1,
hex,--color-missing,gray-9,
rgba,--color-accent-muted,blue-5,0.4
`

const testScale = `{"gray-1": "#ffffff", "blue-5": "#0969da"}`

type fixture struct {
	dir  string
	opts Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"data/input/theme.csv":             testRows,
		"data/input/scale.json":            testScale,
		"node_modules/primer/size.css":     ":root { --size-1: 4px; }",
		"node_modules/primer/viewport.css": ":root { --viewport-sm: 544px; }",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return &fixture{
		dir: dir,
		opts: Options{
			RowsPath:   filepath.Join(dir, "data/input/theme.csv"),
			ScalePath:  filepath.Join(dir, "data/input/scale.json"),
			OutputPath: filepath.Join(dir, "data/output/output.css"),
			ModulesDir: filepath.Join(dir, "node_modules"),
			Sources:    []string{"primer/size.css", "primer/missing.css", "primer/viewport.css"},
		},
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Infof(f string, a ...any)  { l.lines = append(l.lines, "INFO "+fmt.Sprintf(f, a...)) }
func (l *recordingLogger) Warnf(f string, a ...any)  { l.lines = append(l.lines, "WARN "+fmt.Sprintf(f, a...)) }
func (l *recordingLogger) Errorf(f string, a ...any) { l.lines = append(l.lines, "ERROR "+fmt.Sprintf(f, a...)) }

func TestBuild(t *testing.T) {
	fx := newFixture(t)
	logger := &recordingLogger{}
	fx.opts.Logger = logger

	result, err := Build(fx.opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := "/* size.css */\n:root { --size-1: 4px; }\n\n" +
		"/* missing.css */\n\n\n" +
		"/* viewport.css */\n:root { --viewport-sm: 544px; }\n" +
		"/* Primo Theme Override */\n" +
		":root {\n" +
		"--color-bg: #ffffff;\n" +
		"--color-bg-translucent: rgba(255, 255, 255, 0.5);\n" +
		"--color-accent-muted: rgba(9, 105, 218, 0.4);\n" +
		"}"

	if result.Stylesheet != want {
		t.Errorf("Stylesheet =\n%s\nwant\n%s", result.Stylesheet, want)
	}

	written, err := os.ReadFile(fx.opts.OutputPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(written) != want {
		t.Errorf("written output differs from Result.Stylesheet")
	}

	if result.RowCount != 7 {
		t.Errorf("RowCount = %d, want 7", result.RowCount)
	}
	if got := result.Batch.Failed(); strings.Join(got, ",") != "--color-blend,--color-missing" {
		t.Errorf("Failed() = %v", got)
	}
	if got := len(result.Batch.Skipped); got != 2 {
		t.Errorf("Skipped = %d, want 2", got)
	}
	if got := len(result.Upstream.Missing()); got != 1 {
		t.Errorf("Upstream.Missing() = %d, want 1", got)
	}

	var sawFailureSummary, sawCompleted bool
	for _, line := range logger.lines {
		if strings.HasPrefix(line, "WARN Failed variables:") && strings.Contains(line, "--color-blend") {
			sawFailureSummary = true
		}
		if line == "INFO Build process completed!" {
			sawCompleted = true
		}
	}
	if !sawFailureSummary || !sawCompleted {
		t.Errorf("unexpected log output:\n%s", strings.Join(logger.lines, "\n"))
	}
}

func TestBuildIdempotent(t *testing.T) {
	fx := newFixture(t)

	if _, err := Build(fx.opts); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	first, err := os.ReadFile(fx.opts.OutputPath)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Build(fx.opts); err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	second, err := os.ReadFile(fx.opts.OutputPath)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("Build() output changed between identical runs")
	}
}

func TestBuildOverwrites(t *testing.T) {
	fx := newFixture(t)
	if err := os.MkdirAll(filepath.Dir(fx.opts.OutputPath), 0755); err != nil {
		t.Fatal(err)
	}
	stale := strings.Repeat("stale content\n", 1000)
	if err := os.WriteFile(fx.opts.OutputPath, []byte(stale), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := Build(fx.opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	written, _ := os.ReadFile(fx.opts.OutputPath)
	if string(written) != result.Stylesheet {
		t.Error("Build() did not replace the previous output")
	}
}

func TestRunFatalInputs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fx *fixture)
	}{
		{
			name:   "missing variables table",
			mutate: func(fx *fixture) { fx.opts.RowsPath = filepath.Join(fx.dir, "nope.csv") },
		},
		{
			name:   "missing scale",
			mutate: func(fx *fixture) { fx.opts.ScalePath = filepath.Join(fx.dir, "nope.json") },
		},
		{
			name: "malformed scale",
			mutate: func(fx *fixture) {
				os.WriteFile(fx.opts.ScalePath, []byte(`{"gray-1":`), 0644)
			},
		},
		{
			name: "table without required columns",
			mutate: func(fx *fixture) {
				os.WriteFile(fx.opts.RowsPath, []byte("name,value\n--a,#fff\n"), 0644)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			tt.mutate(fx)

			result, err := Build(fx.opts)
			if err == nil {
				t.Fatal("Build() expected a fatal error")
			}
			if result != nil {
				t.Errorf("Build() returned a result alongside error %v", err)
			}
			if _, statErr := os.Stat(fx.opts.OutputPath); statErr == nil {
				t.Error("Build() wrote output despite a fatal error")
			}
		})
	}
}

func TestRunDefaults(t *testing.T) {
	fx := newFixture(t)
	chdir(t, fx.dir)

	// Default paths resolve relative to the working directory; the default
	// upstream table is absent here, so every source is missing but the build
	// still succeeds.
	result, err := Run(Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n := len(result.Upstream.Missing()); n != len(result.Upstream.Files) || n == 0 {
		t.Errorf("Upstream.Missing() = %d of %d", n, len(result.Upstream.Files))
	}
	if !strings.Contains(result.Stylesheet, "/* Primo Theme Override */\n:root {\n--color-bg: #ffffff;\n") {
		t.Errorf("Stylesheet missing override block:\n%s", result.Stylesheet)
	}
	if _, err := os.Stat(filepath.Join(fx.dir, "data/output/output.css")); err == nil {
		t.Error("Run() should not write output")
	}
}
