package tests

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/funvibe/funlam/internal/config"
	"github.com/google/uuid"
)

// The binary is built once and shared by every test in this package.
// A random suffix keeps concurrent `go test` invocations from
// clobbering each other's binary.
var (
	buildOnce   sync.Once
	buildErr    error
	binaryPath  string
	projectRoot string
)

func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		projectRoot, buildErr = filepath.Abs("..")
		if buildErr != nil {
			return
		}
		binaryPath = filepath.Join(projectRoot, "funlam-test-"+uuid.NewString())

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/funlam")
		cmd.Dir = projectRoot
		if output, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("failed to build binary: %v\n%s", err, output)
		}
	})
	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}
	return binaryPath
}

func TestMain(m *testing.M) {
	code := m.Run()
	if binaryPath != "" {
		os.Remove(binaryPath)
	}
	os.Exit(code)
}

// runResult carries one binary invocation's outcome.
type runResult struct {
	stdout string
	stderr string
	exit   int
}

// runFunlam executes the built binary from the project root. An empty
// stdin leaves the child reading from /dev/null.
func runFunlam(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	bin := buildBinary(t)

	cmd := exec.Command(bin, args...)
	cmd.Dir = projectRoot
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := runResult{stdout: stdout.String(), stderr: stderr.String()}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("running funlam: %v", err)
		}
		res.exit = exitErr.ExitCode()
	}
	return res
}

// TestFunctional runs .lam files through the compiled binary and
// compares output with .want files. This tests the actual binary -
// what users see.
func TestFunctional(t *testing.T) {
	buildBinary(t)

	// Find all source files with .want files
	var testFiles []string
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, config.SourceFileExt) {
			return nil
		}
		wantFile := strings.TrimSuffix(path, config.SourceFileExt) + ".want"
		if _, err := os.Stat(wantFile); err == nil {
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk directory: %v", err)
	}

	if len(testFiles) == 0 {
		t.Skip("No test files with .want found")
	}

	for _, testFile := range testFiles {
		testFile := testFile
		testName := strings.TrimSuffix(filepath.Base(testFile), config.SourceFileExt)

		t.Run(testName, func(t *testing.T) {
			absPath, err := filepath.Abs(testFile)
			if err != nil {
				t.Fatalf("Failed to get absolute path: %v", err)
			}

			wantFile := strings.TrimSuffix(testFile, config.SourceFileExt) + ".want"
			wantBytes, err := os.ReadFile(wantFile)
			if err != nil {
				t.Fatalf("Failed to read .want file: %v", err)
			}
			want := strings.TrimSpace(string(wantBytes))

			res := runFunlam(t, "", absPath)

			// Errors carry absolute paths; make them relative to the
			// project root so .want files stay machine-independent.
			stdoutStr := strings.TrimSpace(res.stdout)
			stderrStr := strings.TrimSpace(res.stderr)
			if stderrStr != "" {
				stderrStr = strings.ReplaceAll(stderrStr, projectRoot+"/", "")
			}

			// Combine: stdout first, then stderr
			var got string
			if stdoutStr != "" && stderrStr != "" {
				got = stdoutStr + "\n" + stderrStr
			} else if stdoutStr != "" {
				got = stdoutStr
			} else {
				got = stderrStr
			}

			got = strings.TrimSpace(strings.ReplaceAll(got, "\r\n", "\n"))
			want = strings.TrimSpace(strings.ReplaceAll(want, "\r\n", "\n"))

			if got != want {
				t.Errorf("Output mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}

// TestOutputChains re-feeds funlam's own output and expects a fixed
// point: rendered results are valid source for another run.
func TestOutputChains(t *testing.T) {
	inputs := []string{
		"identity_app",
		"typed_apply",
		"church_two",
	}

	buildBinary(t)

	for _, name := range inputs {
		name := name
		t.Run(name, func(t *testing.T) {
			src := filepath.Join(projectRoot, "tests", "testdata", name+config.SourceFileExt)
			first := runFunlam(t, "", src)
			if first.exit != 0 {
				t.Fatalf("first run failed: %s", first.stderr)
			}

			rerun := filepath.Join(t.TempDir(), uuid.NewString()+config.SourceFileExt)
			if err := os.WriteFile(rerun, []byte(first.stdout), 0644); err != nil {
				t.Fatalf("writing chained input: %v", err)
			}

			second := runFunlam(t, "", rerun)
			if second.exit != 0 {
				t.Fatalf("second run failed: %s", second.stderr)
			}
			if first.stdout != second.stdout {
				t.Errorf("output is not a fixed point:\nfirst:  %q\nsecond: %q", first.stdout, second.stdout)
			}
		})
	}
}
