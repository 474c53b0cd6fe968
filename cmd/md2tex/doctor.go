package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-md2tex/internal/hints"
)

// latexEngines are the compilers able to build md2tex output.
var latexEngines = []string{"pdflatex", "xelatex", "lualatex"}

// highlighter is the program minted shells out to.
const highlighter = "pygmentize"

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status      string     `json:"status"` // "ready", "warnings", "errors"
	Engines     []toolInfo `json:"engines"`
	Highlighter toolInfo   `json:"highlighter"`
	Env         envInfo    `json:"environment"`
	System      systemInfo `json:"system"`
	Warnings    []string   `json:"warnings,omitempty"`
	Errors      []string   `json:"errors,omitempty"`
}

// toolInfo holds the lookup result for one external program.
type toolInfo struct {
	Name    string `json:"name"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// doctor runs the checks against injectable lookups.
type doctor struct {
	lookPath func(string) (string, error)
	version  func(path string) string
	getenv   func(string) string
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	d := &doctor{lookPath: env.LookPath, version: toolVersion, getenv: env.Getenv}
	result := d.run()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// run performs all diagnostic checks.
func (d *doctor) run() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	d.checkEngines(result)
	d.checkHighlighter(result)
	d.checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// lookup resolves one program and its version.
func (d *doctor) lookup(name string) toolInfo {
	info := toolInfo{Name: name}
	path, err := d.lookPath(name)
	if err != nil {
		return info
	}
	info.Found = true
	info.Path = path
	info.Version = d.version(path)
	return info
}

// checkEngines requires at least one LaTeX engine on PATH.
func (d *doctor) checkEngines(result *doctorResult) {
	found := false
	for _, name := range latexEngines {
		info := d.lookup(name)
		result.Engines = append(result.Engines, info)
		found = found || info.Found
	}
	if !found {
		result.Errors = append(result.Errors,
			"No LaTeX engine found (pdflatex, xelatex, lualatex)"+hints.ForMissingEngine())
	}
}

// checkHighlighter warns when minted cannot highlight code blocks.
func (d *doctor) checkHighlighter(result *doctorResult) {
	result.Highlighter = d.lookup(highlighter)
	if !result.Highlighter.Found {
		result.Warnings = append(result.Warnings,
			"pygmentize not found: documents with highlighted code blocks will not compile (pip install Pygments)")
	}
}

// checkEnvironment detects container and CI environments.
func (d *doctor) checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = d.isContainer()

	for _, v := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"} {
		if d.getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
}

// isContainer returns whether a container was detected and which signal said so.
func (d *doctor) isContainer() (bool, string) {
	if d.getenv("MD2TEX_CONTAINER") == "1" {
		return true, "MD2TEX_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := d.getenv("container"); v != "" {
		return true, "container=" + v
	}
	if d.getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the temp directory is writable; LaTeX builds need it.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "md2tex-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
		return
	}
	_ = os.Remove(testFile)
	result.System.TempWritable = true
}

// toolVersion returns the first line of "<path> --version", or "".
func toolVersion(path string) string {
	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path comes from LookPath
	if err != nil {
		return ""
	}
	line, _, _ := bufio.NewReader(bytes.NewReader(out)).ReadLine()
	return string(line)
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "md2tex doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "LaTeX engines")
	for _, e := range r.Engines {
		printTool(w, e, "[--]")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Highlighting")
	printTool(w, r.Highlighter, "[WARN]")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to compile")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printTool prints one tool line, using missing as the tag when absent.
func printTool(w io.Writer, t toolInfo, missing string) {
	if !t.Found {
		fmt.Fprintf(w, "  %s %s: not found\n", missing, t.Name)
		return
	}
	if t.Version != "" {
		fmt.Fprintf(w, "  [OK] %s: %s (%s)\n", t.Name, t.Path, t.Version)
		return
	}
	fmt.Fprintf(w, "  [OK] %s: %s\n", t.Name, t.Path)
}
