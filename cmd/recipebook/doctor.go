package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-recipebook/internal/config"
	"github.com/alnah/go-recipebook/internal/fileutil"
	"github.com/alnah/go-recipebook/internal/hints"
)

// versionProbeTimeout bounds "<converter> --version".
const versionProbeTimeout = 10 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status    string        `json:"status"` // "ready", "warnings", "errors"
	Converter converterInfo `json:"converter"`
	Config    configInfo    `json:"config"`
	Library   libraryInfo   `json:"library"`
	Env       envInfo       `json:"environment"`
	System    systemInfo    `json:"system"`
	Warnings  []string      `json:"warnings,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
}

// converterInfo holds converter detection results.
type converterInfo struct {
	Bin     string `json:"bin"`
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// configInfo holds config resolution results.
type configInfo struct {
	Name   string `json:"name,omitempty"`
	Loaded bool   `json:"loaded"`
}

// libraryInfo holds library directory checks.
type libraryInfo struct {
	Dir      string `json:"dir"`
	Exists   bool   `json:"exists"`
	Writable bool   `json:"writable"`
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
	TempDir      string `json:"temp_dir"`
	TempWritable bool   `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	var common commonFlags
	fs.StringVarP(&common.config, "config", "c", "", "config file name or path")
	jsonOutput := fs.Bool("json", false, "print results as JSON")
	fs.Usage = func() { printDoctorUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	result := runDoctor(ctx, common, env)

	if *jsonOutput {
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

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, common commonFlags, env *Environment) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	cfg := checkConfig(result, common, env)
	checkConverter(ctx, result, cfg.Converter.Bin)
	checkLibrary(result, cfg.LibraryDir())
	checkEnvironment(result)
	checkSystem(result, cfg.Temp.Dir)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig resolves the config the other commands would use. On failure
// the defaults are checked instead.
func checkConfig(result *doctorResult, common commonFlags, env *Environment) *config.Config {
	result.Config.Name = common.config
	if result.Config.Name == "" {
		result.Config.Name = os.Getenv("RECIPEBOOK_CONFIG")
	}

	cfg, err := loadConfig(common, silentEnv(env))
	if err != nil {
		result.Errors = append(result.Errors, firstLine(err.Error()))
		cfg = config.DefaultConfig()
		applyEnvConfig(loadEnvConfig(), cfg)
		return cfg
	}
	result.Config.Loaded = result.Config.Name != ""
	return cfg
}

// checkConverter locates the converter and asks for its version.
func checkConverter(ctx context.Context, result *doctorResult, bin string) {
	result.Converter.Bin = bin

	path, err := exec.LookPath(bin)
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Converter %q not found. Install calibre or set RECIPEBOOK_CONVERTER_BIN", bin))
		return
	}
	result.Converter.Found = true
	result.Converter.Path = path

	ctx, cancel := context.WithTimeout(ctx, versionProbeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output() // #nosec G204 -- configured converter
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get converter version: %v", err))
		return
	}
	result.Converter.Version = firstLine(string(out))
}

// checkLibrary verifies the library directory is usable. A missing
// directory is only a warning: the first fetch creates it.
func checkLibrary(result *doctorResult, dir string) {
	result.Library.Dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Library directory %s does not exist yet; the first fetch creates it", dir))
		return
	}
	result.Library.Exists = true
	if !info.IsDir() {
		result.Errors = append(result.Errors, fmt.Sprintf("Library path %s is not a directory", dir))
		return
	}
	if err := fileutil.CheckWritableDir(dir); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Library directory not writable: %s", dir))
		return
	}
	result.Library.Writable = true
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	for _, name := range unknownEnvVars() {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Unknown environment variable %s (typo?)", name))
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint indicates which signal was detected.
func isContainer() (bool, string) {
	if os.Getenv("RECIPEBOOK_CONTAINER") == "1" {
		return true, "RECIPEBOOK_CONTAINER=1"
	}
	if hints.IsInContainer() {
		return true, "/.dockerenv"
	}
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem verifies the scratch directory is writable.
func checkSystem(result *doctorResult, tempDir string) {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	result.System.TempDir = tempDir
	if err := fileutil.CheckWritableDir(tempDir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tempDir))
		return
	}
	result.System.TempWritable = true
}

// silentEnv returns env with stderr discarded; doctor lists warnings itself.
func silentEnv(env *Environment) *Environment {
	quiet := *env
	quiet.Stderr = io.Discard
	return &quiet
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "%s doctor\n", config.AppName)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Converter")
	if r.Converter.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Converter.Path)
		if r.Converter.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Converter.Version)
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] %s not found\n", r.Converter.Bin)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration")
	switch {
	case r.Config.Loaded:
		fmt.Fprintf(w, "  [OK] Loaded %s\n", r.Config.Name)
	case r.Config.Name != "":
		fmt.Fprintf(w, "  [ERROR] Could not load %s\n", r.Config.Name)
	default:
		fmt.Fprintln(w, "  [OK] Using defaults")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Library")
	switch {
	case r.Library.Writable:
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Library.Dir)
	case !r.Library.Exists:
		fmt.Fprintf(w, "  [WARN] %s: not created yet\n", r.Library.Dir)
	default:
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Library.Dir)
	}
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
		fmt.Fprintf(w, "  [OK] Temp directory: %s writable\n", r.System.TempDir)
	} else {
		fmt.Fprintf(w, "  [ERROR] Temp directory: %s not writable\n", r.System.TempDir)
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
		fmt.Fprintln(w, "Status: Ready to fetch")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
