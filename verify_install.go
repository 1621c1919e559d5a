package webcompile

import (
	"fmt"
	"os/exec"
	"strings"

	. "github.com/tinywasm/fmt"
)

// commandForTarget returns the external compiler executable configured
// for the target.
func (w *WebCompiler) commandForTarget(target CompileTarget) string {
	if target == TargetWasm {
		return w.Config.WasmCommand
	}
	return w.Config.JSCommand
}

// VerifyCompilerInstallation checks if the external compiler for the
// target is reachable through PATH
func (w *WebCompiler) VerifyCompilerInstallation(target CompileTarget) error {
	cmd := w.commandForTarget(target)
	_, err := exec.LookPath(cmd)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %v", cmd, err)
	}
	return nil
}

// CompilerVersion returns the version reported by the target's compiler
func (w *WebCompiler) CompilerVersion(target CompileTarget) (string, error) {
	cmd := exec.Command(w.commandForTarget(target), "--version")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get %s version: %v", w.commandForTarget(target), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// verifyCompilerInstallationStatus checks and caches the installation
// status of the compiler behind the preset
func (w *WebCompiler) verifyCompilerInstallationStatus(preset string) {
	w.compilerInstalled = w.VerifyCompilerInstallation(w.targetForPreset(preset)) == nil
}

// handleCompilerMissing reports a missing external compiler
func (w *WebCompiler) handleCompilerMissing(preset string) error {
	cmd := w.commandForTarget(w.targetForPreset(preset))
	return Err("Error:", D.Cannot, "find", cmd, "in PATH")
}
