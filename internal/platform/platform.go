// Package platform decides which configurations are tested on the current host.
package platform

import (
	"context"

	"github.com/waabox/vextest/internal/console"
	"github.com/waabox/vextest/internal/domain"
)

// Configurations returns the configurations to test for goos, in test order.
// MSVC configurations are only included on Windows when msvcAvailable is true.
func Configurations(goos string, msvcAvailable bool) []domain.Configuration {
	switch goos {
	case "windows":
		configs := []domain.Configuration{"clang-cl-vulkan", "clang-cl-dx12"}
		if msvcAvailable {
			configs = append(configs, "msvc-vulkan", "msvc-dx12")
		}
		return configs
	case "linux":
		return []domain.Configuration{"gcc-vulkan", "clang-vulkan"}
	default:
		return nil
	}
}

// ExecutableName returns the file name of the test target binary on goos.
func ExecutableName(goos, target string) string {
	if goos == "windows" {
		return target + ".exe"
	}
	return target
}

// DetectCompiler reports whether the compiler driver can be invoked.
// Any process that starts counts, whatever its exit code.
func DetectCompiler(ctx context.Context, exec domain.ProcessExecutor, name string) bool {
	_, err := exec.Execute(ctx, domain.Command{Name: name, Capture: true})
	return err == nil
}

// Enumerate probes for the proprietary compiler on Windows and returns the
// configurations to test. A missing compiler only produces a warning.
func Enumerate(ctx context.Context, goos string, exec domain.ProcessExecutor, compiler string, out *console.Printer) []domain.Configuration {
	if goos != "windows" {
		return Configurations(goos, false)
	}
	available := DetectCompiler(ctx, exec, compiler)
	if !available {
		out.Warning("MSVC compiler (%s) not found in PATH", compiler)
		out.Line("   For MSVC builds, please run from:")
		out.Line("   - Developer Command Prompt for VS 2022, or")
		out.Line("   - Developer PowerShell for VS 2022")
		out.Line("   Continuing anyway - Clang builds should still work...")
	}
	return Configurations(goos, available)
}

// Override replaces the enumerated list when names is non-empty.
func Override(configs []domain.Configuration, names []string) []domain.Configuration {
	if len(names) == 0 {
		return configs
	}
	out := make([]domain.Configuration, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Configuration(n))
	}
	return out
}
