package platform

import (
	"os"
	"os/exec"
	"strings"
)

// kernelStatePath is where the Linux kernel advertises the sleep states it
// supports, one token per state ("freeze mem disk").
const kernelStatePath = "/sys/power/state"

// ExecutableExists reports whether name resolves to an executable on PATH.
func ExecutableExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// KernelSupportsMode reports whether the Linux kernel advertises support
// for the given sleep state token (mem, disk, hybrid). On any other OS, or
// when the capability file is unreadable, the answer is false.
func KernelSupportsMode(mode string) bool {
	data, err := os.ReadFile(kernelStatePath)
	if err != nil {
		return false
	}

	return kernelModeSupported(string(data), mode)
}

// kernelModeSupported matches mode against the whitespace-separated state
// tokens read from the kernel capability file.
func kernelModeSupported(data, mode string) bool {
	for _, token := range strings.Fields(data) {
		if token == mode {
			return true
		}
	}

	return false
}
