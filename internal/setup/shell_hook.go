// Package setup installs the qrew-toolchain shell hook into rc files.
package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/qrew-toolchain/internal/shell"
)

// DetectShell은 $SHELL에서 현재 사용자의 셸 이름을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// ShellRCPath는 셸별 RC 파일 경로를 반환한다.
func ShellRCPath(home, shellType string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "sh":
		return filepath.Join(home, ".profile")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "qrew-toolchain.fish")
	default:
		return ""
	}
}

// InstallShellHook은 셸 RC 파일에 hook을 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallShellHook(shellType, rcPath, binary string) (bool, error) {
	snippet := shell.HookSnippet(shellType, binary)
	if snippet == "" {
		return false, fmt.Errorf("setup.InstallShellHook: %w: %s", shell.ErrUnsupportedShell, shellType)
	}

	existing, _ := os.ReadFile(rcPath) // 파일이 없으면 빈 바이트
	if strings.Contains(string(existing), shell.HookMarker) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0700); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("setup.InstallShellHook: %w", err)
	}
	return true, nil
}
