package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedShell는 알 수 없는 셸 이름이 주어졌을 때 반환된다.
var ErrUnsupportedShell = errors.New("지원하지 않는 셸 유형")

// Dialect는 export 문법 계열이다.
type Dialect int

const (
	// POSIX는 bash, zsh, sh 공통 문법이다.
	POSIX Dialect = iota
	// Fish는 fish의 set -gx 문법이다.
	Fish
)

// Names는 --shell 플래그가 허용하는 셸 이름이다.
var Names = []string{"bash", "zsh", "sh", "fish"}

// ParseDialect는 셸 이름을 Dialect로 변환한다.
func ParseDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bash", "zsh", "sh":
		return POSIX, nil
	case "fish":
		return Fish, nil
	default:
		return POSIX, fmt.Errorf("shell.ParseDialect: %w: %s", ErrUnsupportedShell, name)
	}
}

func (d Dialect) String() string {
	if d == Fish {
		return "fish"
	}
	return "posix"
}
