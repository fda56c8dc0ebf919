package shell

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// Assignment는 하나의 환경변수 대입이다.
// Prepend가 true면 기존 값을 보존하고 Value를 앞에 붙인다.
type Assignment struct {
	Name    string
	Value   string
	Prepend bool
	// Comment가 비어 있지 않으면 대입 대신 주석 한 줄을 출력한다.
	Comment string
}

// ExportSet은 출력 순서가 보존되는 대입 목록이다.
type ExportSet []Assignment

// Set은 단순 대입을 추가한다.
func (s ExportSet) Set(name, value string) ExportSet {
	return append(s, Assignment{Name: name, Value: value})
}

// Prepend는 기존 값 앞에 붙이는 대입을 추가한다.
func (s ExportSet) Prepend(name, value string) ExportSet {
	return append(s, Assignment{Name: name, Value: value, Prepend: true})
}

// Note는 주석 줄을 추가한다.
func (s ExportSet) Note(text string) ExportSet {
	return append(s, Assignment{Comment: text})
}

// Format은 d 문법으로 한 줄씩 렌더링한 문자열을 반환한다.
func (s ExportSet) Format(d Dialect) string {
	var b strings.Builder
	for _, a := range s {
		b.WriteString(a.Line(d))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render는 Format 결과를 w에 쓴다.
func (s ExportSet) Render(w io.Writer, d Dialect) error {
	if _, err := io.WriteString(w, s.Format(d)); err != nil {
		return fmt.Errorf("shell.Render: %w", err)
	}
	return nil
}

// Line은 대입 하나를 d 문법의 한 줄로 만든다 (개행 없음).
func (a Assignment) Line(d Dialect) string {
	if a.Comment != "" {
		return "# " + strings.ReplaceAll(a.Comment, "\n", " ")
	}
	if d == Fish {
		if a.Prepend {
			// fish의 PATH류 변수는 리스트라 기존 값을 별도 원소로 둔다.
			return fmt.Sprintf("set -gx %s %s $%s", a.Name, quoteFish(a.Value), a.Name)
		}
		return fmt.Sprintf("set -gx %s %s", a.Name, quoteFish(a.Value))
	}
	if a.Prepend {
		prior := "${" + a.Name + ":-}"
		if a.Name == "PATH" {
			prior = "$PATH"
		}
		return fmt.Sprintf(`export %s="%s:%s"`, a.Name, escapePOSIX(a.Value), prior)
	}
	return fmt.Sprintf(`export %s="%s"`, a.Name, escapePOSIX(a.Value))
}

// escapePOSIX는 큰따옴표 안에서 특수한 의미를 갖는 문자를 이스케이프한다.
func escapePOSIX(s string) string {
	return posixEscaper.Replace(s)
}

var posixEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "`", "\\`")

func quoteFish(s string) string {
	return `"` + fishEscaper.Replace(s) + `"`
}

var fishEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

// 툴체인 export에 쓰이는 변수 이름.
const (
	VarBuildDir      = "LLVM_BUILD_DIR"
	VarPath          = "PATH"
	VarLibraryPath   = "LD_LIBRARY_PATH"
	VarToolchainRoot = "QREW_TOOLCHAIN_ROOT"
	VarCMakePrefix   = "CMAKE_PREFIX_PATH"
	VarLLVMDir       = "LLVM_DIR"
	VarMLIRDir       = "MLIR_DIR"
)

// ToolchainExports는 루트 탐색형 도구의 export 목록을 만든다.
func ToolchainExports(root, buildDir string) ExportSet {
	var s ExportSet
	s = s.Set(VarBuildDir, buildDir)
	s = s.Prepend(VarPath, joinSlash(buildDir, "bin"))
	s = s.Prepend(VarLibraryPath, joinSlash(buildDir, "lib"))
	s = s.Set(VarToolchainRoot, root)
	return s
}

// BuildDirExports는 빌드 디렉토리 기준 CMake 힌트 export 목록을 만든다.
func BuildDirExports(buildDir string) ExportSet {
	cmakePrefix := joinSlash(buildDir, "lib", "cmake")
	var s ExportSet
	s = s.Set(VarBuildDir, buildDir)
	s = s.Prepend(VarCMakePrefix, cmakePrefix)
	s = s.Note("Optional CMake hints:")
	s = s.Set(VarLLVMDir, joinSlash(cmakePrefix, "llvm"))
	s = s.Set(VarMLIRDir, joinSlash(cmakePrefix, "mlir"))
	return s
}

// Unset은 툴체인 마커 변수를 제거하는 명령을 생성한다.
// PATH와 LD_LIBRARY_PATH는 되돌릴 수 없으므로 건드리지 않는다.
func Unset(d Dialect) string {
	if d == Fish {
		return "set -e LLVM_BUILD_DIR\nset -e QREW_TOOLCHAIN_ROOT\n"
	}
	return "unset LLVM_BUILD_DIR\nunset QREW_TOOLCHAIN_ROOT\n"
}

// joinSlash는 입력 경로를 정규화하지 않고 "/"로 이어 붙인다.
// 사용자가 준 경로가 출력에 그대로 남아야 한다.
func joinSlash(base string, elem ...string) string {
	return strings.TrimSuffix(base, "/") + "/" + path.Join(elem...)
}
