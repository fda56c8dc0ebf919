package shell

import "fmt"

// HookMarker는 rc 파일에 hook이 이미 설치되었는지 판단하는 표식이다.
const HookMarker = "qrew-toolchain shell integration"

// HookSnippet는 셸 시작 시 툴체인 환경을 불러오는 rc 스니펫을 반환한다.
// 지원하지 않는 셸이면 빈 문자열을 반환한다.
func HookSnippet(shellName, binary string) string {
	switch shellName {
	case "zsh", "bash", "sh":
		return fmt.Sprintf(`# %s (%s)
if command -v %s >/dev/null 2>&1; then
  eval "$(%s --shell %s 2>/dev/null)"
fi
`, HookMarker, shellName, binary, binary, shellName)
	case "fish":
		return fmt.Sprintf(`# %s (fish)
if command -q %s
  %s --shell fish 2>/dev/null | source
end
`, HookMarker, binary, binary)
	default:
		return ""
	}
}
