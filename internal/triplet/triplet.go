// Package triplet derives the short OS-architecture identifier used to
// namespace cached LLVM/MLIR builds per host type.
package triplet

import (
	"path/filepath"
	"strings"
)

// Host는 triplet 계산에 쓰이는 OS 이름과 머신 아키텍처다.
// uname(1)의 sysname, machine 값과 같은 형식이다 (예: "Linux", "x86_64").
type Host struct {
	OS      string
	Machine string
}

// MacOSARM64는 Apple Silicon 호스트의 triplet이다.
const MacOSARM64 = "macos-arm64"

// Detect는 호스트의 triplet을 반환한다.
func Detect(h Host) string {
	os := strings.ToLower(strings.TrimSpace(h.OS))
	mach := strings.ToLower(strings.TrimSpace(h.Machine))
	if os == "darwin" && (mach == "arm64" || mach == "aarch64") {
		return MacOSARM64
	}
	return os + "-" + mach
}

// DefaultBuildDir는 <cacheRoot>/toolchain-builder/llvm-mlir/<triplet>/build를 반환한다.
// 존재 여부는 확인하지 않는다.
func DefaultBuildDir(cacheRoot string, h Host) string {
	return filepath.Join(cacheRoot, "toolchain-builder", "llvm-mlir", Detect(h), "build")
}
