//go:build unix

package triplet

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// HostFromSystem은 uname(2)로 현재 호스트 정보를 조회한다.
// uname 실패 시 런타임 GOOS/GOARCH로 대체한다.
func HostFromSystem() Host {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return hostFromRuntime(runtime.GOOS, runtime.GOARCH)
	}
	return Host{
		OS:      unix.ByteSliceToString(uts.Sysname[:]),
		Machine: unix.ByteSliceToString(uts.Machine[:]),
	}
}
