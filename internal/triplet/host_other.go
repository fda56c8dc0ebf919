//go:build !unix

package triplet

import "runtime"

// HostFromSystem은 런타임 GOOS/GOARCH로 현재 호스트 정보를 구성한다.
func HostFromSystem() Host {
	return hostFromRuntime(runtime.GOOS, runtime.GOARCH)
}
