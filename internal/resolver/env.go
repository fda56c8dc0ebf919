package resolver

import (
	"os"
	"path/filepath"
)

// RootEnvVar는 툴체인 루트를 직접 지정하는 환경변수 이름이다.
const RootEnvVar = "QREW_TOOLCHAIN_ROOT"

// Env는 해석 로직이 참조하는 프로세스 환경의 스냅샷이다.
// 해석 함수는 os 패키지를 직접 읽지 않고 Env만 본다.
type Env struct {
	// RootOverride는 QREW_TOOLCHAIN_ROOT 값이다. 비어 있으면 미설정.
	RootOverride string
	HomeDir      string
	CacheDir     string
	WorkDir      string
}

// EnvFromProcess는 현재 프로세스 환경으로 Env를 구성한다.
// 조회에 실패한 항목은 빈 문자열로 남고 해당 단계는 건너뛴다.
func EnvFromProcess() Env {
	env := Env{RootOverride: os.Getenv(RootEnvVar)}
	if home, err := os.UserHomeDir(); err == nil {
		env.HomeDir = home
	}
	// macOS에서도 ~/Library/Caches가 아닌 ~/.cache를 쓴다. toolchain-builder가 그 위치에 빌드한다.
	if xdg := os.Getenv("XDG_CACHE_HOME"); filepath.IsAbs(xdg) {
		env.CacheDir = xdg
	} else if env.HomeDir != "" {
		env.CacheDir = filepath.Join(env.HomeDir, ".cache")
	}
	if wd, err := os.Getwd(); err == nil {
		env.WorkDir = wd
	}
	return env
}
