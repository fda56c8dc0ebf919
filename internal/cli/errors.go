package cli

import (
	"errors"

	"github.com/hbjs97/qrew-toolchain/internal/config"
	"github.com/hbjs97/qrew-toolchain/internal/resolver"
	"github.com/hbjs97/qrew-toolchain/internal/shell"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrToolchainNotFound는 후보 루트가 모두 없을 때의 sentinel error다.
	ErrToolchainNotFound = resolver.ErrToolchainNotFound
	// ErrBuildDirNotFound는 루트 안에 빌드 디렉토리가 없을 때의 sentinel error다.
	ErrBuildDirNotFound = resolver.ErrBuildDirNotFound
	// ErrUnsupportedShell는 --shell 값이 지원되지 않을 때의 sentinel error다.
	ErrUnsupportedShell = shell.ErrUnsupportedShell
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)

// ErrDoctorFailed는 doctor 진단에 FAIL 항목이 있을 때 반환된다.
var ErrDoctorFailed = errors.New("진단 실패 항목 있음")
