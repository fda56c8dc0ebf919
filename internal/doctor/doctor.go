package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hbjs97/qrew-toolchain/internal/cmdexec"
	"github.com/hbjs97/qrew-toolchain/internal/resolver"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// InstallHint는 툴체인 설치 방법 안내 문구다.
const InstallHint = "scripts/download_and_setup.sh 로 설치"

// binary는 빌드 디렉토리 bin 아래에서 확인할 실행 파일이다.
type binary struct {
	name     string
	required bool
}

var binaries = []binary{
	{"llvm-config", true},
	{"mlir-opt", true},
	{"clang", false},
}

// CheckOverride는 QREW_TOOLCHAIN_ROOT가 존재하지 않는 경로를 가리키는지 확인한다.
func CheckOverride(env resolver.Env) DiagResult {
	if env.RootOverride == "" {
		return DiagResult{Name: "env_root", Status: StatusOK, Message: resolver.RootEnvVar + " 미설정"}
	}
	if _, err := os.Stat(env.RootOverride); err != nil {
		return DiagResult{
			Name:    "env_root",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s=%s 경로 없음, 다음 후보로 넘어감", resolver.RootEnvVar, env.RootOverride),
			Fix:     fmt.Sprintf("unset %s 또는 경로 수정", resolver.RootEnvVar),
		}
	}
	return DiagResult{Name: "env_root", Status: StatusOK, Message: fmt.Sprintf("%s=%s", resolver.RootEnvVar, env.RootOverride)}
}

// CheckLocation은 루트와 빌드 디렉토리 판정을 진단한다.
// 판정에 실패하면 loc은 nil이다.
func CheckLocation(r *resolver.Resolver) (*resolver.Location, []DiagResult) {
	res, err := r.FindRoot()
	if err != nil {
		return nil, []DiagResult{{
			Name:    "toolchain_root",
			Status:  StatusFail,
			Message: "툴체인 루트 없음",
			Fix:     InstallHint,
		}}
	}
	results := []DiagResult{{
		Name:    "toolchain_root",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%s)", res.Root, res.Reason),
	}}

	buildDir, err := r.BuildDir(res.Root)
	if err != nil {
		return nil, append(results, DiagResult{
			Name:    "build_dir",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 안에 LLVM 빌드 디렉토리 없음", res.Root),
			Fix:     InstallHint,
		})
	}
	results = append(results, DiagResult{Name: "build_dir", Status: StatusOK, Message: buildDir})
	return &resolver.Location{Root: res.Root, BuildDir: buildDir, Reason: res.Reason}, results
}

// CheckBinaries는 빌드 디렉토리의 주요 바이너리를 --version으로 실행해 본다.
// 공유 라이브러리를 찾을 수 있도록 LD_LIBRARY_PATH에 <buildDir>/lib를 붙인다.
func CheckBinaries(ctx context.Context, cmd cmdexec.Commander, buildDir string) []DiagResult {
	libDir := filepath.Join(buildDir, "lib")
	ldPath := libDir
	if prior := os.Getenv("LD_LIBRARY_PATH"); prior != "" {
		ldPath = libDir + string(os.PathListSeparator) + prior
	}
	env := map[string]string{"LD_LIBRARY_PATH": ldPath}

	var results []DiagResult
	for _, b := range binaries {
		path := filepath.Join(buildDir, "bin", b.name)
		missing := StatusWarn
		if b.required {
			missing = StatusFail
		}
		if _, err := os.Stat(path); err != nil {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  missing,
				Message: fmt.Sprintf("%s 없음", path),
				Fix:     "툴체인을 다시 빌드하거나 " + InstallHint,
			})
			continue
		}
		out, err := cmd.RunWithEnv(ctx, env, path, "--version")
		if err != nil {
			results = append(results, DiagResult{
				Name:    b.name,
				Status:  missing,
				Message: fmt.Sprintf("%s 실행 실패: %v", b.name, err),
				Fix:     fmt.Sprintf("LD_LIBRARY_PATH=%s %s --version 로 확인", libDir, path),
			})
			continue
		}
		results = append(results, DiagResult{
			Name:    b.name,
			Status:  StatusOK,
			Message: firstLine(string(out)),
		})
	}
	return results
}

// CheckCMakeDirs는 CMake 패키지 디렉토리 존재 여부를 확인한다.
func CheckCMakeDirs(buildDir string) []DiagResult {
	var results []DiagResult
	for _, pkg := range []string{"llvm", "mlir"} {
		dir := filepath.Join(buildDir, "lib", "cmake", pkg)
		name := "cmake_" + pkg
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			results = append(results, DiagResult{
				Name:    name,
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", dir),
				Fix:     "CMake find_package가 실패할 수 있음",
			})
			continue
		}
		results = append(results, DiagResult{Name: name, Status: StatusOK, Message: dir})
	}
	return results
}

// RunAll은 모든 진단을 실행한다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, env resolver.Env, r *resolver.Resolver) []DiagResult {
	results := []DiagResult{CheckOverride(env)}
	loc, locResults := CheckLocation(r)
	results = append(results, locResults...)
	if loc == nil {
		return results
	}
	results = append(results, CheckBinaries(ctx, cmd, loc.BuildDir)...)
	results = append(results, CheckCMakeDirs(loc.BuildDir)...)
	return results
}

// HasFailure는 결과 중 FAIL이 있는지 확인한다.
func HasFailure(results []DiagResult) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
