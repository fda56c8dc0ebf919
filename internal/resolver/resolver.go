package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrToolchainNotFound는 어떤 후보 루트도 존재하지 않을 때 반환된다.
var ErrToolchainNotFound = errors.New("툴체인을 찾을 수 없음")

// ErrBuildDirNotFound는 루트 안에서 LLVM 빌드 디렉토리를 찾지 못했을 때 반환된다.
var ErrBuildDirNotFound = errors.New("LLVM 빌드 디렉토리를 찾을 수 없음")

// 루트가 선택된 근거.
const (
	ReasonEnv  = "env"
	ReasonHome = "home"
	ReasonCwd  = "cwd"
)

// Layout은 후보 경로의 이름 규칙이다.
type Layout struct {
	HomeRoot     string // $HOME 기준 상대 경로
	CwdRoot      string // 작업 디렉토리 기준 상대 경로
	BuildDirName string
}

// DefaultLayout은 기본 이름 규칙을 반환한다.
func DefaultLayout() Layout {
	return Layout{
		HomeRoot:     ".qrew-toolchain",
		CwdRoot:      "toolchain",
		BuildDirName: "llvm-build",
	}
}

// Result는 루트 판정 결과다.
type Result struct {
	Root   string
	Reason string
}

// Location은 루트와 그 안의 빌드 디렉토리다.
type Location struct {
	Root     string
	BuildDir string
	Reason   string
}

// Resolver는 3단계 툴체인 루트 판정 파이프라인이다.
type Resolver struct {
	env    Env
	layout Layout
	log    *slog.Logger
}

// New는 새 Resolver를 생성한다. logger가 nil이면 slog.Default를 쓴다.
func New(env Env, layout Layout, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{env: env, layout: layout, log: logger}
}

// FindRoot는 후보 루트를 순서대로 검사해 처음 존재하는 경로를 반환한다.
func (r *Resolver) FindRoot() (*Result, error) {
	type candidate struct {
		path   string
		reason string
	}
	var candidates []candidate

	// Step 1: 환경변수
	if r.env.RootOverride != "" {
		candidates = append(candidates, candidate{r.env.RootOverride, ReasonEnv})
	}
	// Step 2: 홈 디렉토리 기본 경로
	if r.env.HomeDir != "" && r.layout.HomeRoot != "" {
		candidates = append(candidates, candidate{filepath.Join(r.env.HomeDir, r.layout.HomeRoot), ReasonHome})
	}
	// Step 3: 작업 디렉토리 하위
	if r.env.WorkDir != "" && r.layout.CwdRoot != "" {
		candidates = append(candidates, candidate{filepath.Join(r.env.WorkDir, r.layout.CwdRoot), ReasonCwd})
	}

	for _, c := range candidates {
		if exists(c.path) {
			r.log.Debug("toolchain root found", "path", c.path, "reason", c.reason)
			return &Result{Root: c.path, Reason: c.reason}, nil
		}
		r.log.Debug("toolchain root candidate missing", "path", c.path, "reason", c.reason)
	}
	return nil, fmt.Errorf("resolver.FindRoot: %w", ErrToolchainNotFound)
}

// BuildDir는 루트 안의 LLVM 빌드 디렉토리를 찾는다.
// BuildDirName과 정확히 일치하는 항목이 우선이고, 없으면 이름에 "llvm"이
// (대소문자 무시) 포함된 첫 번째 하위 디렉토리를 고른다.
// 복수 매칭 시 디렉토리 목록 순서상 첫 항목이 선택된다.
func (r *Resolver) BuildDir(root string) (string, error) {
	if r.layout.BuildDirName != "" {
		preferred := filepath.Join(root, r.layout.BuildDirName)
		if exists(preferred) {
			r.log.Debug("build dir found", "path", preferred, "match", "exact")
			return preferred, nil
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("resolver.BuildDir: %w: %w", ErrBuildDirNotFound, err)
	}
	for _, e := range entries {
		if !isDir(root, e) {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name()), "llvm") {
			path := filepath.Join(root, e.Name())
			r.log.Debug("build dir found", "path", path, "match", "substring")
			return path, nil
		}
	}
	return "", fmt.Errorf("resolver.BuildDir: %s: %w", root, ErrBuildDirNotFound)
}

// Locate는 루트와 빌드 디렉토리를 모두 판정한다.
func (r *Resolver) Locate() (*Location, error) {
	res, err := r.FindRoot()
	if err != nil {
		return nil, err
	}
	buildDir, err := r.BuildDir(res.Root)
	if err != nil {
		return nil, err
	}
	return &Location{Root: res.Root, BuildDir: buildDir, Reason: res.Reason}, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// isDir는 심볼릭 링크를 따라가 디렉토리 여부를 판단한다.
func isDir(root string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, e.Name()))
	return err == nil && info.IsDir()
}
