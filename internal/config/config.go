package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/qrew-toolchain/internal/resolver"
	"github.com/hbjs97/qrew-toolchain/internal/shell"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 qrew-toolchain 설정 파일의 최상위 구조체다.
// 모든 필드는 선택 사항이며 비어 있으면 기본값이 적용된다.
type Config struct {
	Version      int    `toml:"version"`
	DefaultShell string `toml:"default_shell"`
	HomeRoot     string `toml:"home_root"`
	CwdRoot      string `toml:"cwd_root"`
	BuildDirName string `toml:"build_dir_name"`
}

// Default는 설정 파일이 없을 때의 Config를 반환한다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath는 기본 설정 파일 경로를 반환한다.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", "qrew-toolchain", "config.toml")
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본값을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 저장한다 (0600 권한). 상위 디렉토리가 없으면 생성한다.
func Save(path string, cfg *Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// Layout은 설정값으로 resolver.Layout을 구성한다.
func (c *Config) Layout() resolver.Layout {
	return resolver.Layout{
		HomeRoot:     c.HomeRoot,
		CwdRoot:      c.CwdRoot,
		BuildDirName: c.BuildDirName,
	}
}

func (c *Config) applyDefaults() {
	def := resolver.DefaultLayout()
	if c.Version == 0 {
		c.Version = 1
	}
	if c.DefaultShell == "" {
		c.DefaultShell = "bash"
	}
	if c.HomeRoot == "" {
		c.HomeRoot = def.HomeRoot
	}
	if c.CwdRoot == "" {
		c.CwdRoot = def.CwdRoot
	}
	if c.BuildDirName == "" {
		c.BuildDirName = def.BuildDirName
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if _, err := shell.ParseDialect(c.DefaultShell); err != nil {
		return fmt.Errorf("config.Load: %w: default_shell %q", ErrConfig, c.DefaultShell)
	}
	if filepath.IsAbs(c.HomeRoot) {
		return fmt.Errorf("config.Load: %w: home_root는 상대 경로여야 함", ErrConfig)
	}
	if filepath.IsAbs(c.CwdRoot) {
		return fmt.Errorf("config.Load: %w: cwd_root는 상대 경로여야 함", ErrConfig)
	}
	if filepath.Base(c.BuildDirName) != c.BuildDirName {
		return fmt.Errorf("config.Load: %w: build_dir_name은 디렉토리 이름이어야 함", ErrConfig)
	}
	return nil
}

// Template은 config init이 생성하는 기본 config.toml 내용이다.
const Template = `# qrew-toolchain configuration file

version = 1
# default_shell = "bash"          # bash, zsh, sh, fish
# home_root = ".qrew-toolchain"   # relative to $HOME
# cwd_root = "toolchain"          # relative to the working directory
# build_dir_name = "llvm-build"
`
