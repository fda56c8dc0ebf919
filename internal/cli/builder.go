package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hbjs97/qrew-toolchain/internal/resolver"
	"github.com/hbjs97/qrew-toolchain/internal/shell"
	"github.com/hbjs97/qrew-toolchain/internal/triplet"
	"github.com/spf13/cobra"
)

// BuilderBinary는 triplet 캐시형 도구의 실행 파일 이름이다.
const BuilderBinary = "toolchain-builder-env"

// BuilderApp은 toolchain-builder-env CLI의 의존성 묶음이다.
// 빌드 디렉토리가 없어도 실패하지 않고 경고 주석만 출력한다.
type BuilderApp struct {
	Env  resolver.Env
	Host triplet.Host

	buildDir string
	verbose  bool
	logger   *slog.Logger
}

// NewBuilderApp은 현재 프로세스 환경과 호스트 정보로 BuilderApp을 생성한다.
func NewBuilderApp() *BuilderApp {
	return &BuilderApp{
		Env:  resolver.EnvFromProcess(),
		Host: triplet.HostFromSystem(),
	}
}

// NewRootCmd는 toolchain-builder-env의 루트 명령을 생성한다.
func (b *BuilderApp) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   BuilderBinary,
		Short: "LLVM/MLIR 빌드 디렉토리의 CMake export 문을 출력한다",
		Example: `  eval "$(toolchain-builder-env)"
  eval "$(toolchain-builder-env --build-dir ~/src/llvm-project/build)"`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			b.logger = newLogger(cmd, b.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return b.runExports(cmd)
		},
	}
	cmd.SetVersionTemplate(BuilderBinary + " {{.Version}}\n")

	cmd.Flags().StringVar(&b.buildDir, "build-dir", "",
		"LLVM 빌드 디렉토리 (기본: ~/.cache/toolchain-builder/llvm-mlir/<triplet>/build)")
	cmd.PersistentFlags().BoolVar(&b.verbose, "verbose", false, "판정 과정을 stderr에 출력")

	cmd.AddCommand(b.newTripletCmd())
	return cmd
}

// BuildDir는 --build-dir가 주어지면 그대로, 아니면 캐시 기본 경로를 반환한다.
func (b *BuilderApp) BuildDir() string {
	if b.buildDir != "" {
		return b.buildDir
	}
	return triplet.DefaultBuildDir(b.Env.CacheDir, b.Host)
}

func (b *BuilderApp) runExports(cmd *cobra.Command) error {
	bd := b.BuildDir()
	b.logger.Debug("build dir selected", "path", bd, "explicit", b.buildDir != "", "triplet", triplet.Detect(b.Host))

	out := cmd.OutOrStdout()
	if _, err := os.Stat(bd); err != nil {
		fmt.Fprintf(out, "# WARNING: build dir does not exist yet: %s\n", bd)
	}
	return shell.BuildDirExports(bd).Render(out, shell.POSIX)
}

func (b *BuilderApp) newTripletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triplet",
		Short: "현재 호스트의 triplet을 출력한다",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), triplet.Detect(b.Host))
		},
	}
}
