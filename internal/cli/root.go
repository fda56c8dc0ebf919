package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hbjs97/qrew-toolchain/internal/cmdexec"
	"github.com/hbjs97/qrew-toolchain/internal/config"
	"github.com/hbjs97/qrew-toolchain/internal/resolver"
	"github.com/hbjs97/qrew-toolchain/internal/shell"
	"github.com/spf13/cobra"
)

// Version은 두 바이너리가 --version으로 출력하는 버전이다.
const Version = "0.1.0"

// ToolchainBinary는 루트 탐색형 도구의 실행 파일 이름이다.
const ToolchainBinary = "qrew-toolchain"

// App은 qrew-toolchain CLI의 의존성 묶음이다.
type App struct {
	Env       resolver.Env
	Commander cmdexec.Commander
	// CfgPath가 비어 있으면 ~/.config/qrew-toolchain/config.toml을 쓴다.
	CfgPath string

	shellName string
	verbose   bool
	logger    *slog.Logger
}

// NewApp은 현재 프로세스 환경으로 App을 생성한다.
func NewApp() *App {
	return &App{
		Env:       resolver.EnvFromProcess(),
		Commander: &cmdexec.RealCommander{},
	}
}

// NewRootCmd는 qrew-toolchain의 루트 명령을 생성한다.
// 루트 명령 자체가 export 문을 출력한다.
func (a *App) NewRootCmd() *cobra.Command {
	if a.CfgPath == "" {
		a.CfgPath = config.DefaultPath(a.Env.HomeDir)
	}

	cmd := &cobra.Command{
		Use:   ToolchainBinary,
		Short: "LLVM/MLIR 툴체인 환경변수 export 문을 출력한다",
		Long: "LLVM/MLIR 툴체인을 찾아 셸이 eval할 수 있는 환경변수 export 문을 출력한다.\n\n" +
			"탐색 순서: $" + resolver.RootEnvVar + ", ~/.qrew-toolchain, ./toolchain",
		Example: `  eval "$(qrew-toolchain)"
  qrew-toolchain --shell fish | source`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = newLogger(cmd, a.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExports(cmd)
		},
	}
	cmd.SetVersionTemplate(ToolchainBinary + " {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.shellName, "shell", "bash",
		fmt.Sprintf("셸 유형 (%s)", strings.Join(shell.Names, ", ")))
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "탐색 과정을 stderr에 출력")

	cmd.AddCommand(
		a.newDoctorCmd(),
		a.newHookCmd(),
		a.newUnsetCmd(),
		a.newConfigCmd(),
	)
	return cmd
}

// newLogger는 stderr로 향하는 slog 로거를 만든다. stdout은 eval 대상이라 쓰지 않는다.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadConfig는 설정 파일을 읽는다. 파일이 없으면 기본값이다.
func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("config loaded", "path", a.CfgPath, "default_shell", cfg.DefaultShell)
	return cfg, nil
}

// resolveShell은 --shell이 명시되지 않았으면 설정의 default_shell을 쓴다.
func (a *App) resolveShell(cmd *cobra.Command, cfg *config.Config) (string, shell.Dialect, error) {
	name := a.shellName
	if !cmd.Flags().Changed("shell") {
		name = cfg.DefaultShell
	}
	d, err := shell.ParseDialect(name)
	if err != nil {
		return "", d, fmt.Errorf("%w: %s (지원: %s)", ErrUnsupportedShell, name, strings.Join(shell.Names, ", "))
	}
	return strings.ToLower(name), d, nil
}

func (a *App) newResolver(cfg *config.Config) *resolver.Resolver {
	return resolver.New(a.Env, cfg.Layout(), a.logger)
}
