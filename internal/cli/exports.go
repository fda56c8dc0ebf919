package cli

import (
	"fmt"

	"github.com/hbjs97/qrew-toolchain/internal/doctor"
	"github.com/hbjs97/qrew-toolchain/internal/shell"
	"github.com/spf13/cobra"
)

// runExports는 툴체인을 찾아 export 문을 출력한다.
// 실패 경로에서는 stdout에 아무것도 쓰지 않는다.
func (a *App) runExports(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	_, dialect, err := a.resolveShell(cmd, cfg)
	if err != nil {
		return err
	}

	r := a.newResolver(cfg)
	res, err := r.FindRoot()
	if err != nil {
		return fmt.Errorf("%w. %s하세요", ErrToolchainNotFound, doctor.InstallHint)
	}
	buildDir, err := r.BuildDir(res.Root)
	if err != nil {
		return fmt.Errorf("%s: %w", res.Root, ErrBuildDirNotFound)
	}

	a.logger.Debug("exporting toolchain", "root", res.Root, "build_dir", buildDir, "dialect", dialect)
	return shell.ToolchainExports(res.Root, buildDir).Render(cmd.OutOrStdout(), dialect)
}

func (a *App) newUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset",
		Short: "LLVM_BUILD_DIR, QREW_TOOLCHAIN_ROOT를 제거하는 명령을 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			_, dialect, err := a.resolveShell(cmd, cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), shell.Unset(dialect))
			return nil
		},
	}
}
