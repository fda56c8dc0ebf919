package cli

import (
	"fmt"

	"github.com/hbjs97/qrew-toolchain/internal/setup"
	"github.com/hbjs97/qrew-toolchain/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var install bool
	var rcPath string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "셸 시작 시 툴체인 환경을 불러오는 rc 스니펫을 출력하거나 설치한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.hookShell(cmd)
			if err != nil {
				return err
			}
			if !install {
				fmt.Fprint(cmd.OutOrStdout(), shell.HookSnippet(name, ToolchainBinary))
				return nil
			}

			if rcPath == "" {
				rcPath = setup.ShellRCPath(a.Env.HomeDir, name)
			}
			installed, err := setup.InstallShellHook(name, rcPath, ToolchainBinary)
			if err != nil {
				return err
			}
			if installed {
				fmt.Fprintf(cmd.ErrOrStderr(), "hook 설치 완료: %s\n", rcPath)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "hook이 이미 설치되어 있음: %s\n", rcPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "셸 RC 파일에 hook 추가")
	cmd.Flags().StringVar(&rcPath, "rc", "", "RC 파일 경로 (기본: 셸별 기본 경로)")
	return cmd
}

// hookShell은 --shell, $SHELL, 설정의 default_shell 순으로 셸 이름을 정한다.
func (a *App) hookShell(cmd *cobra.Command) (string, error) {
	if !cmd.Flags().Changed("shell") {
		if detected := setup.DetectShell(); detected != "" {
			if _, err := shell.ParseDialect(detected); err == nil {
				return detected, nil
			}
		}
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return "", err
	}
	name, _, err := a.resolveShell(cmd, cfg)
	return name, err
}
