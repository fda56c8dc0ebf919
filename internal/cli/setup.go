package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/qrew-toolchain/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "설정 파일을 관리한다",
	}
	cmd.AddCommand(a.newConfigInitCmd(), a.newConfigPathCmd())
	return cmd
}

func (a *App) newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "기본 설정 파일을 생성한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigInit(cmd, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일 덮어쓰기")
	return cmd
}

// runConfigInit는 설정 파일 템플릿을 생성한다.
func (a *App) runConfigInit(cmd *cobra.Command, force bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil && !force {
		return fmt.Errorf("cli.config: 설정 파일이 이미 존재합니다: %s (--force로 덮어쓰기)", a.CfgPath)
	}

	// --shell이 주어지면 그 값을 default_shell로 기록한다.
	if cmd.Flags().Changed("shell") {
		cfg := config.Default()
		name, _, err := a.resolveShell(cmd, cfg)
		if err != nil {
			return err
		}
		cfg.DefaultShell = name
		if err := config.Save(a.CfgPath, cfg); err != nil {
			return fmt.Errorf("cli.config: %w", err)
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(a.CfgPath), 0700); err != nil {
			return fmt.Errorf("cli.config: 디렉토리 생성 실패: %w", err)
		}
		if err := os.WriteFile(a.CfgPath, []byte(config.Template), 0600); err != nil {
			return fmt.Errorf("cli.config: 설정 파일 생성 실패: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	return nil
}

func (a *App) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "사용 중인 설정 파일 경로를 출력한다",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), a.CfgPath)
		},
	}
}
