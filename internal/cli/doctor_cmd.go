package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/qrew-toolchain/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "툴체인 설치 상태를 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd)
		},
	}
}

func (a *App) runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintf(out, "[FAIL] config: %v\n", err)
		fmt.Fprintf(out, "      Fix: %s 확인 또는 삭제\n", a.CfgPath)
		return err
	}

	results := doctor.RunAll(cmd.Context(), a.Commander, a.Env, a.newResolver(cfg))
	printDiagResults(out, results)
	if doctor.HasFailure(results) {
		return fmt.Errorf("cli.doctor: %w", ErrDoctorFailed)
	}
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
