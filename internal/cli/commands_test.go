package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/qrew-toolchain/internal/cli"
	"github.com/hbjs97/qrew-toolchain/internal/resolver"
	"github.com/hbjs97/qrew-toolchain/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp creates an App with a FakeCommander, the given environment view
// and a config path inside a fresh temp dir (absent unless written).
func newTestApp(t *testing.T, env resolver.Env) (*cli.App, *testutil.FakeCommander) {
	t.Helper()
	fc := testutil.NewFakeCommander()
	return &cli.App{
		Env:       env,
		Commander: fc,
		CfgPath:   filepath.Join(t.TempDir(), "config.toml"),
	}, fc
}

// execute runs the root command with args and returns stdout, stderr and the error.
func execute(t *testing.T, app *cli.App, args ...string) (string, string, error) {
	t.Helper()
	cmd := app.NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// --- Export (root command) tests ---

func TestExports_EnvRootWithLLVMBuild(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	stdout, stderr, err := execute(t, app)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	buildDir := filepath.Join(root, "llvm-build")
	assert.Equal(t, `export LLVM_BUILD_DIR="`+buildDir+`"
export PATH="`+buildDir+`/bin:$PATH"
export LD_LIBRARY_PATH="`+buildDir+`/lib:${LD_LIBRARY_PATH:-}"
export QREW_TOOLCHAIN_ROOT="`+root+`"
`, stdout)
}

func TestExports_MixedCaseLLVMChild(t *testing.T) {
	t.Parallel()

	home := testutil.TempTree(t, ".qrew-toolchain/Prebuilt-LLVM-18", ".qrew-toolchain/docs")
	app, _ := newTestApp(t, resolver.Env{HomeDir: home})

	stdout, _, err := execute(t, app, "--shell", "zsh")
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(home, ".qrew-toolchain", "Prebuilt-LLVM-18"))
}

func TestExports_CwdToolchain(t *testing.T) {
	t.Parallel()

	cwd := testutil.TempTree(t, "toolchain/llvm-build")
	app, _ := newTestApp(t, resolver.Env{HomeDir: t.TempDir(), WorkDir: cwd})

	stdout, _, err := execute(t, app)
	require.NoError(t, err)
	assert.Contains(t, stdout, `export QREW_TOOLCHAIN_ROOT="`+filepath.Join(cwd, "toolchain")+`"`)
}

func TestExports_Fish(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	stdout, _, err := execute(t, app, "--shell", "fish")
	require.NoError(t, err)

	buildDir := filepath.Join(root, "llvm-build")
	assert.Contains(t, stdout, `set -gx PATH "`+buildDir+`/bin" $PATH`)
	assert.Contains(t, stdout, `set -gx LD_LIBRARY_PATH "`+buildDir+`/lib" $LD_LIBRARY_PATH`)
	assert.NotContains(t, stdout, "export")
}

func TestExports_ToolchainNotFound(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{HomeDir: t.TempDir(), WorkDir: t.TempDir()})

	stdout, stderr, err := execute(t, app)
	require.Error(t, err)
	assert.ErrorIs(t, err, cli.ErrToolchainNotFound)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "scripts/download_and_setup.sh")
}

func TestExports_BuildDirNotFound(t *testing.T) {
	t.Parallel()

	root := testutil.TempTree(t, "src", "scripts")
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	stdout, stderr, err := execute(t, app)
	assert.ErrorIs(t, err, cli.ErrBuildDirNotFound)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, root)
}

func TestExports_UnsupportedShell(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	stdout, stderr, err := execute(t, app, "--shell", "powershell")
	assert.ErrorIs(t, err, cli.ErrUnsupportedShell)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "powershell")
}

func TestExports_ConfigDefaultShell(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})
	require.NoError(t, os.WriteFile(app.CfgPath, []byte(`default_shell = "fish"`), 0600))

	stdout, _, err := execute(t, app)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "set -gx "), stdout)

	// 명시한 --shell이 설정보다 우선한다.
	stdout, _, err = execute(t, app, "--shell", "bash")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "export "), stdout)
}

func TestExports_ConfigLayout(t *testing.T) {
	t.Parallel()

	home := testutil.TempTree(t, "toolchains/qrew/build-release")
	app, _ := newTestApp(t, resolver.Env{HomeDir: home})
	cfg := "home_root = \"toolchains/qrew\"\nbuild_dir_name = \"build-release\"\n"
	require.NoError(t, os.WriteFile(app.CfgPath, []byte(cfg), 0600))

	stdout, _, err := execute(t, app)
	require.NoError(t, err)
	assert.Contains(t, stdout, filepath.Join(home, "toolchains", "qrew", "build-release"))
}

func TestExports_BadConfig(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})
	require.NoError(t, os.WriteFile(app.CfgPath, []byte("invalid [[["), 0600))

	stdout, _, err := execute(t, app)
	assert.ErrorIs(t, err, cli.ErrConfig)
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))
	assert.Empty(t, stdout)
}

func TestExports_ConfigFlag(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})
	other := testutil.TempConfigFile(t, `default_shell = "fish"`)

	stdout, _, err := execute(t, app, "--config", other)
	require.NoError(t, err)
	assert.Contains(t, stdout, "set -gx LLVM_BUILD_DIR")
}

func TestExports_VerboseTracesToStderr(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	stdout, stderr, err := execute(t, app, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "toolchain root found")
	assert.Contains(t, stderr, "reason=env")
	assert.NotContains(t, stdout, "toolchain root found")
}

func TestExports_RejectsArgs(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{})
	stdout, _, err := execute(t, app, "extra")
	assert.Error(t, err)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
	assert.Empty(t, stdout)
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{})
	stdout, _, err := execute(t, app, "--version")
	require.NoError(t, err)
	assert.Equal(t, "qrew-toolchain 0.1.0\n", stdout)
}

// --- Unset command tests ---

func TestUnsetCmd(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{})

	stdout, _, err := execute(t, app, "unset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "unset LLVM_BUILD_DIR")

	stdout, _, err = execute(t, app, "unset", "--shell", "fish")
	require.NoError(t, err)
	assert.Contains(t, stdout, "set -e QREW_TOOLCHAIN_ROOT")
}

// --- Doctor command tests ---

func TestDoctorCmd_Healthy(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	buildDir := filepath.Join(root, "llvm-build")
	for _, n := range []string{"llvm-config", "mlir-opt", "clang"} {
		testutil.TempExecutable(t, buildDir, "bin/"+n)
	}
	app, fc := newTestApp(t, resolver.Env{RootOverride: root})
	fc.DefaultResponse = &testutil.Response{Output: []byte("LLVM version 18.1.8\n")}

	stdout, _, err := execute(t, app, "doctor")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[OK] toolchain_root")
	assert.Contains(t, stdout, "[OK] llvm-config: LLVM version 18.1.8")
	assert.NotContains(t, stdout, "[FAIL]")
	assert.Equal(t, 3, fc.CallCount(filepath.Join(buildDir, "bin")))
}

func TestDoctorCmd_NoToolchain(t *testing.T) {
	t.Parallel()

	app, fc := newTestApp(t, resolver.Env{HomeDir: t.TempDir()})

	stdout, _, err := execute(t, app, "doctor")
	assert.ErrorIs(t, err, cli.ErrDoctorFailed)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
	assert.Contains(t, stdout, "[FAIL] toolchain_root")
	assert.Contains(t, stdout, "Fix: scripts/download_and_setup.sh")
	assert.Empty(t, fc.Calls)
}

func TestDoctorCmd_MissingBinaries(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	stdout, _, err := execute(t, app, "doctor")
	assert.ErrorIs(t, err, cli.ErrDoctorFailed)
	assert.Contains(t, stdout, "[FAIL] llvm-config")
	assert.Contains(t, stdout, "[!!] clang")
}

func TestDoctorCmd_BadConfig(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{})
	require.NoError(t, os.WriteFile(app.CfgPath, []byte("version = 9"), 0600))

	stdout, _, err := execute(t, app, "doctor")
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))
	assert.Contains(t, stdout, "[FAIL] config")
}

// --- Hook command tests ---

func TestHookCmd_PrintsSnippet(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	app, _ := newTestApp(t, resolver.Env{})
	stdout, _, err := execute(t, app, "hook")
	require.NoError(t, err)
	assert.Contains(t, stdout, `eval "$(qrew-toolchain --shell zsh 2>/dev/null)"`)
}

func TestHookCmd_ShellFlagWins(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")

	app, _ := newTestApp(t, resolver.Env{})
	stdout, _, err := execute(t, app, "hook", "--shell", "fish")
	require.NoError(t, err)
	assert.Contains(t, stdout, "qrew-toolchain --shell fish 2>/dev/null | source")
}

func TestHookCmd_UnknownLoginShellFallsBackToConfig(t *testing.T) {
	t.Setenv("SHELL", "/bin/tcsh")

	app, _ := newTestApp(t, resolver.Env{})
	stdout, _, err := execute(t, app, "hook")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--shell bash")
}

func TestHookCmd_InstallIdempotent(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")

	home := t.TempDir()
	app, _ := newTestApp(t, resolver.Env{HomeDir: home})

	_, stderr, err := execute(t, app, "hook", "--install")
	require.NoError(t, err)
	assert.Contains(t, stderr, "hook 설치 완료")

	_, stderr, err = execute(t, app, "hook", "--install")
	require.NoError(t, err)
	assert.Contains(t, stderr, "이미 설치")

	content, err := os.ReadFile(filepath.Join(home, ".bashrc"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "qrew-toolchain shell integration"))
}

func TestHookCmd_InstallCustomRC(t *testing.T) {
	t.Setenv("SHELL", "")

	rc := filepath.Join(t.TempDir(), "custom.rc")
	app, _ := newTestApp(t, resolver.Env{})

	_, _, err := execute(t, app, "hook", "--install", "--shell", "zsh", "--rc", rc)
	require.NoError(t, err)

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.Contains(t, string(content), "--shell zsh")
}

// --- Config command tests ---

func TestConfigInitCmd_WritesTemplate(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{})
	app.CfgPath = filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, err := execute(t, app, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, app.CfgPath)

	info, err := os.Stat(app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// 이미 있으면 --force 없이 실패한다.
	_, _, err = execute(t, app, "config", "init")
	assert.Error(t, err)

	_, _, err = execute(t, app, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigInitCmd_WithShell(t *testing.T) {
	t.Parallel()

	root := testutil.SetupToolchain(t)
	app, _ := newTestApp(t, resolver.Env{RootOverride: root})

	_, _, err := execute(t, app, "config", "init", "--shell", "fish")
	require.NoError(t, err)

	stdout, _, err := execute(t, app)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "set -gx "), stdout)
}

func TestConfigPathCmd(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t, resolver.Env{})
	stdout, _, err := execute(t, app, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, app.CfgPath+"\n", stdout)
}

func TestNewApp(t *testing.T) {
	t.Setenv(resolver.RootEnvVar, "/opt/qrew")

	app := cli.NewApp()
	assert.NotNil(t, app.Commander)
	assert.Equal(t, "/opt/qrew", app.Env.RootOverride)
}

func TestNewRootCmd_DefaultConfigPath(t *testing.T) {
	t.Parallel()

	app := &cli.App{Env: resolver.Env{HomeDir: "/home/u"}}
	cmd := app.NewRootCmd()

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, filepath.Join("/home/u", ".config", "qrew-toolchain", "config.toml"), flag.DefValue)
}
