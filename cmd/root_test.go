package cmd

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand 是测试辅助函数，以给定参数执行根命令并捕获标准输出。
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var output bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&output)
	rootCmd.SetErr(&output)
	// SetArgs(nil) 会让 cobra 回退到 os.Args，零参数场景必须传空切片。
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return output.String(), err
}

// TestExecuteNoArguments 验证零参数返回 ErrUsage 且命令自身不输出任何内容。
func TestExecuteNoArguments(t *testing.T) {
	output, err := executeCommand(t)

	require.ErrorIs(t, err, ErrUsage)
	require.Empty(t, output)
}

// TestExecuteTooManyArguments 验证多参数同样返回 ErrUsage，
// 并且不会尝试打开其中任何一个路径（错误不是文件系统错误）。
func TestExecuteTooManyArguments(t *testing.T) {
	output, err := executeCommand(t, "first.py", "second.py")

	require.ErrorIs(t, err, ErrUsage)
	require.NotErrorIs(t, err, fs.ErrNotExist)
	require.Empty(t, output)
}

// TestExecuteMissingFile 验证文件不存在时原样传出底层错误，
// 既不输出 Usage 提示也不输出任何报告行。
func TestExecuteMissingFile(t *testing.T) {
	output, err := executeCommand(t, filepath.Join(t.TempDir(), "missing.py"))

	require.ErrorIs(t, err, fs.ErrNotExist)
	require.NotErrorIs(t, err, ErrUsage)
	require.Empty(t, output)
}

// TestExecuteFlagLikeArgumentIsAPath 验证命令不识别任何 flag：
// --version 会被当成文件路径去打开，然后因为不存在而失败。
func TestExecuteFlagLikeArgumentIsAPath(t *testing.T) {
	output, err := executeCommand(t, "--version")

	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Empty(t, output)
}

// TestExecuteWritesFullReport 验证成功路径输出完整八行报告。
func TestExecuteWritesFullReport(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "demo.py")
	content := "#!/usr/bin/env python3\n" +
		"# demo tool\n" +
		"\n" +
		"def main():\n" +
		"    print(\"hi\")\n"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))

	output, err := executeCommand(t, filePath)
	require.NoError(t, err)

	expected := "File: " + filePath + "\n" +
		"Total lines: 5\n" +
		"Code lines: 2\n" +
		"Comment lines: 2\n" +
		"Blank lines: 1\n" +
		"Functions: 1\n" +
		"Max indentation: 4 spaces\n" +
		"Comment ratio: 100.0%\n"
	require.Equal(t, expected, output)
}

// TestUsageLineLiteral 验证 Usage 提示文案与约定逐字一致。
func TestUsageLineLiteral(t *testing.T) {
	require.Equal(t, "Usage: analyze <filepath>", UsageLine)
}
