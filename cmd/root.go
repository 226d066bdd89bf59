// Package cmd 提供 analyze 的命令行入口。
// 工具只有一个操作，因此根命令本身就是分析命令，没有子命令编排。
package cmd

import (
	"errors"

	"analyze/internal/analyzer"
	"analyze/internal/report"

	"github.com/spf13/cobra"
)

// UsageLine 是参数数量错误时对外输出的固定提示文案。
const UsageLine = "Usage: analyze <filepath>"

// ErrUsage 表示调用方没有提供恰好一个文件路径参数。
// 这个错误在任何文件访问发生之前返回，由 main 负责输出提示并退出。
var ErrUsage = errors.New("expected exactly one filepath argument")

// Execute 组装根命令并执行。
func Execute() error {
	return newRootCmd().Execute()
}

// newRootCmd 创建根命令。
//
// 对外行为约束：
// 1) 只接受一个位置参数，不识别任何 flag、子命令和环境变量，
//    形如 --help 的参数会被当成文件路径处理；
// 2) 参数数量错误时返回 ErrUsage，且不触发任何文件访问；
// 3) cobra 自身的 usage/error/补全输出全部关闭，
//    报告之外的文案统一由 main 呈现。
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <filepath>",
		Short: "单文件代码度量统计工具",
		Long: "analyze 读取一个源码文件，统计 total/code/comment/blank 行数、\n" +
			"函数数量、最大缩进宽度和注释率，并输出固定八行文本报告。",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := analyzer.AnalyzeFile(args[0])
			if err != nil {
				return err
			}
			return report.Print(cmd.OutOrStdout(), metrics)
		},
	}
}
