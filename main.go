// main.go 是 analyze 的程序入口。
// 该文件仅负责执行 Cobra 根命令并把结果映射到退出码，
// 让业务逻辑保持在 cmd/internal 目录中，便于测试和扩展。
//
// 退出码约定：
// - 成功输出报告后以 0 退出；
// - 参数数量错误时在标准输出打印 Usage 提示并以 1 退出；
// - 其余错误（典型是文件打开失败）在标准错误打印诊断信息并以 1 退出。
package main

import (
	"errors"
	"fmt"
	"os"

	"analyze/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrUsage) {
			fmt.Println(cmd.UsageLine)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "analyze error: %v\n", err)
		os.Exit(1)
	}
}
