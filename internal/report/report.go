// Package report 提供 analyze 的输出能力。
// 当前实现只有固定八行的纯文本格式，没有表格和 JSON 导出。
package report

import (
	"fmt"
	"io"

	"analyze/internal/model"
)

// Print 按固定顺序输出八行统计报告。
// 行序、标签文案和数值格式都是对外契约：
// 路径原样回显，缩进行带 spaces 后缀，注释率保留一位小数。
func Print(writer io.Writer, metrics model.FileMetrics) error {
	if _, err := fmt.Fprintf(writer, "File: %s\n", metrics.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Total lines: %d\n", metrics.Lines.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Code lines: %d\n", metrics.Lines.Code); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comment lines: %d\n", metrics.Lines.Comment); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Blank lines: %d\n", metrics.Lines.Blank); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Functions: %d\n", metrics.Functions); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Max indentation: %d spaces\n", metrics.MaxIndent); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Comment ratio: %.1f%%\n", metrics.Lines.CommentRatio()); err != nil {
		return err
	}
	return nil
}
