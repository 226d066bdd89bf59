// Package model 定义 analyze 的核心数据模型。
// 这些结构会被分析器、输出层和命令层共同使用。
package model

// LineMetrics 表示一组行级统计值。
//
// 注意：
// - Total 表示总行数（每行计 1）
// - blank/comment/code 三类互斥且穷尽，Total 恒等于三者之和
// - 分类基于去除首尾空白后的行内容，以 # 或 // 开头的行计入 Comment
type LineMetrics struct {
	Total   int64
	Code    int64
	Comment int64
	Blank   int64
}

// CommentRatio 返回注释行数相对代码行数的百分比。
// 分母按 max(Code, 1) 取值：没有代码行时不报错，
// 纯注释文件会得到 N*100 这样的结果，这是既定口径，不做特判。
func (m LineMetrics) CommentRatio() float64 {
	denominator := m.Code
	if denominator < 1 {
		denominator = 1
	}
	return float64(m.Comment) / float64(denominator) * 100
}

// ContentMetrics 表示一段源码内容的完整统计值。
//
// - Functions 是基于行首模式匹配的函数定义计数，属于启发式结果
// - MaxIndent 是非空白行的最大行首空白字符数（按字符计，制表符同样计 1），
//   没有非空白行时为 0
type ContentMetrics struct {
	Lines     LineMetrics
	Functions int64
	MaxIndent int64
}

// FileMetrics 表示单文件分析结果。
// 在内容级统计的基础上附加调用方给定的文件路径。
type FileMetrics struct {
	Path string
	ContentMetrics
}
