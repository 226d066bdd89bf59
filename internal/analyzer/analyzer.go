// Package analyzer 提供单文件的逐行统计能力。
// 该层只做一遍文本扫描：行分类、函数模式计数和缩进统计，
// 不做语法解析，也不感知具体编程语言。
package analyzer

import (
	"bufio"
	"errors"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"

	"analyze/internal/model"
)

// functionPattern 识别函数定义开头的固定行首模式。
// 模式集合是既定口径：def、function、async function，
// 以及 const <标识符> = ( 或 const <标识符> = async ( 两种赋值形式。
// let/var 开头的赋值形式刻意不识别，扩大集合会改变统计口径。
var functionPattern = regexp.MustCompile(`^\s*(def |function |async function |const \w+ = (?:async )?\()`)

// Analyze 对输入流执行一遍逐行统计。
func Analyze(reader io.Reader) (model.ContentMetrics, error) {
	var metrics model.ContentMetrics

	// 这里使用 ReadString('\n') 做“按行流式”读取：
	// 1) 不会把整个文件一次性载入内存；
	// 2) 行切分口径与 readlines 一致：末行缺换行符照常计数，
	//    文件以换行符结尾时不会多出一个空行。
	bufferedReader := bufio.NewReader(reader)
	for {
		line, err := bufferedReader.ReadString('\n')
		// EOF 且没有任何剩余字符时，说明已经没有可处理行，直接退出。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		// 非 EOF 错误需要立即返回，避免输出不完整统计结果。
		if err != nil && !errors.Is(err, io.EOF) {
			return metrics, err
		}

		accumulateLine(&metrics, normalizeLine(line))

		// EOF 但 line 非空代表“最后一行没有换行符”，这行已经处理完，随后退出。
		if errors.Is(err, io.EOF) {
			break
		}
	}

	return metrics, nil
}

// AnalyzeFile 打开 path 指定的文件并执行 Analyze。
// 文件句柄在所有路径上都会被释放；打开与读取的错误原样向上传递，
// 不做分类和翻译，由最外层统一呈现。
func AnalyzeFile(path string) (model.FileMetrics, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return model.FileMetrics{}, openErr
	}

	metrics, analyzeErr := Analyze(file)
	closeErr := file.Close()

	if analyzeErr != nil {
		return model.FileMetrics{}, analyzeErr
	}
	if closeErr != nil {
		return model.FileMetrics{}, closeErr
	}

	return model.FileMetrics{
		Path:           path,
		ContentMetrics: metrics,
	}, nil
}

// normalizeLine 用于去除每行末尾的换行符。
// 该函数适配 Windows 的 \r\n 与 Unix 的 \n。
func normalizeLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line
}

// accumulateLine 把单行的统计结果累加进 metrics。
//
// 约束说明：
// - 行分类只看去除首尾空白后的内容：空 → Blank，
//   以 # 或 // 开头 → Comment，其余 → Code
// - 函数模式与缩进统计基于保留行首空白的原始行
// - 缩进只对非空白行取最大值
func accumulateLine(metrics *model.ContentMetrics, line string) {
	metrics.Lines.Total++

	stripped := strings.TrimSpace(line)
	switch {
	case stripped == "":
		metrics.Lines.Blank++
	case strings.HasPrefix(stripped, "#") || strings.HasPrefix(stripped, "//"):
		metrics.Lines.Comment++
	default:
		metrics.Lines.Code++
	}

	if functionPattern.MatchString(line) {
		metrics.Functions++
	}

	if stripped != "" {
		if width := indentWidth(line); width > metrics.MaxIndent {
			metrics.MaxIndent = width
		}
	}
}

// indentWidth 统计行首连续空白字符的个数。
// 按字符计数而非字节计数，制表符与空格同样各计 1。
func indentWidth(line string) int64 {
	var width int64
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		width++
	}
	return width
}
