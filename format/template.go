// Package format 实现日志行模板的解析与渲染。
//
// 模板是混合了 [[TOKEN]] 占位符的普通文本，解析一次，渲染多次。
// 识别的占位符见 Token* 常量；未识别的占位符按字面原样输出，
// 以便旧版本读新版本的配置时不丢内容。
package format

import (
	"fmt"
	"strings"
)

// 模板占位符名称。
const (
	TokenDateFormat    = "DATE_FORMAT"
	TokenDateString    = "DATE_STRING"
	TokenLevel         = "LOG_LEVEL"
	TokenMessage       = "LOG_MESSAGE_STATIC"
	TokenParams        = "LOG_PARAMS"
	TokenInstanceID    = "INSTANCE_ID"
	TokenMachineName   = "MACHINE_NAME"
	TokenClassName     = "CLASS_NAME"
	TokenExceptionText = "EXCEPTION_TEXT"
)

const (
	tokenOpen  = "[["
	tokenClose = "]]"
)

// SyntaxError 模板语法错误
//
// Offset 是出错位置在输入中的字节偏移。
type SyntaxError struct {
	Input  string
	Offset int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("template syntax error at offset %d: %s", e.Offset, e.Reason)
}

// segment 模板的一段：要么是字面文本，要么是单个占位符名。
type segment struct {
	literal string
	token   string
}

// Template 解析后的日志行模板
//
// 由 Parse 构建，构建后只读，可被多个 goroutine 并发渲染。
type Template struct {
	raw      string
	segments []segment
}

// Parse 解析模板文本
//
// 语法规则：
//   - 占位符形如 [[NAME]]，NAME 只能包含字母、数字和下划线
//   - [[ 必须有配对的 ]]，反之亦然
//   - 占位符内不允许再出现 [[
//
// 违反规则时返回 *SyntaxError。
//
// 示例：
//
//	tpl, err := format.Parse(`level="[[LOG_LEVEL]]" message="[[LOG_MESSAGE_STATIC]]"`)
func Parse(text string) (*Template, error) {
	tpl := &Template{raw: text}
	rest := text
	offset := 0
	for rest != "" {
		open := strings.Index(rest, tokenOpen)
		if open < 0 {
			// 剩余部分不允许出现孤立的 ]]
			if stray := strings.Index(rest, tokenClose); stray >= 0 {
				return nil, &SyntaxError{Input: text, Offset: offset + stray, Reason: "unexpected ]] without matching [["}
			}
			tpl.segments = append(tpl.segments, segment{literal: rest})
			break
		}
		if stray := strings.Index(rest[:open], tokenClose); stray >= 0 {
			return nil, &SyntaxError{Input: text, Offset: offset + stray, Reason: "unexpected ]] without matching [["}
		}
		if open > 0 {
			tpl.segments = append(tpl.segments, segment{literal: rest[:open]})
		}
		body := rest[open+len(tokenOpen):]
		closing := strings.Index(body, tokenClose)
		if closing < 0 {
			return nil, &SyntaxError{Input: text, Offset: offset + open, Reason: "unclosed [["}
		}
		name := body[:closing]
		if nested := strings.Index(name, tokenOpen); nested >= 0 {
			return nil, &SyntaxError{Input: text, Offset: offset + open + len(tokenOpen) + nested, Reason: "nested [[ inside placeholder"}
		}
		if name == "" {
			return nil, &SyntaxError{Input: text, Offset: offset + open, Reason: "empty placeholder name"}
		}
		if !validTokenName(name) {
			return nil, &SyntaxError{Input: text, Offset: offset + open + len(tokenOpen), Reason: fmt.Sprintf("invalid placeholder name %q", name)}
		}
		tpl.segments = append(tpl.segments, segment{token: name})
		consumed := open + len(tokenOpen) + closing + len(tokenClose)
		rest = rest[consumed:]
		offset += consumed
	}
	return tpl, nil
}

// MustParse 解析模板，失败时 panic，用于包级常量模板。
func MustParse(text string) *Template {
	tpl, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return tpl
}

// String 返回解析前的原始模板文本。
func (t *Template) String() string {
	if t == nil {
		return ""
	}
	return t.raw
}

// Tokens 返回模板中占位符名出现的顺序列表，重复出现重复计入。
func (t *Template) Tokens() []string {
	if t == nil {
		return nil
	}
	var names []string
	for _, seg := range t.segments {
		if seg.token != "" {
			names = append(names, seg.token)
		}
	}
	return names
}

func validTokenName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
