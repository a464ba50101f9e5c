package config

import (
	"fmt"

	"github.com/ceyewan/alienprobe/xerrors"
)

// 校验问题的类别哨兵，用 xerrors.Is 匹配。
var (
	// ErrMissingSection 必需的段缺失
	ErrMissingSection = xerrors.New("missing required section")
	// ErrMissingRequiredKey 必需的键缺失
	ErrMissingRequiredKey = xerrors.New("missing required key")
	// ErrInvalidLogLevel 无法解析的级别名
	ErrInvalidLogLevel = xerrors.New("invalid log level")
	// ErrInvalidTemplate 模板语法错误
	ErrInvalidTemplate = xerrors.New("invalid template")
	// ErrInvalidValue 值类型或取值不合法
	ErrInvalidValue = xerrors.New("invalid value")
)

// Issue 单个配置问题
//
// Path 是出问题的配置位置（如 "console.message_format"），
// Hint 给出修复建议，可为空。
type Issue struct {
	Kind    error
	Path    string
	Message string
	Hint    string
}

func (i *Issue) Error() string {
	if i.Hint != "" {
		return fmt.Sprintf("%s: %s (%s)", i.Path, i.Message, i.Hint)
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Unwrap 暴露类别哨兵，让 xerrors.Is(issue, ErrXxx) 成立
func (i *Issue) Unwrap() error {
	return i.Kind
}

// Issues 从校验错误中抽出全部 Issue
//
// 沿 Unwrap 链和 Unwrap() []error 树深度优先收集，
// err 为 nil 或不含 Issue 时返回 nil。
//
// 示例：
//
//	if _, err := config.Load(path); err != nil {
//		for _, iss := range config.Issues(err) {
//			fmt.Fprintln(os.Stderr, iss)
//		}
//	}
func Issues(err error) []*Issue {
	if err == nil {
		return nil
	}
	var out []*Issue
	collectIssues(err, &out)
	return out
}

func collectIssues(err error, out *[]*Issue) {
	if err == nil {
		return
	}
	if iss, ok := err.(*Issue); ok {
		*out = append(*out, iss)
		return
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			collectIssues(e, out)
		}
	case interface{ Unwrap() error }:
		collectIssues(u.Unwrap(), out)
	}
}

// newIssue 构造 Issue，loader 内部使用
func newIssue(kind error, path, message, hint string) *Issue {
	return &Issue{Kind: kind, Path: path, Message: message, Hint: hint}
}
