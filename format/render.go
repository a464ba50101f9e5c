package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Values 渲染一条日志行所需的全部字段值
//
// DateString 由调用方事先用 datetime 模式格式化好，
// [[DATE_FORMAT]] 和 [[DATE_STRING]] 都渲染成它。
type Values struct {
	DateString    string
	Level         string
	MessageStatic string
	Params        map[string]any
	InstanceID    string
	MachineName   string
	ClassName     string
	ExceptionText string
}

// Render 渲染模板
//
// 占位符替换规则：
//
//	[[DATE_FORMAT]] / [[DATE_STRING]] -> Values.DateString
//	[[LOG_LEVEL]]                     -> Values.Level
//	[[LOG_MESSAGE_STATIC]]            -> Values.MessageStatic
//	[[LOG_PARAMS]]                    -> EncodeParams(Values.Params)
//	[[INSTANCE_ID]]                   -> Values.InstanceID
//	[[MACHINE_NAME]]                  -> Values.MachineName
//	[[CLASS_NAME]]                    -> Values.ClassName
//	[[EXCEPTION_TEXT]]                -> Values.ExceptionText
//
// 未识别的占位符按 [[NAME]] 字面输出。
func (t *Template) Render(v Values) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(len(t.raw) + 64)
	for _, seg := range t.segments {
		if seg.token == "" {
			b.WriteString(seg.literal)
			continue
		}
		switch seg.token {
		case TokenDateFormat, TokenDateString:
			b.WriteString(v.DateString)
		case TokenLevel:
			b.WriteString(v.Level)
		case TokenMessage:
			b.WriteString(v.MessageStatic)
		case TokenParams:
			b.WriteString(EncodeParams(v.Params))
		case TokenInstanceID:
			b.WriteString(v.InstanceID)
		case TokenMachineName:
			b.WriteString(v.MachineName)
		case TokenClassName:
			b.WriteString(v.ClassName)
		case TokenExceptionText:
			b.WriteString(v.ExceptionText)
		default:
			b.WriteString(tokenOpen)
			b.WriteString(seg.token)
			b.WriteString(tokenClose)
		}
	}
	return b.String()
}

// EncodeParams 将参数表编码为 key="value" 空格分隔的文本
//
// key 按字典序排序，保证输出稳定；value 用 fmt.Sprint 取字符串
// 再加引号转义。空表返回空串。
//
// 示例：
//
//	format.EncodeParams(map[string]any{"path": "/tmp/a", "size": 42})
//	// path="/tmp/a" size="42"
func EncodeParams(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(fmt.Sprint(params[k])))
	}
	return b.String()
}
