package format

import (
	"strconv"
	"strings"
	"time"
)

// Strftime 按 strftime 风格的模式格式化时间
//
// 支持的指令：
//
//	%Y 四位年    %y 两位年    %m 月(01-12)  %d 日(01-31)
//	%H 时(00-23) %I 时(01-12) %M 分(00-59)  %S 秒(00-59)
//	%f 微秒(000000-999999)    %p AM/PM      %j 年内天数(001-366)
//	%a 星期缩写  %A 星期全名  %b 月份缩写   %B 月份全名
//	%z 数字时区  %Z 时区名    %% 字面百分号
//
// 未识别的指令原样输出（含 %）。模式中的普通字符不做解释，
// 因此 "YY%Y" 输出字面 "YY" 加四位年份。
//
// 示例：
//
//	format.Strftime(t, "%Y-%m-%d_%H:%M:%S.%f")
func Strftime(t time.Time, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}
		i++
		switch pattern[i] {
		case 'Y':
			b.WriteString(pad(t.Year(), 4))
		case 'y':
			b.WriteString(pad(t.Year()%100, 2))
		case 'm':
			b.WriteString(pad(int(t.Month()), 2))
		case 'd':
			b.WriteString(pad(t.Day(), 2))
		case 'H':
			b.WriteString(pad(t.Hour(), 2))
		case 'I':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(pad(h, 2))
		case 'M':
			b.WriteString(pad(t.Minute(), 2))
		case 'S':
			b.WriteString(pad(t.Second(), 2))
		case 'f':
			b.WriteString(pad(t.Nanosecond()/1000, 6))
		case 'p':
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		case 'j':
			b.WriteString(pad(t.YearDay(), 3))
		case 'a':
			b.WriteString(t.Format("Mon"))
		case 'A':
			b.WriteString(t.Weekday().String())
		case 'b':
			b.WriteString(t.Format("Jan"))
		case 'B':
			b.WriteString(t.Month().String())
		case 'z':
			b.WriteString(t.Format("-0700"))
		case 'Z':
			b.WriteString(t.Format("MST"))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
