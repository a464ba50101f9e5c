package xerrors

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	// nil 错误应返回 nil
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v，期望 nil", err)
	}

	// 包装后的错误应包含消息
	base := errors.New("base error")
	wrapped := Wrap(base, "context")
	if wrapped == nil {
		t.Fatal("Wrap(err) = nil，期望非 nil")
	}
	if wrapped.Error() != "context: base error" {
		t.Errorf("Wrap(err).Error() = %q，期望 %q", wrapped.Error(), "context: base error")
	}

	// 应保留错误链
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false，期望 true")
	}
}

func TestWrapf(t *testing.T) {
	// nil 错误应返回 nil
	if err := Wrapf(nil, "section %s", "common"); err != nil {
		t.Errorf("Wrapf(nil) = %v，期望 nil", err)
	}

	// 包装后的错误应包含格式化消息
	base := errors.New("not found")
	wrapped := Wrapf(base, "section %s", "common")
	if wrapped.Error() != "section common: not found" {
		t.Errorf("Wrapf(err).Error() = %q，期望 %q", wrapped.Error(), "section common: not found")
	}
}

func TestCombine(t *testing.T) {
	// 全部为 nil 时应返回 nil
	if err := Combine(nil, nil); err != nil {
		t.Errorf("Combine(nil, nil) = %v，期望 nil", err)
	}

	// 只有一个非 nil 错误时应原样返回
	base := errors.New("only one")
	if err := Combine(nil, base, nil); err != base {
		t.Errorf("Combine(nil, err, nil) = %v，期望原错误", err)
	}

	// 多个错误应合并为 MultiError
	errA := errors.New("error a")
	errB := errors.New("error b")
	combined := Combine(errA, errB)
	multi, ok := combined.(*MultiError)
	if !ok {
		t.Fatalf("Combine(a, b) = %T，期望 *MultiError", combined)
	}
	if len(multi.Errors) != 2 {
		t.Errorf("len(multi.Errors) = %d，期望 2", len(multi.Errors))
	}
}

func TestMultiErrorListsEveryError(t *testing.T) {
	err := Combine(
		errors.New("first problem"),
		errors.New("second problem"),
		errors.New("third problem"),
	)

	// 错误消息应逐条列出全部成员
	msg := err.Error()
	if !strings.HasPrefix(msg, "3 errors occurred:") {
		t.Errorf("Error() = %q，期望以 %q 开头", msg, "3 errors occurred:")
	}
	for _, want := range []string{"first problem", "second problem", "third problem"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() 缺少 %q：%q", want, msg)
		}
	}

	// 单成员时直接返回该成员的消息
	single := &MultiError{Errors: []error{errors.New("alone")}}
	if single.Error() != "alone" {
		t.Errorf("single.Error() = %q，期望 %q", single.Error(), "alone")
	}
}

func TestMultiErrorUnwrap(t *testing.T) {
	errA := errors.New("error a")
	errB := errors.New("error b")

	// errors.Is 应能命中每一个成员
	combined := Combine(errA, errB)
	if !errors.Is(combined, errA) {
		t.Error("errors.Is(combined, errA) = false，期望 true")
	}
	if !errors.Is(combined, errB) {
		t.Error("errors.Is(combined, errB) = false，期望 true")
	}

	// 经过 Wrap 之后依然可以穿透
	wrapped := Wrap(combined, "validation failed")
	if !errors.Is(wrapped, errA) || !errors.Is(wrapped, errB) {
		t.Error("errors.Is 应能穿透 Wrap 命中每个成员")
	}
}

func TestMust(t *testing.T) {
	// 无错误时返回原值
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must(42, nil) = %d，期望 42", got)
	}

	// 有错误时应 panic
	defer func() {
		if r := recover(); r == nil {
			t.Error("Must(v, err) 未 panic，期望 panic")
		}
	}()
	Must(0, errors.New("boom"))
}
