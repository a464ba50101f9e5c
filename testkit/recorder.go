package testkit

import (
	"sync"
	"testing"

	"github.com/ceyewan/alienprobe/config"
	"github.com/ceyewan/alienprobe/dispatcher"
)

// Recorder 把消息记在内存里的分发器，用于断言日志输出
type Recorder struct {
	mu   sync.Mutex
	name string
	msgs []*dispatcher.Message
	fail error
}

// Name 返回配置段名
func (r *Recorder) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.name == "" {
		return "recorder"
	}
	return r.name
}

// Write 记录消息；SetFail 之后改为返回注入的错误
func (r *Recorder) Write(msg *dispatcher.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	r.msgs = append(r.msgs, msg)
	return nil
}

// Close 是空操作
func (r *Recorder) Close() error { return nil }

// Messages 返回已记录消息的副本
func (r *Recorder) Messages() []*dispatcher.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*dispatcher.Message(nil), r.msgs...)
}

// Last 返回最后一条消息，没有记录时返回 nil
func (r *Recorder) Last() *dispatcher.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return nil
	}
	return r.msgs[len(r.msgs)-1]
}

// Reset 清空已记录的消息
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = nil
}

// SetFail 让后续 Write 返回给定错误，传 nil 恢复
func (r *Recorder) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// RegisterRecorder 注册一个一次性的记录分发器 class
//
// class 名带随机后缀，并行测试不会互相覆盖。配置里引用返回的
// class 名即可把日志采集进 Recorder。
func RegisterRecorder(t *testing.T) (string, *Recorder) {
	t.Helper()
	class := "recorder-" + NewID()
	rec := &Recorder{}
	dispatcher.Register(class, func(cfg config.DispatcherConfig, _ ...dispatcher.Option) (dispatcher.Dispatcher, error) {
		rec.mu.Lock()
		rec.name = cfg.Name
		rec.mu.Unlock()
		return rec, nil
	})
	return class, rec
}
