package clock

import "time"

// Clock 时间源接口，用于向服务注入可控时间
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem 创建系统时钟
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// FixedClock 固定时钟（测试用）
type FixedClock struct {
	current time.Time
}

// NewFixed 创建固定时钟
func NewFixed(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now 返回固定时间
func (f *FixedClock) Now() time.Time {
	return f.current
}

// Set 设置当前时间
func (f *FixedClock) Set(t time.Time) {
	f.current = t
}

// Advance 前进指定时长
func (f *FixedClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
