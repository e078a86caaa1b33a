package xstats

import "sync"

// Synced 是带互斥锁的 Averager 包装，所有方法并发安全。
//
// 零值可直接使用（基准值为 0）。不可复制。
type Synced struct {
	mu sync.Mutex
	a  Averager
}

// NewSynced 创建 Synced，选项与 New 相同。
func NewSynced(opts ...Option) *Synced {
	s := &Synced{}
	for _, opt := range opts {
		opt(&s.a)
	}
	s.a.mean = s.a.base
	return s
}

// Accumulate 加入一个样本，返回当前样本数。
func (s *Synced) Accumulate(x float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Accumulate(x)
}

// Deaccumulate 撤销一个样本，返回当前样本数。
func (s *Synced) Deaccumulate(x float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Deaccumulate(x)
}

// Clear 清空累计量。
func (s *Synced) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Clear()
}

// Snapshot 返回当前统计快照。
func (s *Synced) Snapshot() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Snapshot()
}

// Do 在持锁状态下执行 fn，用于需要原子组合多个操作的场景。
// fn 内不可再调用 s 的其他方法，也不可保留 *Averager 引用。
func (s *Synced) Do(fn func(a *Averager)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.a)
}
