package xseq

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// contextKey 包私有 key 类型，避免与其他包冲突。
type contextKey string

const (
	keySequencer contextKey = "xseq_sequencer"
	keyFrame     contextKey = "xseq_frame"
)

// 日志属性名。
const (
	KeySeq       = "seq"
	KeyDepth     = "depth"
	KeyParentSeq = "parent_seq"
)

// Sequencer 单调递增的序号发生器，从 1 开始。
// 零值可直接使用，并发安全。
type Sequencer struct {
	last atomic.Uint64
}

// New 创建 Sequencer。
func New() *Sequencer {
	return &Sequencer{}
}

// Next 分配并返回下一个序号。
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Last 返回最近分配的序号，未分配过时为 0。
func (s *Sequencer) Last() uint64 {
	return s.last.Load()
}

// Frame 描述一层嵌套。
type Frame struct {
	// Seq 本层序号。
	Seq uint64
	// Parent 上一层序号，顶层为 0。
	Parent uint64
	// Depth 嵌套深度，顶层为 1。
	Depth int
}

// WithSequencer 返回携带 s 的 context。
// ctx 为 nil 时以 context.Background() 为父 context。
func WithSequencer(ctx context.Context, s *Sequencer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, keySequencer, s)
}

// SequencerFrom 返回 context 中的 Sequencer。
func SequencerFrom(ctx context.Context) (*Sequencer, bool) {
	if ctx == nil {
		return nil, false
	}
	s, ok := ctx.Value(keySequencer).(*Sequencer)
	return s, ok && s != nil
}

// FromContext 返回 context 当前所在层的 Frame。
func FromContext(ctx context.Context) (Frame, bool) {
	if ctx == nil {
		return Frame{}, false
	}
	f, ok := ctx.Value(keyFrame).(Frame)
	return f, ok
}

// Enter 进入新的一层：从 context 中的 Sequencer 分配序号，深度为上一层加一。
//
// context 中没有 Sequencer 时创建一个新的并一同放入返回的 context，
// 此后派生的 context 共享该计数器。
func Enter(ctx context.Context) (context.Context, Frame) {
	s, ok := SequencerFrom(ctx)
	if !ok {
		s = New()
		ctx = WithSequencer(ctx, s)
	}
	parent, _ := FromContext(ctx)
	f := Frame{
		Seq:    s.Next(),
		Parent: parent.Seq,
		Depth:  parent.Depth + 1,
	}
	return context.WithValue(ctx, keyFrame, f), f
}

// AppendAttrs 将 context 中的 Frame 追加为 slog 属性。
// 没有 Frame 时原样返回 attrs。
func AppendAttrs(ctx context.Context, attrs []slog.Attr) []slog.Attr {
	f, ok := FromContext(ctx)
	if !ok {
		return attrs
	}
	attrs = append(attrs,
		slog.Uint64(KeySeq, f.Seq),
		slog.Int(KeyDepth, f.Depth),
	)
	if f.Parent != 0 {
		attrs = append(attrs, slog.Uint64(KeyParentSeq, f.Parent))
	}
	return attrs
}
