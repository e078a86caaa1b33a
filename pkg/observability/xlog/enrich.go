package xlog

import (
	"context"
	"log/slog"

	"github.com/omeyang/xpc/pkg/context/xseq"
)

// EnrichHandler 从 context 提取 xseq 嵌套序号并注入日志
//
// 装饰模式，包装底层 slog.Handler，在 Handle() 时追加 seq、depth、parent_seq。
// context 中没有 xseq.Frame 时不做任何修改。
type EnrichHandler struct {
	base slog.Handler
}

// NewEnrichHandler 创建 EnrichHandler
func NewEnrichHandler(base slog.Handler) (*EnrichHandler, error) {
	if base == nil {
		return nil, ErrNilHandler
	}
	return &EnrichHandler{base: base}, nil
}

// Enabled 委托给底层 handler
func (h *EnrichHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// maxEnrichAttrs seq + depth + parent_seq
const maxEnrichAttrs = 3

// Handle 追加嵌套序号后交给底层 handler。
// 按 slog 契约先 Clone record 再修改。
func (h *EnrichHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf [maxEnrichAttrs]slog.Attr
	attrs := xseq.AppendAttrs(ctx, buf[:0])
	if len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.base.Handle(ctx, r)
}

// WithAttrs 返回带额外属性的新 handler
func (h *EnrichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &EnrichHandler{base: h.base.WithAttrs(attrs)}
}

// WithGroup 返回带分组的新 handler
func (h *EnrichHandler) WithGroup(name string) slog.Handler {
	return &EnrichHandler{base: h.base.WithGroup(name)}
}
