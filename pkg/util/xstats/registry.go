package xstats

import (
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Registry 按键维护一组 Synced 累加器，容量满时淘汰最久未使用的键。
// 所有方法并发安全。
type Registry struct {
	// mu 串行化查找、创建、累加与淘汰，保证淘汰回调看到的是最终快照。
	mu    sync.Mutex
	cache *lru.Cache[string, *Synced]
	opts  []Option
}

// NewRegistry 创建容量为 size 的 Registry，新建的累加器使用 opts。
//
// onEvict 在键被淘汰时以该键最后的快照调用，可为 nil。
// onEvict 在内部锁内同步执行，不可回调 Registry 的方法。
func NewRegistry(size int, onEvict func(key string, final Summary), opts ...Option) (*Registry, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	var evict func(string, *Synced)
	if onEvict != nil {
		evict = func(key string, s *Synced) { onEvict(key, s.Snapshot()) }
	}
	cache, err := lru.NewWithEvict(size, evict)
	if err != nil {
		return nil, err
	}
	return &Registry{cache: cache, opts: opts}, nil
}

// Get 返回 key 对应的累加器，不存在时创建。
//
// 返回的累加器可能随后被淘汰，之后写入它的样本不会再出现在 onEvict 中；
// 需要计入统计的样本应使用 [Registry.Accumulate]。
func (r *Registry) Get(key string) *Synced {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(key)
}

func (r *Registry) getLocked(key string) *Synced {
	if s, ok := r.cache.Get(key); ok {
		return s
	}
	s := NewSynced(r.opts...)
	r.cache.Add(key, s)
	return s
}

// Lookup 返回已存在的累加器，不更新使用顺序。
func (r *Registry) Lookup(key string) (*Synced, bool) {
	return r.cache.Peek(key)
}

// Accumulate 向 key 对应的累加器加入样本，返回该键的样本数。
// 查找与累加在同一把锁内完成，样本不会落入已淘汰的累加器。
func (r *Registry) Accumulate(key string, x float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getLocked(key).Accumulate(x)
}

// Remove 删除 key 并以其最后的快照触发 onEvict。返回 key 是否存在。
func (r *Registry) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Remove(key)
}

// Len 返回当前键数。
func (r *Registry) Len() int { return r.cache.Len() }

// Keys 返回按字典序排列的键。
func (r *Registry) Keys() []string {
	keys := r.cache.Keys()
	sort.Strings(keys)
	return keys
}

// Snapshots 返回全部键的快照。
func (r *Registry) Snapshots() map[string]Summary {
	out := make(map[string]Summary, r.cache.Len())
	for _, key := range r.cache.Keys() {
		if s, ok := r.cache.Peek(key); ok {
			out[key] = s.Snapshot()
		}
	}
	return out
}
