package xenv

import (
	"strings"
	"time"
)

// Prefix 为环境变量名添加统一前缀，前缀与变量名之间以 "_" 连接。
// 空前缀等价于直接使用包级函数。
type Prefix string

// Key 返回带前缀的完整变量名，前缀会被转为大写。
func (p Prefix) Key(name string) string {
	if p == "" {
		return name
	}
	return strings.ToUpper(string(p)) + "_" + name
}

// Lookup 见包级 Lookup。
func (p Prefix) Lookup(name string) (string, bool) { return Lookup(p.Key(name)) }

// Required 见包级 Required。
func (p Prefix) Required(name string) (string, error) { return Required(p.Key(name)) }

// String 见包级 String。
func (p Prefix) String(name, def string) string { return String(p.Key(name), def) }

// Bool 见包级 Bool。
func (p Prefix) Bool(name string, def bool) (bool, error) { return Bool(p.Key(name), def) }

// Int 见包级 Int。
func (p Prefix) Int(name string, def int) (int, error) { return Int(p.Key(name), def) }

// Float 见包级 Float。
func (p Prefix) Float(name string, def float64) (float64, error) { return Float(p.Key(name), def) }

// Duration 见包级 Duration。
func (p Prefix) Duration(name string, def time.Duration) (time.Duration, error) {
	return Duration(p.Key(name), def)
}
