package xlog

// ErrorCount 返回 logger 的内部错误计数（仅用于测试）。
func ErrorCount(l Logger) uint64 {
	xl, ok := l.(*xlogger)
	if !ok || xl.errorCount == nil {
		return 0
	}
	return xl.errorCount.Load()
}
