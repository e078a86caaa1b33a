// Package context 提供上下文与环境相关的子包。
//
// 子包列表：
//   - xenv: 环境变量读取，带默认值与前缀作用域
//   - xseq: 嵌套序号，通过 context.Context 传递序号与深度
//
// 设计原则：
//   - 上下文信息通过 context.Context 传递，不使用全局变量
package context
