// Package xsys 提供字节序与 CPU 特性检测。
//
// # 功能概览
//
//   - [ByteOrder]: 本机字节序对应的 binary.ByteOrder
//   - [IsBigEndian] / [Endianness]: 本机是否为大端 / 字节序名称
//   - [CPUs]: 可用逻辑 CPU 数
//   - [Features]: 当前架构检测到的 CPU 特性列表（基于 golang.org/x/sys/cpu）
//
// 检测结果在进程生命周期内不变，所有函数并发安全。
package xsys
