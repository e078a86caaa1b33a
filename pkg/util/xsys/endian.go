package xsys

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// 字节序名称。
const (
	BigEndian    = "big"
	LittleEndian = "little"
)

// IsBigEndian 报告本机是否为大端字节序。
func IsBigEndian() bool {
	return cpu.IsBigEndian
}

// Endianness 返回本机字节序名称：[BigEndian] 或 [LittleEndian]。
func Endianness() string {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// ByteOrder 返回本机字节序。
func ByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
