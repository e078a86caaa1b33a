package xsys

import (
	"runtime"
	"sort"

	"golang.org/x/sys/cpu"
)

// CPUs 返回当前进程可用的逻辑 CPU 数。
func CPUs() int {
	return runtime.NumCPU()
}

// feature 描述一个可检测的 CPU 特性。
type feature struct {
	name string
	ok   bool
}

// Features 返回当前架构检测到的 CPU 特性名称，按字母序排列。
// 不识别的架构返回空切片。
func Features() []string {
	var list []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		list = []feature{
			{"aes", cpu.X86.HasAES},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"bmi2", cpu.X86.HasBMI2},
			{"pclmulqdq", cpu.X86.HasPCLMULQDQ},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"sse42", cpu.X86.HasSSE42},
		}
	case "arm64":
		list = []feature{
			{"aes", cpu.ARM64.HasAES},
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"crc32", cpu.ARM64.HasCRC32},
			{"pmull", cpu.ARM64.HasPMULL},
			{"sha1", cpu.ARM64.HasSHA1},
			{"sha2", cpu.ARM64.HasSHA2},
		}
	}

	names := make([]string, 0, len(list))
	for _, f := range list {
		if f.ok {
			names = append(names, f.name)
		}
	}
	sort.Strings(names)
	return names
}
