package xconf_test

import (
	"fmt"

	"github.com/omeyang/xpc/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	cfg, err := xconf.NewFromBytes([]byte("stats:\n  base: 1000\n"), xconf.FormatYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(cfg.Client().Float64("stats.base"))
	// Output: 1000
}

func ExampleParsePercentiles() {
	ps, err := xconf.ParsePercentiles("50, 90, 99.9")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ps)
	// Output: [50 90 99.9]
}
