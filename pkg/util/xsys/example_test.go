package xsys_test

import (
	"fmt"

	"github.com/omeyang/xpc/pkg/util/xsys"
)

func ExampleByteOrder() {
	buf := make([]byte, 2)
	xsys.ByteOrder().PutUint16(buf, 0x0102)
	fmt.Println(xsys.ByteOrder().Uint16(buf) == 0x0102)
	// Output:
	// true
}
