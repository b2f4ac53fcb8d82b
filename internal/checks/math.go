package checks

import "github.com/roach88/chk/internal/registry"

var (
	_ = registry.Test("math", "add", testMathAdd)
	_ = registry.Test("math", "overflow", testMathOverflow)
)

func testMathAdd() registry.Status {
	return registry.Expect(2+2 == 4)
}

func testMathOverflow() registry.Status {
	var x int8 = 127
	x++
	return registry.Expect(x == -128)
}
