package checks

import "github.com/roach88/chk/internal/registry"

var (
	_ = registry.Test("registry", "expect", testRegistryExpect)
	_ = registry.Test("registry", "order", testRegistryOrder)
	_ = registry.Test("registry", "duplicate", testRegistryDuplicate)
	_ = registry.Test("registry", "normalize", testRegistryNormalize)
)

func noop() registry.Status { return registry.Pass }

func testRegistryExpect() registry.Status {
	return registry.Expect(registry.Expect(true) == registry.Pass &&
		registry.Expect(false) != registry.Pass)
}

func testRegistryOrder() registry.Status {
	r := registry.New()
	r.Register("b", "x", noop)
	r.Register("a", "y", noop)
	r.Register("c", "z", noop)

	all := r.All()
	return registry.Expect(len(all) == 3 &&
		all[0].ID() == "b:x" &&
		all[1].ID() == "a:y" &&
		all[2].ID() == "c:z")
}

func testRegistryDuplicate() registry.Status {
	r := registry.New()
	if _, err := r.Add("A", "b", noop); err != nil {
		return registry.Fail
	}
	_, err := r.Add("A", "b", noop)
	return registry.Expect(registry.IsDuplicate(err) && r.Len() == 1)
}

func testRegistryNormalize() registry.Status {
	r := registry.New()
	d := r.Register("café", "open", noop)
	_, ok := r.Lookup("café", "open")
	return registry.Expect(ok && d.Suite == "café")
}
