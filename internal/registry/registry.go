package registry

// Func is a test implementation. It takes no arguments and reports its
// outcome through the returned Status.
type Func func() Status

// Descriptor describes one declared test case. Descriptors are created at
// registration and shared by every caller of All and Lookup; callers must
// not modify them.
type Descriptor struct {
	Suite string
	Name  string
	Run   Func
}

// ID returns "suite:name".
func (d *Descriptor) ID() string {
	return JoinID(d.Suite, d.Name)
}

// Registry is an ordered collection of test descriptors.
//
// Registration is expected to happen during package initialization, which
// runs on a single goroutine. A Registry is not safe for registration
// concurrent with iteration.
type Registry struct {
	tests []*Descriptor
	index map[string]*Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]*Descriptor)}
}

var defaultRegistry = New()

// Default returns the process-wide registry used by Test and the chk binary.
func Default() *Registry {
	return defaultRegistry
}

// Test registers fn as suite:name in the default registry and returns its
// descriptor, so a declaration can sit in a package-level var initializer.
// Panics with a *RegistrationError on duplicate or invalid input.
func Test(suite, name string, fn Func) *Descriptor {
	return defaultRegistry.Register(suite, name, fn)
}

// Register adds a test to r. It is usually called from package
// initialization and panics with a *RegistrationError if the pair is
// already registered or the input is invalid.
func (r *Registry) Register(suite, name string, fn Func) *Descriptor {
	d, err := r.Add(suite, name, fn)
	if err != nil {
		panic(err)
	}
	return d
}

// Add is like Register but returns the error instead of panicking.
func (r *Registry) Add(suite, name string, fn Func) (*Descriptor, error) {
	suite, name = canonicalName(suite), canonicalName(name)

	if msg := validateName("suite", suite); msg != "" {
		return nil, &RegistrationError{Code: ErrCodeInvalidName, Suite: suite, Name: name, Message: msg}
	}
	if msg := validateName("test", name); msg != "" {
		return nil, &RegistrationError{Code: ErrCodeInvalidName, Suite: suite, Name: name, Message: msg}
	}
	if fn == nil {
		return nil, &RegistrationError{Code: ErrCodeNilFunc, Suite: suite, Name: name, Message: "test function is nil"}
	}

	id := JoinID(suite, name)
	if _, ok := r.index[id]; ok {
		return nil, &RegistrationError{Code: ErrCodeDuplicateTest, Suite: suite, Name: name, Message: "test already registered"}
	}

	d := &Descriptor{Suite: suite, Name: name, Run: fn}
	r.tests = append(r.tests, d)
	r.index[id] = d
	return d, nil
}

// All returns the registered descriptors in registration order. The slice
// is a copy; the descriptors are shared and must not be modified.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, len(r.tests))
	copy(out, r.tests)
	return out
}

// Lookup returns the descriptor registered as suite:name, if any.
func (r *Registry) Lookup(suite, name string) (*Descriptor, bool) {
	d, ok := r.index[JoinID(canonicalName(suite), canonicalName(name))]
	return d, ok
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.tests)
}
