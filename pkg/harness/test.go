package harness

import "reflect"

// Method is a test method of group type G together with its display name.
type Method[G Group] struct {
	Name string
	Fn   func(G)
}

// Named pairs a display name with a method expression such as
// (*ParserGroup).TestEmptyInput.
func Named[G Group](name string, fn func(G)) Method[G] {
	return Method[G]{Name: name, Fn: fn}
}

// Test is a registered test method bound to its group instance.
type Test struct {
	Name      string
	GroupName string

	group Group
	body  func()
}

// registration records a Register call for the run log.
type registration struct {
	name  string
	tests int
}

// Register creates one instance of the group type T and appends a test for
// each method, in order. The instance lives as long as the runner and is
// shared by all of the group's methods.
func Register[T any, PT interface {
	*T
	Group
}](r *Runner, methods ...Method[PT]) {
	group := PT(new(T))
	groupName := reflect.TypeOf((*T)(nil)).Elem().Name()

	r.instances = append(r.instances, group)
	r.groups = append(r.groups, registration{name: groupName, tests: len(methods)})
	for _, m := range methods {
		fn := m.Fn
		r.tests = append(r.tests, Test{
			Name:      m.Name,
			GroupName: groupName,
			group:     group,
			body:      func() { fn(group) },
		})
	}
}

// invoke runs SetUp, the method body and TearDown, returning the value the
// test panicked with, or nil. A panicking SetUp skips the body and TearDown;
// a panicking TearDown replaces the body's signal.
func (t Test) invoke() any {
	if sig := protect(t.group.SetUp); sig != nil {
		return sig
	}
	sig := protect(t.body)
	if down := protect(t.group.TearDown); down != nil {
		sig = down
	}
	return sig
}

func protect(fn func()) (sig any) {
	defer func() {
		sig = recover()
	}()
	fn()
	return nil
}
