package rc_test

import (
	"fmt"

	"github.com/joshuapare/refkit/rc"
)

// Example shows shared ownership of a single value.
func Example() {
	a := rc.New("config")
	b := a.Clone()

	fmt.Println(a.UseCount(), a.Value())

	a.Release()
	fmt.Println(b.UseCount(), b.Value())
	b.Release()

	// Output:
	// 2 config
	// 1 config
}

// ExampleAdopt demonstrates taking ownership of an existing pointer with a
// custom destroyer.
func ExampleAdopt() {
	type conn struct{ addr string }
	c := &conn{addr: "10.0.0.1:4222"}

	s, err := rc.Adopt(c, &rc.AdoptOptions[conn]{
		Destroyer: rc.DestroyerFn[conn](func(c *conn) {
			fmt.Println("closing", c.addr)
		}),
	})
	if err != nil {
		fmt.Println("adopt failed:", err)
		return
	}

	s.Release() // last owner: destroyer runs now
	// Output:
	// closing 10.0.0.1:4222
}

// ExampleStrong_Downgrade demonstrates observing a value without owning it.
func ExampleStrong_Downgrade() {
	s := rc.New(42)
	w := s.Downgrade()
	defer w.Release()

	if v, ok := w.Upgrade(); ok {
		fmt.Println("alive:", v.Value())
		v.Release()
	}

	s.Release()
	if _, ok := w.Upgrade(); !ok {
		fmt.Println("expired:", w.Expired())
	}

	// Output:
	// alive: 42
	// expired: true
}

// ExampleCountingAllocator demonstrates leak checking in tests.
func ExampleCountingAllocator() {
	alloc := &rc.CountingAllocator{}

	s, _ := rc.NewIn(alloc, []byte("payload"))
	w := s.Downgrade()
	s.Release()
	w.Release()

	fmt.Println("live blocks:", alloc.Live())
	// Output:
	// live blocks: 0
}
