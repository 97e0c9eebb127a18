package paths

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleParse() {
	fmt.Println(Parse("/usr//local/./bin").Segments)
	fmt.Println(Parse("a/../b"))
	fmt.Println(Parse(""))

	// Output: [usr local bin]
	// a/../b
	// .
}

func TestPathParent(t *testing.T) {
	cases := []struct {
		path     string
		expected string
	}{
		{"/", "/"},
		{"/home", "/"},
		{"/home/user", "/home"},
		{"a/b", "a"},
		{"a", "."},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.path).Parent().String())
		})
	}
}

func TestPathJoin(t *testing.T) {
	cwd := Parse("/home/user")

	assert.Equal(t, "/home/user/a/b", cwd.Join(Parse("a/b")).String())
	assert.Equal(t, "/etc", cwd.Join(Parse("/etc")).String())
	assert.Equal(t, "/home/user/x", cwd.Child("x").String())
}

func TestPathJoinDoesNotAlias(t *testing.T) {
	base := Path{Anchor: "/", Segments: make([]string, 1, 10)}
	base.Segments[0] = "a"

	left := base.Child("left")
	right := base.Child("right")

	assert.Equal(t, "/a/left", left.String())
	assert.Equal(t, "/a/right", right.String())
}

func TestPathHasPrefix(t *testing.T) {
	home := Parse("/home/user")

	assert.True(t, Parse("/home/user/docs").HasPrefix(home))
	assert.True(t, home.HasPrefix(home))
	assert.False(t, Parse("/home/username").HasPrefix(home))
	assert.False(t, Parse("home/user/docs").HasPrefix(home))
}
