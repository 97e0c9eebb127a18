//go:build !windows

package paths

// driveAnchor never matches, a colon is an ordinary filename byte here.
func driveAnchor(s string) (anchor, rest string, ok bool) {
	return "", s, false
}
