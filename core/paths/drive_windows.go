//go:build windows

package paths

// driveAnchor splits a leading drive letter such as "C:" or "C:/" from s.
func driveAnchor(s string) (anchor, rest string, ok bool) {
	if len(s) < 2 || s[1] != ':' || !isDriveLetter(s[0]) {
		return "", s, false
	}
	if len(s) >= 3 && s[2] == '/' {
		return s[:3], s[3:], true
	}
	return s[:2] + "/", s[2:], true
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
