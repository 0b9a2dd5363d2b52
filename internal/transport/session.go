package transport

import "net/url"

// DeriveRoom turns a raw address string into the session room
// identifier: the address is percent-decoded and truncated at its first
// '#' fragment. An empty or undecodable address yields "".
func DeriveRoom(address string) string {
	if address == "" {
		return ""
	}
	decoded, err := url.PathUnescape(address)
	if err != nil {
		return ""
	}
	for i := 0; i < len(decoded); i++ {
		if decoded[i] == '#' {
			return decoded[:i]
		}
	}
	return decoded
}
