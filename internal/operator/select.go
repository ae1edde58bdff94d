package operator

import (
	"crypto/md5"
	"encoding/hex"

	"json-mapper/internal/value"
)

// existSelect reports whether the selected value is truthy.
func existSelect(_ *Library, p Params, source any) any {
	return value.Truthy(lookup(source, p.Path("select")))
}

// selectMD5 returns the lowercase hex MD5 digest of the selected string, or
// "" when the selection is not a non-empty string.
func selectMD5(_ *Library, p Params, source any) any {
	s, ok := asString(lookup(source, p.Path("select")))
	if !ok || s == "" {
		return ""
	}

	sum := md5.Sum([]byte(s))

	return hex.EncodeToString(sum[:])
}
