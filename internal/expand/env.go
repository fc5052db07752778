// Package expand substitutes ${env.KEY} expressions with environment values.
package expand

import (
	"os"
	"regexp"
)

var envExpr = regexp.MustCompile(`\$\{env\.([A-Za-z0-9_]*)\}`)

// LookupFunc resolves environment keys; override in tests.
var LookupFunc = os.Getenv

// Env replaces every ${env.KEY} in text with the value of KEY, or "" when unset.
// Malformed expressions are left untouched.
func Env(text []byte) []byte {
	return envExpr.ReplaceAllFunc(text, func(match []byte) []byte {
		key := envExpr.FindSubmatch(match)[1]
		return []byte(LookupFunc(string(key)))
	})
}
