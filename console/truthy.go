package console

import (
	"math"
	"reflect"

	"github.com/dop251/goja"
)

// Truthy reports whether v coerces to true under ECMAScript ToBoolean:
// undefined and null are false, booleans are themselves, numbers are false
// only for zero and NaN, strings are false only when empty, and symbols and
// objects (including wrapper objects) are always true.
func Truthy(v goja.Value) bool {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return false
	}
	// Wrapper objects like `new Boolean(false)` export their primitive, but
	// as objects they are always truthy.
	if _, isObj := v.(*goja.Object); isObj {
		return true
	}
	switch ex := v.Export().(type) {
	case bool:
		return ex
	case int64:
		return ex != 0
	case float64:
		return ex != 0 && !math.IsNaN(ex)
	case string:
		return ex != ""
	}
	return true
}

// isString reports whether v is a primitive string value.
func isString(v goja.Value) bool {
	if _, isObj := v.(*goja.Object); isObj {
		return false
	}
	t := v.ExportType()
	return t != nil && t.Kind() == reflect.String
}
