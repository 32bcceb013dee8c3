package console

import (
	"encoding/json"
	"reflect"

	"github.com/dop251/goja"
)

const functionRender = "[object Function]"

// errorType is used to check if a [goja.Value] implements the [error]
// interface.
//
//nolint:gochecknoglobals
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// RenderArgs converts live runtime values into plain strings for delivery
// outside the script goroutine. It must itself run on the script goroutine.
func RenderArgs(args []goja.Value) []string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = renderValue(arg)
	}
	return rendered
}

func renderValue(v goja.Value) string {
	if v == nil {
		return "undefined"
	}

	if _, isFunction := goja.AssertFunction(v); isFunction {
		return functionRender
	}

	if exportType := v.ExportType(); exportType != nil && exportType.Implements(errorType) {
		if exported := v.Export(); exported != nil {
			if err, isError := exported.(error); isError {
				return err.Error()
			}
		}
	}

	if obj, isObj := v.(*goja.Object); isObj {
		if obj.ClassName() == "Error" {
			return v.String()
		}
	}

	mv, ok := v.(json.Marshaler)
	if !ok {
		return v.String()
	}

	b, err := json.Marshal(mv)
	if err != nil {
		return v.String()
	}
	return string(b)
}
