package ops

import (
	"fmt"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
)

// execAddParameter implements add_parameter: compose the new parameter
// text and splice it into the target function's parameter list at
// first, last, or a given 0-based index, with correct comma handling.
func execAddParameter(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.FunctionName == "" || op.ParamName == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "add_parameter requires function_name and param_name")
	}

	fn, err := findFunctionByName(c.Tree, c.OpIndex, op.FunctionName)
	if err != nil {
		return nil, err
	}

	paramsNode := fn.ChildByFieldName("parameters")
	if paramsNode == nil {
		return nil, NewError(c.OpIndex, InvalidParams, fmt.Sprintf("function %q has no parameter list", op.FunctionName))
	}

	pos, err := ParsePosition(op.Position)
	if err != nil {
		return nil, NewError(c.OpIndex, InvalidParams, err.Error())
	}

	paramText := op.ParamName
	if op.ParamType != "" {
		paramText += ": " + op.ParamType
	}
	if op.DefaultValue != "" {
		paramText += " = " + op.DefaultValue
	}

	params := paramList(paramsNode)
	index := len(params)
	switch {
	case pos.First:
		index = 0
	case pos.Last:
		index = len(params)
	default:
		index = pos.Index
		if index > len(params) {
			return nil, NewError(c.OpIndex, InvalidParams, fmt.Sprintf("position index %d exceeds parameter count %d", index, len(params)))
		}
	}

	var start, end int
	var replacement string

	switch {
	case len(params) == 0:
		start = int(paramsNode.StartByte()) + 1 // just past "("
		end = start
		replacement = paramText

	case index == 0:
		start = int(params[0].StartByte())
		end = start
		replacement = paramText + ", "

	case index >= len(params):
		if tc := trailingComma(paramsNode, params); tc != nil {
			start = int(tc.EndByte())
			end = start
			replacement = " " + paramText + ","
		} else {
			start = int(params[len(params)-1].EndByte())
			end = start
			replacement = ", " + paramText
		}

	default:
		start = int(params[index].StartByte())
		end = start
		replacement = paramText + ", "
	}

	return []edit.TextEdit{
		edit.NewTextEdit(start, end, replacement, "add_parameter", 0, c.OpIndex),
	}, nil
}
