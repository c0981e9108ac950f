package ops

import (
	"fmt"

	"github.com/that-in-rust/parseltongue-fe-mcp/internal/edit"
)

// execRemoveParameter implements remove_parameter: drop the named
// parameter from the target function's parameter list, along with
// whichever adjacent comma keeps the remaining list well-formed.
func execRemoveParameter(c *Context, op Operation) ([]edit.TextEdit, error) {
	if op.FunctionName == "" || op.ParamName == "" {
		return nil, NewError(c.OpIndex, InvalidParams, "remove_parameter requires function_name and param_name")
	}

	fn, err := findFunctionByName(c.Tree, c.OpIndex, op.FunctionName)
	if err != nil {
		return nil, err
	}

	paramsNode := fn.ChildByFieldName("parameters")
	if paramsNode == nil {
		return nil, NewError(c.OpIndex, InvalidParams, fmt.Sprintf("function %q has no parameter list", op.FunctionName))
	}

	params := paramList(paramsNode)
	var target int = -1
	for i, p := range params {
		if paramName(c.Tree, p) == op.ParamName {
			target = i
			break
		}
	}
	if target == -1 {
		return nil, NewError(c.OpIndex, SymbolNotFound, fmt.Sprintf("function %q has no parameter named %q", op.FunctionName, op.ParamName))
	}

	p := params[target]
	start := int(p.StartByte())
	end := int(p.EndByte())

	if before := separatorBefore(paramsNode, p); before != -1 {
		// Not the first parameter: consume the preceding comma and any
		// whitespace between it and this parameter.
		start = before
	} else if target < len(params)-1 {
		// First parameter with siblings after it: consume the comma that
		// separates it from the next one; whitespace after the comma stays.
		end = separatorAfter(paramsNode, p)
	}

	return []edit.TextEdit{
		edit.NewTextEdit(start, end, "", "remove_parameter", 0, c.OpIndex),
	}, nil
}
