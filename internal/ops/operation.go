package ops

import (
	"encoding/json"
	"fmt"
)

// Kind is the closed set of operation discriminators.
type Kind string

const (
	RenameSymbol       Kind = "rename_symbol"
	AddImport          Kind = "add_import"
	RemoveImport       Kind = "remove_import"
	UpdateImportPaths  Kind = "update_import_paths"
	AddParameter       Kind = "add_parameter"
	RemoveParameter    Kind = "remove_parameter"
	MakeAsync          Kind = "make_async"
	WrapInBlock        Kind = "wrap_in_block"
	ExtractToVariable  Kind = "extract_to_variable"
)

// Operation is one request-level transformation: the op discriminator
// plus every parameter any operation kind might carry. Only the fields
// relevant to Op are meaningful; the rest are left zero.
type Operation struct {
	Op Kind `json:"op"`

	// rename_symbol
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
	Scope string `json:"scope,omitempty"`

	// add_import / remove_import / update_import_paths
	Source        string   `json:"source,omitempty"`
	Specifiers    []string `json:"specifiers,omitempty"`
	DefaultImport string   `json:"default_import,omitempty"`
	TypeOnly      bool     `json:"type_only,omitempty"`
	OldPath       string   `json:"old_path,omitempty"`
	NewPath       string   `json:"new_path,omitempty"`
	MatchMode     string   `json:"match_mode,omitempty"`

	// add_parameter / remove_parameter / make_async
	FunctionName string          `json:"function_name,omitempty"`
	ParamName    string          `json:"param_name,omitempty"`
	ParamType    string          `json:"param_type,omitempty"`
	DefaultValue string          `json:"default_value,omitempty"`
	Position     json.RawMessage `json:"position,omitempty"`

	// wrap_in_block
	StartLine int    `json:"start_line,omitempty"`
	EndLine   int    `json:"end_line,omitempty"`
	WrapKind  string `json:"wrap_kind,omitempty"`
	Condition string `json:"condition,omitempty"`
	Item      string `json:"item,omitempty"`
	Iterable  string `json:"iterable,omitempty"`

	// extract_to_variable
	Expression     string `json:"expression,omitempty"`
	VariableName   string `json:"variable_name,omitempty"`
	VarKind        string `json:"var_kind,omitempty"`
	TypeAnnotation string `json:"type_annotation,omitempty"`
}

// ParsedPosition is the decoded form of add_parameter's Position field.
type ParsedPosition struct {
	First bool
	Last  bool
	Index int // meaningful only when First and Last are both false
}

// ParsePosition decodes a position field that may be the JSON string
// "first"/"last" or a JSON number giving a 0-based index.
func ParsePosition(raw json.RawMessage) (ParsedPosition, error) {
	if len(raw) == 0 {
		return ParsedPosition{Last: true}, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		switch asString {
		case "first":
			return ParsedPosition{First: true}, nil
		case "last", "":
			return ParsedPosition{Last: true}, nil
		default:
			return ParsedPosition{}, fmt.Errorf("position: unrecognized value %q", asString)
		}
	}

	var asIndex int
	if err := json.Unmarshal(raw, &asIndex); err == nil {
		if asIndex < 0 {
			return ParsedPosition{}, fmt.Errorf("position: negative index %d", asIndex)
		}
		return ParsedPosition{Index: asIndex}, nil
	}

	return ParsedPosition{}, fmt.Errorf("position: invalid value %s", string(raw))
}
