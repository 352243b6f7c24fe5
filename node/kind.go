// Package node is a thin, typed facade over a tree-sitter Bash parse tree.
//
// It exposes exactly the queries the evaluator needs — symbol kind, named
// children, field lookup, and the byte range backing a node — and nothing
// else. No other package in this module imports
// github.com/smacker/go-tree-sitter directly; everything flows through here.
package node

// Kind identifies the grammar symbol a Node was produced from. Names match
// the tree-sitter-bash grammar (https://github.com/tree-sitter/tree-sitter-bash)
// verbatim, since that is the vocabulary the external parser actually emits.
type Kind string

const (
	KindProgram             Kind = "program"
	KindComment             Kind = "comment"
	KindVariableAssignment  Kind = "variable_assignment"
	KindCommand             Kind = "command"
	KindCommandName         Kind = "command_name"
	KindWord                Kind = "word"
	KindString              Kind = "string"
	KindRawString           Kind = "raw_string"
	KindStringContent       Kind = "string_content"
	KindSimpleExpansion     Kind = "simple_expansion"
	KindExpansion           Kind = "expansion"
	KindVariableName        Kind = "variable_name"
	KindCommandSubstitution Kind = "command_substitution"
	KindPipeline            Kind = "pipeline"
	KindFileRedirect        Kind = "file_redirect"
	KindRedirectedStatement Kind = "redirected_statement"
	KindList                Kind = "list"
	KindAndOr               Kind = "and_or"
	KindBinaryExpression    Kind = "binary_expression"
)

// Field identifies a named child slot, resolved the same way Kind is: by the
// string the grammar associates with it.
type Field string

const (
	FieldBody        Field = "body"
	FieldCondition   Field = "condition"
	FieldName        Field = "name"
	FieldLeft        Field = "left"
	FieldRight       Field = "right"
	FieldOperator    Field = "operator"
	FieldValue       Field = "value"
	FieldRedirect    Field = "redirect"
	FieldDestination Field = "destination"
	FieldVariable    Field = "variable"
)

// argumentLike reports whether a node kind is one accepted by single-argument
// expansion (§4.2.1 of the evaluator spec this module implements).
func argumentLike(k Kind) bool {
	switch k {
	case KindWord, KindRawString, KindString, KindSimpleExpansion, KindExpansion, KindCommandSubstitution:
		return true
	default:
		return false
	}
}
