// Package ast defines the Abstract Syntax Tree node types for TinyC.
//
// The AST represents the hierarchical structure of a TinyC program after
// parsing. Each node type corresponds to a syntactic construct in the
// grammar. Nodes are algebraic — every variant carries exactly the
// fields its production needs — and immutable once constructed: the
// parser builds them bottom-up and never mutates a node afterward.
//
// Node categories:
//   - Types: Primitive, Named (struct reference), Pointer
//   - Declarations: Variable (with optional array size and
//     initializer), Parameter, FunctionDeclaration, StructDeclaration
//     (forward or defining), FunctionPointerDeclaration,
//     MultipleDeclaration
//   - Expressions: Literal, Identifier, BinaryExpression,
//     UnaryExpression, CastExpression, CallExpression,
//     IndexExpression, MemberExpression, CommaExpression
//   - Statements: Block, ExpressionStatement, If, While, DoWhile, For,
//     Switch (with Case arms), Break, Continue, Return
//
// Every node implements Node, which provides its source location and a
// debug string; Expression and Statement are marker sub-interfaces.
// The tree is a strict single-owner hierarchy (Program owns its
// top-level declarations, each composite owns its children) and is
// acyclic, so dropping a Program releases every descendant.
package ast
