// Package model defines the ION form model: fields, their options and kinds,
// the declarative attributes and call-site overrides that shape them, and the
// Form container together with its JSON Schema compilation.
//
// Attributes use Optional members so a value explicitly set to false or 0 is
// distinguishable from one that was never mentioned. Overrides use plain
// pointers for the same purpose. Builders in pkg/builder apply inferred
// defaults, then attributes, then overrides onto a Field.
//
// CompileSchema maps fields onto JSON Schema keywords:
//
//	description -> description
//	enabled     -> readOnly (negated, unset when nil)
//	pattern     -> pattern
//	min/max     -> minimum/maximum
//	minLength   -> minLength, maxLength -> maxLength
//	type        -> number (decimal, number), integer (integer), string otherwise
//	required    -> required (only when true)
package model
