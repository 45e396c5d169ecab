package model

import "errors"

var (
	// ErrBadDimensions indicates a non-positive vocabulary size or
	// embedding width.
	ErrBadDimensions = errors.New("model: vocabulary size and repr dim must be ≥ 1")

	// ErrBadSymbolID indicates an embedding lookup id outside the table.
	ErrBadSymbolID = errors.New("model: symbol id out of range")

	// ErrShapeMismatch indicates operands whose dimensions do not agree.
	ErrShapeMismatch = errors.New("model: operand shapes do not match")
)
