package qnum

import "github.com/zeebo/errs"

// Error classes for the distinct failure kinds of the codec. Callers
// discriminate with the Has method, e.g. ErrIncomparable.Has(err).
var (
	// ErrConstruct: unsupported source type or malformed numeric text.
	ErrConstruct = errs.Class("construct")

	// ErrIncomparable: ordering asked of unordered operands.
	ErrIncomparable = errs.Class("incomparable")

	// ErrComplex: a real-valued conversion asked of a complex value.
	ErrComplex = errs.Class("complex")

	// ErrWhole: wholeness asked of a magnitude too large to determine.
	ErrWhole = errs.Class("whole indeterminate")

	// ErrQex and ErrQan: exponent or significand asked of a zone that
	// has none.
	ErrQex = errs.Class("qex undefined")
	ErrQan = errs.Class("qan undefined")

	// ErrUnimplemented: the operation would need ludicrous or
	// transfinite support.
	ErrUnimplemented = errs.Class("unimplemented")

	// ErrOverflow: conversion target cannot hold the value.
	ErrOverflow = errs.Class("overflow")

	// ErrNaN: a numeric conversion asked of NaN.
	ErrNaN = errs.Class("nan")

	// ErrDivision: division by a zero-valued Number.
	ErrDivision = errs.Class("division by zero")
)
