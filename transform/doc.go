// Package transform provides utilities for mutating string values recursively
// within decoded input maps. These utilities are commonly passed to
// [formvalidation.WithTransform].
package transform
