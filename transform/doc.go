// Package transform provides record normalizers that rewrite string values
// of a decoded record in place, recursing into nested objects and arrays.
// Their signature matches the normalizers accepted by
// [rulevalidation.Validator.DecodeAndValidate].
package transform
