// Package utils provides loose-typed field conversion helpers.
//
// Records travel through the system as flat field mappings: YAML decodes into
// map[string]any, and dynamic table reads return map[string]any as well, with
// driver-dependent scalar types. The conversion helpers normalize those values
// without panicking on unexpected shapes.
package utils
