// Package model defines stable boundary types for API layers.
//
// Numeral identity (canonical Elbonian spelling and its CID) is unaffected by
// any projection. These structs are the only types intended for direct
// JSON/YAML serialization by consumers.
package model
