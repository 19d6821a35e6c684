package model

type ComplianceMode string

const (
	CompliancePermissive ComplianceMode = "permissive"
	ComplianceStrict     ComplianceMode = "strict"
)

type ConversionRequest struct {
	Input      string         `json:"input" yaml:"input"`
	Compliance ComplianceMode `json:"compliance,omitempty" yaml:"compliance,omitempty"`
}

// Conversion is the outcome of one successful conversion.
//
// Form is the notation Input was written in ("arabic" or "elbonian").
type Conversion struct {
	Input    string `json:"input" yaml:"input"`
	Form     string `json:"form" yaml:"form"`
	Arabic   int    `json:"arabic" yaml:"arabic"`
	Elbonian string `json:"elbonian" yaml:"elbonian"`
	CID      string `json:"cid" yaml:"cid"`
}

// ConversionResponse carries either a Conversion or an Error, never both.
type ConversionResponse struct {
	Conversion *Conversion `json:"conversion,omitempty" yaml:"conversion,omitempty"`
	Error      *CodedError `json:"error,omitempty" yaml:"error,omitempty"`
}
