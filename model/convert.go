package model

import (
	"xdao.co/elbonian/compliance"
	"xdao.co/elbonian/elbonian"
)

// Convert parses req.Input under the requested compliance mode and returns the
// boundary view of the result. Failures are *CodedError values.
func Convert(req ConversionRequest) (*Conversion, error) {
	mode, err := compliance.ParseMode(string(req.Compliance))
	if err != nil {
		return nil, NewError(ErrInvalidRequest, err.Error())
	}
	n, err := elbonian.ParseWithMode(req.Input, mode)
	if err != nil {
		return nil, FromError(err)
	}
	return FromNumeral(req.Input, n), nil
}

// Respond is Convert folded into a single response value.
func Respond(req ConversionRequest) ConversionResponse {
	c, err := Convert(req)
	if err != nil {
		return ConversionResponse{Error: FromError(err)}
	}
	return ConversionResponse{Conversion: c}
}

func FromNumeral(input string, n elbonian.Numeral) *Conversion {
	return &Conversion{
		Input:    input,
		Form:     n.Form().String(),
		Arabic:   n.Arabic(),
		Elbonian: n.Elbonian(),
		CID:      n.CID(),
	}
}
