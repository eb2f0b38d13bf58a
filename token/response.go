package token

import "fmt"

// TerminalResponseKind discriminates the TerminalResponse variants.
type TerminalResponseKind int

const (
	// ResponseCursorPosition is a CPR reply (CSI row;colR).
	ResponseCursorPosition TerminalResponseKind = iota
	// ResponseDeviceAttributes is a DA reply (CSI [>] ... c).
	ResponseDeviceAttributes
	// ResponseStatusReport is a DSR-style reply (CSI code n).
	ResponseStatusReport
	// ResponseOSC is an Operating System Command (ESC ] code ; data BEL|ST).
	ResponseOSC
	// ResponseText is the fallback for a recognized-but-unmapped CSI
	// final byte: the raw sequence, preserved verbatim.
	ResponseText
)

// TerminalResponse is a terminal-to-host reply or an unrecognized but
// well-formed CSI sequence. The tokenizer never validates the semantic
// plausibility of a response's payload (e.g. any integer row/column is
// accepted).
type TerminalResponse struct {
	Kind TerminalResponseKind

	// ResponseCursorPosition
	Row    int
	Column int

	// ResponseDeviceAttributes
	Values    []int
	IsPrivate bool

	// ResponseStatusReport
	Code int

	// ResponseOSC
	OSCCode int
	Data    string

	// ResponseText
	Raw string
}

// String returns a human-readable representation of the response.
func (r TerminalResponse) String() string {
	switch r.Kind {
	case ResponseCursorPosition:
		return fmt.Sprintf("CursorPosition(%d,%d)", r.Row, r.Column)
	case ResponseDeviceAttributes:
		return fmt.Sprintf("DeviceAttributes(%v, private=%v)", r.Values, r.IsPrivate)
	case ResponseStatusReport:
		return fmt.Sprintf("StatusReport(%d)", r.Code)
	case ResponseOSC:
		return fmt.Sprintf("OperatingSystemCommand(%d,%q)", r.OSCCode, r.Data)
	case ResponseText:
		return fmt.Sprintf("Text(%q)", r.Raw)
	default:
		return "Unknown"
	}
}

// CursorPositionResponse builds a ResponseCursorPosition.
func CursorPositionResponse(row, column int) TerminalResponse {
	return TerminalResponse{Kind: ResponseCursorPosition, Row: row, Column: column}
}

// DeviceAttributesResponse builds a ResponseDeviceAttributes.
func DeviceAttributesResponse(values []int, isPrivate bool) TerminalResponse {
	return TerminalResponse{Kind: ResponseDeviceAttributes, Values: values, IsPrivate: isPrivate}
}

// StatusReportResponse builds a ResponseStatusReport.
func StatusReportResponse(code int) TerminalResponse {
	return TerminalResponse{Kind: ResponseStatusReport, Code: code}
}

// OSCResponse builds a ResponseOSC.
func OSCResponse(code int, data string) TerminalResponse {
	return TerminalResponse{Kind: ResponseOSC, OSCCode: code, Data: data}
}

// TextResponse builds a ResponseText fallback carrying the raw sequence.
func TextResponse(raw string) TerminalResponse {
	return TerminalResponse{Kind: ResponseText, Raw: raw}
}
