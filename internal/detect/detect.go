// Package detect sniffs an input document to determine its test-result format.
package detect

import (
	"bytes"
	"encoding/xml"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	NUnit2         // NUnit 2.x <test-results>
	NUnit3         // NUnit 3 <test-run>
	JUnit          // JUnit <testsuites> or <testsuite>
)

func (f Format) String() string {
	switch f {
	case NUnit2:
		return "NUnit 2"
	case NUnit3:
		return "NUnit 3"
	case JUnit:
		return "JUnit"
	default:
		return "unknown"
	}
}

// Sniff examines the root element of data to determine the format.
// Documents that are not XML, or whose root is unrecognised, are Unknown.
func Sniff(data []byte) Format {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return Unknown
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "test-results":
			return NUnit2
		case "test-run":
			return NUnit3
		case "testsuites", "testsuite":
			return JUnit
		default:
			return Unknown
		}
	}
}
