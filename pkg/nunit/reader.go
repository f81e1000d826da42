package nunit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are tried in order against "<date> <time>".
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"02.01.2006 15:04:05",
}

// ReadFile parses an NUnit results file from disk.
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open nunit report: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// ReadBytes parses an NUnit results document from a byte slice.
func ReadBytes(data []byte) (*Report, error) {
	return Read(bytes.NewReader(data))
}

// Read parses an NUnit results document from an io.Reader.
func Read(r io.Reader) (*Report, error) {
	var root xmlElement
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MalformedReportError{Element: "empty document"}
		}
		return nil, &MalformedReportError{Element: "xml", Err: err}
	}
	return load(&root)
}

func load(root *xmlElement) (*Report, error) {
	elem := root.XMLName.Local
	name, ok := root.attr("name")
	if !ok {
		return nil, missing(elem, "name")
	}

	report := &Report{Name: name}
	var err error
	if report.Total, err = optionalCount(root, "total"); err != nil {
		return nil, err
	}
	if report.Failures, err = optionalCount(root, "failures"); err != nil {
		return nil, err
	}
	if report.NotRun, err = optionalCount(root, "not-run"); err != nil {
		return nil, err
	}
	if report.Timestamp, err = timestamp(root); err != nil {
		return nil, err
	}

	report.Root = &Node{Kind: KindSuite, Name: name}
	if err := attachChildren(report.Root, root, true); err != nil {
		return nil, err
	}
	return report, nil
}

// optionalCount reads a summary counter; missing or empty means 0.
func optionalCount(e *xmlElement, field string) (int, error) {
	v, ok := e.attr(field)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(e.XMLName.Local, field, v, err)
	}
	return n, nil
}

func timestamp(e *xmlElement) (time.Time, error) {
	elem := e.XMLName.Local
	date, ok := e.attr("date")
	if !ok {
		return time.Time{}, missing(elem, "date")
	}
	clock, ok := e.attr("time")
	if !ok {
		return time.Time{}, missing(elem, "time")
	}
	combined := strings.TrimSpace(date) + " " + strings.TrimSpace(clock)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, combined); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, invalid(elem, "date/time", combined, errors.New("unrecognized timestamp layout"))
}

// attachChildren converts the suite/case descendants of e into children of
// parent. Elements that are neither suites nor cases are transparent. The
// report root passes topLevel so its suites keep a nil parent.
func attachChildren(parent *Node, e *xmlElement, topLevel bool) error {
	for i := range e.Children {
		c := &e.Children[i]
		var (
			node *Node
			err  error
		)
		switch c.XMLName.Local {
		case elemSuite:
			node, err = loadSuite(c)
		case elemCase:
			node, err = loadCase(c)
		case elemReason, elemFailure:
			continue
		default:
			if err := attachChildren(parent, c, topLevel); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if !topLevel {
			node.parent = parent
		}
		parent.Children = append(parent.Children, node)
	}
	return nil
}

func loadSuite(e *xmlElement) (*Node, error) {
	name, ok := e.attr("name")
	if !ok {
		return nil, missing(elemSuite, "name")
	}
	typ, _ := e.attr("type")
	node := &Node{Kind: KindSuite, Name: name, Type: typ}
	if reason := e.child(elemReason); reason != nil {
		node.Reason, _ = reason.childText(elemMessage)
	}
	if err := attachChildren(node, e, false); err != nil {
		return nil, err
	}
	return node, nil
}

func loadCase(e *xmlElement) (*Node, error) {
	name, ok := e.attr("name")
	if !ok {
		return nil, missing(elemCase, "name")
	}
	success, ok := e.attr("success")
	if !ok {
		return nil, missing(elemCase, "success")
	}
	executed, ok := e.attr("executed")
	if !ok {
		return nil, missing(elemCase, "executed")
	}

	success = strings.ToLower(strings.TrimSpace(success))
	node := &Node{
		Kind:     KindCase,
		Name:     name,
		Success:  success,
		Passed:   success != "false",
		Executed: !strings.EqualFold(strings.TrimSpace(executed), "false"),
	}
	if f := e.child(elemFailure); f != nil {
		msg, _ := f.childText(elemMessage)
		var stack string
		if st := f.child(elemStackTrace); st != nil {
			stack = strings.Trim(st.Text, "\r\n")
		}
		node.Failure = &Failure{Message: msg, StackTrace: stack}
	}
	return node, nil
}
