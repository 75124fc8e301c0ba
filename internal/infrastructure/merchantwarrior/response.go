package merchantwarrior

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const (
	tagResponseCode    = "responseCode"
	tagResponseMessage = "responseMessage"
	tagUniqueCode      = "uniqueCode"
	tagPaymentLink     = "paymentLink"

	codeApproved = "0"
)

// response holds the first occurrence of each interesting tag. Absent tags
// stay empty and are not listed in found.
type response struct {
	ResponseCode    string
	ResponseMessage string
	UniqueCode      string
	PaymentLink     string

	found map[string]bool
}

func (r response) has(tag string) bool { return r.found[tag] }

func (r response) approved() bool {
	return r.has(tagResponseCode) && r.ResponseCode == codeApproved
}

// parseResponse scans the XML body for the PayLink tags wherever they are
// nested. Parsing stops at the first syntax error; tags seen until then are kept.
func parseResponse(body io.Reader) (response, error) {
	res := response{found: make(map[string]bool, 4)}
	targets := map[string]*string{
		tagResponseCode:    &res.ResponseCode,
		tagResponseMessage: &res.ResponseMessage,
		tagUniqueCode:      &res.UniqueCode,
		tagPaymentLink:     &res.PaymentLink,
	}

	dec := xml.NewDecoder(body)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Strict = false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		dst, wanted := targets[start.Name.Local]
		if !wanted || res.found[start.Name.Local] {
			continue
		}

		text, err := innerText(dec)
		if err != nil {
			return res, err
		}
		*dst = text
		res.found[start.Name.Local] = true
	}
}

// innerText collects the character data of the element just opened,
// descending into children the way DOM textContent does.
func innerText(dec *xml.Decoder) (string, error) {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return b.String(), err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			b.Write(t)
		}
	}
	return b.String(), nil
}
