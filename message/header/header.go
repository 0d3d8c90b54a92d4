package header

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"
	"github.com/zostay/go-addr/pkg/addr"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because the there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")

	// ErrBadFieldName is returned by WriteTo when a field name is empty or
	// contains a colon, space, or control character.
	ErrBadFieldName = errors.New("invalid header field name")
)

// Standard field names.
const (
	Bcc                     = "Bcc"
	Cc                      = "Cc"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
	Date                    = "Date"
	From                    = "From"
	MIMEVersion             = "MIME-Version"
	Subject                 = "Subject"
	To                      = "To"
)

// Field is a single header field.
type Field struct {
	Name string
	Body string
}

// Header is an ordered list of header fields. The zero value is an empty
// header that writes with CRLF line breaks.
type Header struct {
	lbr    Break
	fields []Field
}

// Break returns the line break used by WriteTo.
func (h *Header) Break() Break {
	if h.lbr == "" {
		return CRLF
	}
	return h.lbr
}

// SetBreak changes the line break used by WriteTo.
func (h *Header) SetBreak(lbr Break) {
	h.lbr = lbr
}

// Clone returns a copy of the header that shares nothing with the original.
func (h *Header) Clone() *Header {
	return &Header{lbr: h.lbr, fields: h.Fields()}
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Fields returns a copy of the header's fields in order.
func (h *Header) Fields() []Field {
	fs := make([]Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// GetAll returns the bodies of every field with the given name, in order.
func (h *Header) GetAll(name string) []string {
	var bodies []string
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			bodies = append(bodies, f.Body)
		}
	}
	return bodies
}

// Get returns the body of the named field. It returns ErrNoSuchField if the
// field is not set and ErrManyFields if it is set more than once.
func (h *Header) Get(name string) (string, error) {
	bodies := h.GetAll(name)
	switch len(bodies) {
	case 0:
		return "", ErrNoSuchField
	case 1:
		return bodies[0], nil
	}
	return "", ErrManyFields
}

// Set replaces the first field with the given name and removes any others. If
// there is no such field, it is added to the end.
func (h *Header) Set(name, body string) {
	set := false
	kept := h.fields[:0]
	for _, f := range h.fields {
		if strings.EqualFold(f.Name, name) {
			if set {
				continue
			}
			f.Body = body
			set = true
		}
		kept = append(kept, f)
	}
	h.fields = kept

	if !set {
		h.Add(name, body)
	}
}

// Add appends a field, even if one with the same name already exists.
func (h *Header) Add(name, body string) {
	h.fields = append(h.fields, Field{Name: name, Body: body})
}

// Del removes every field with the given name.
func (h *Header) Del(name string) {
	kept := h.fields[:0]
	for _, f := range h.fields {
		if !strings.EqualFold(f.Name, name) {
			kept = append(kept, f)
		}
	}
	h.fields = kept
}

// SetSubject replaces the Subject header field. A subject that is not plain
// ASCII is encoded as RFC 2047 encoded words in UTF-8.
func (h *Header) SetSubject(s string) {
	h.Set(Subject, encodeWords(s))
}

// GetSubject returns the Subject header field with any RFC 2047 encoded words
// decoded.
func (h *Header) GetSubject() (string, error) {
	s, err := h.Get(Subject)
	if err != nil {
		return "", err
	}
	return (&mime.WordDecoder{}).DecodeHeader(s)
}

func encodeWords(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf || (s[i] < ' ' && s[i] != '\t') {
			return mime.QEncoding.Encode("utf-8", s)
		}
	}
	return s
}

// SetAddressList replaces the named field with the given addresses. Parsed
// addresses are written as they were originally given. Others are written in
// their canonical form.
func (h *Header) SetAddressList(name string, al addr.AddressList) {
	h.Set(name, formatAddressList(al))
}

func formatAddressList(al addr.AddressList) string {
	parts := make([]string, len(al))
	for i, a := range al {
		parts[i] = strings.TrimSpace(a.OriginalString())
		if parts[i] == "" {
			parts[i] = a.CleanString()
		}
	}
	return strings.Join(parts, ", ")
}

// SetAddresses parses each string as an address list and replaces the named
// field with all the addresses found. It returns an error and leaves the header
// unchanged if any of them fail to parse.
func (h *Header) SetAddresses(name string, lists ...string) error {
	var all addr.AddressList
	for _, l := range lists {
		al, err := addr.ParseEmailAddressList(l)
		if err != nil {
			return fmt.Errorf("unable to parse %s address %q: %w", name, l, err)
		}
		all = append(all, al...)
	}

	h.SetAddressList(name, all)
	return nil
}

// GetAddressList parses the named field as an address list.
func (h *Header) GetAddressList(name string) (addr.AddressList, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}
	return addr.ParseEmailAddressList(body)
}

// SetFrom sets the From field. See SetAddresses.
func (h *Header) SetFrom(lists ...string) error {
	return h.SetAddresses(From, lists...)
}

// SetTo sets the To field. See SetAddresses.
func (h *Header) SetTo(lists ...string) error {
	return h.SetAddresses(To, lists...)
}

// SetCc sets the Cc field. See SetAddresses.
func (h *Header) SetCc(lists ...string) error {
	return h.SetAddresses(Cc, lists...)
}

// ParseTime parses a date the way GetDate does. It will attempt to parse the
// date using the format specified by RFC 5322 first and fallback to parsing it
// in many other formats.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}

// SetDate sets the Date field, formatted as RFC 5322 requires.
func (h *Header) SetDate(t time.Time) {
	h.Set(Date, t.Format(time.RFC1123Z))
}

// GetDate parses the Date field. See ParseTime.
func (h *Header) GetDate() (time.Time, error) {
	body, err := h.Get(Date)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(body)
}

// SetMediaType sets the Content-type field from a media type and parameters.
// It returns an error if the media type or a parameter name is invalid.
func (h *Header) SetMediaType(mt string, params map[string]string) error {
	ct := mime.FormatMediaType(mt, params)
	if ct == "" {
		return fmt.Errorf("invalid media type %q", mt)
	}

	h.Set(ContentType, ct)
	return nil
}

// GetMediaType parses the Content-type field into a lower case media type and
// its parameters.
func (h *Header) GetMediaType() (string, map[string]string, error) {
	ct, err := h.Get(ContentType)
	if err != nil {
		return "", nil, err
	}
	return mime.ParseMediaType(ct)
}

// GetCharset returns the charset parameter of the Content-type field. It
// returns ErrNoSuchField if there is no charset.
func (h *Header) GetCharset() (string, error) {
	_, params, err := h.GetMediaType()
	if err != nil {
		return "", err
	}

	cs, found := params["charset"]
	if !found {
		return "", ErrNoSuchField
	}
	return cs, nil
}

// SetTransferEncoding sets the Content-transfer-encoding field.
func (h *Header) SetTransferEncoding(cte string) {
	h.Set(ContentTransferEncoding, cte)
}

// GetTransferEncoding returns the Content-transfer-encoding field.
func (h *Header) GetTransferEncoding() (string, error) {
	return h.Get(ContentTransferEncoding)
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if c := name[i]; c <= ' ' || c == ':' || c > '~' {
			return false
		}
	}
	return true
}

// WriteTo writes each field as "Name: body" followed by the line break, then a
// blank line to end the header. Long fields are folded. See Fold.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	lbr := h.Break().String()

	total := int64(0)
	for _, f := range h.fields {
		if !validName(f.Name) {
			return total, fmt.Errorf("%w: %q", ErrBadFieldName, f.Name)
		}

		for _, line := range Fold(f.Name+": "+f.Body, lbr) {
			n, err := io.WriteString(w, line+lbr)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}

	n, err := io.WriteString(w, lbr)
	total += int64(n)
	return total, err
}
