// Package archive reads and writes named serializable objects in one
// of the object-family encodings (JSON, XML, gob). Each archive holds
// one object stored under a caller-chosen name; the load side must ask
// for the same name it was saved under.
package archive

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/gfengTT/mlpack/internal/format"
)

// ErrNameMismatch means the archive holds no object under the
// requested name.
var ErrNameMismatch = errors.New("no object with the requested name in archive")

// Encoder writes one named object to a stream.
type Encoder struct {
	w io.Writer
	f format.Format
}

// NewEncoder creates an encoder for the given resolved encoding.
func NewEncoder(w io.Writer, f format.Format) *Encoder {
	return &Encoder{w: w, f: f}
}

// Encode writes obj under the given name.
func (e *Encoder) Encode(name string, obj any) error {
	switch e.f {
	case format.FormatJSON:
		return encodeJSON(e.w, name, obj)
	case format.FormatXML:
		return encodeXML(e.w, name, obj)
	case format.FormatBIN:
		return encodeGob(e.w, name, obj)
	default:
		return fmt.Errorf("no object encoder for %s", e.f)
	}
}

// Decoder reads one named object from a stream.
type Decoder struct {
	r io.Reader
	f format.Format
}

// NewDecoder creates a decoder for the given resolved encoding.
func NewDecoder(r io.Reader, f format.Format) *Decoder {
	return &Decoder{r: r, f: f}
}

// Decode reads the object stored under the given name into obj, which
// must be a pointer.
func (d *Decoder) Decode(name string, obj any) error {
	switch d.f {
	case format.FormatJSON:
		return decodeJSON(d.r, name, obj)
	case format.FormatXML:
		return decodeXML(d.r, name, obj)
	case format.FormatBIN:
		return decodeGob(d.r, name, obj)
	default:
		return fmt.Errorf("no object decoder for %s", d.f)
	}
}

func encodeJSON(w io.Writer, name string, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string]any{name: obj}); err != nil {
		return fmt.Errorf("failed to encode JSON object: %w", err)
	}
	return nil
}

func decodeJSON(r io.Reader, name string, obj any) error {
	var entries map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("failed to decode JSON archive: %w", err)
	}
	raw, ok := entries[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNameMismatch, name)
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return fmt.Errorf("failed to decode JSON object %q: %w", name, err)
	}
	return nil
}

func encodeXML(w io.Writer, name string, obj any) error {
	if _, err := io.WriteString(w, `<archive><entry name="`); err != nil {
		return fmt.Errorf("failed to write XML envelope: %w", err)
	}
	var escaped bytes.Buffer
	if err := xml.EscapeText(&escaped, []byte(name)); err != nil {
		return fmt.Errorf("failed to escape object name: %w", err)
	}
	if _, err := w.Write(escaped.Bytes()); err != nil {
		return fmt.Errorf("failed to write XML envelope: %w", err)
	}
	if _, err := io.WriteString(w, `">`); err != nil {
		return fmt.Errorf("failed to write XML envelope: %w", err)
	}
	if err := xml.NewEncoder(w).Encode(obj); err != nil {
		return fmt.Errorf("failed to encode XML object: %w", err)
	}
	if _, err := io.WriteString(w, "</entry></archive>\n"); err != nil {
		return fmt.Errorf("failed to write XML envelope: %w", err)
	}
	return nil
}

func decodeXML(r io.Reader, name string, obj any) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return fmt.Errorf("%w: %q", ErrNameMismatch, name)
		}
		if err != nil {
			return fmt.Errorf("failed to decode XML archive: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "entry" {
			continue
		}

		var entryName string
		for _, a := range se.Attr {
			if a.Name.Local == "name" {
				entryName = a.Value
			}
		}
		if entryName != name {
			if err := dec.Skip(); err != nil {
				return fmt.Errorf("failed to decode XML archive: %w", err)
			}
			continue
		}

		// The object is the first child element of the entry.
		for {
			tok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("failed to decode XML object %q: %w", name, err)
			}
			if inner, ok := tok.(xml.StartElement); ok {
				if err := dec.DecodeElement(obj, &inner); err != nil {
					return fmt.Errorf("failed to decode XML object %q: %w", name, err)
				}
				return nil
			}
			if _, ok := tok.(xml.EndElement); ok {
				return fmt.Errorf("failed to decode XML object %q: entry is empty", name)
			}
		}
	}
}

func encodeGob(w io.Writer, name string, obj any) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(name); err != nil {
		return fmt.Errorf("failed to encode object name: %w", err)
	}
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("failed to encode binary object: %w", err)
	}
	return nil
}

func decodeGob(r io.Reader, name string, obj any) error {
	dec := gob.NewDecoder(r)
	var stored string
	if err := dec.Decode(&stored); err != nil {
		return fmt.Errorf("failed to decode binary archive: %w", err)
	}
	if stored != name {
		return fmt.Errorf("%w: %q (archive holds %q)", ErrNameMismatch, name, stored)
	}
	if err := dec.Decode(obj); err != nil {
		return fmt.Errorf("failed to decode binary object %q: %w", name, err)
	}
	return nil
}
