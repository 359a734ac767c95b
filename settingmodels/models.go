/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settingmodels

import (
	"github.com/go-openapi/strfmt"
)

// Header carries the metadata stored alongside a setting asset's records.
type Header struct {
	// Name is the asset's display name, e.g. "ColorSetting".
	Name string `json:"name,omitempty" yaml:"name,omitempty" dynamodbav:"Name,omitempty"`
	// UpdatedAt is when the asset was last written.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty" dynamodbav:"-"`
}

// Document is the decoded form of a setting asset: a header and the ordered
// record list. Records may contain nil entries for empty slots.
type Document[R any] struct {
	Header  `yaml:",inline" dynamodbav:"-"`
	Records []*R `json:"records" yaml:"records" dynamodbav:"Records"`
}

// DocumentHeader returns the document's header.
func (d *Document[R]) DocumentHeader() Header {
	return d.Header
}

// SetHeader replaces the document's header. Stores that keep the header
// apart from the records use it after decoding the record list.
func (d *Document[R]) SetHeader(h Header) {
	d.Header = h
}

// HeaderAccessor is implemented by every Document instantiation, letting
// stores read and write headers without knowing the record type.
type HeaderAccessor interface {
	DocumentHeader() Header
	SetHeader(Header)
}
