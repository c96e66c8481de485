package domain

import (
	"bytes"
	"fmt"

	m "ctxport.dev/pkg/ctxport/internal/model"
)

// StripMetadata removes a metadata block from the start of content: everything
// from the first byte through the end of the line holding the end marker.
// Content that does not begin with the start marker is returned unchanged.
func StripMetadata(content []byte) ([]byte, bool, error) {
	if !bytes.HasPrefix(content, []byte(m.MetadataStartMarker)) {
		return content, false, nil
	}

	end := bytes.Index(content, []byte(m.MetadataEndMarker))
	if end < 0 {
		return nil, false, fmt.Errorf("%w: no %s", m.ErrMalformedMetadata, m.MetadataEndMarker)
	}

	newline := bytes.IndexByte(content[end:], '\n')
	if newline < 0 {
		return []byte{}, true, nil
	}

	return content[end+newline+1:], true, nil
}
