package lineup

import "context"

// DocumentSource fetches the raw lineup markup document.
type DocumentSource interface {
	FetchDocument(ctx context.Context) ([]byte, error)
}

// Parser turns the raw document into ordered match blocks. Parsing is total:
// anything it cannot read is reported through Document.Issues.
type Parser interface {
	Parse(document []byte) Document
}
