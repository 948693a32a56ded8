package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ipxact-gen/internal/ports"
	"ipxact-gen/internal/xmltree"
)

// XMLDocumentAdapter loads files into the generic labeled tree consumed
// by the metadata parsers.
type XMLDocumentAdapter struct{}

func NewXMLDocumentAdapter() XMLDocumentAdapter {
	return XMLDocumentAdapter{}
}

func (a XMLDocumentAdapter) LoadDocument(path string) (*xmltree.Node, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open document").
			WithCause(err)
	}
	defer file.Close()
	return xmltree.Decode(file)
}

var _ ports.DocumentLoaderPort = XMLDocumentAdapter{}
