package ports

import "ipxact-gen/internal/xmltree"

// DocumentSourcePort discovers metadata XML documents beneath search
// roots.
type DocumentSourcePort interface {
	FindMetadataXML(root string) ([]string, error)
}

// DocumentLoaderPort turns a file on disk into the generic labeled tree
// the parsers consume. The XML tokenizer itself is behind this port.
type DocumentLoaderPort interface {
	LoadDocument(path string) (*xmltree.Node, error)
}
