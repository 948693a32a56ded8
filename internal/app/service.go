package app

import (
	"ipxact-gen/internal/adapters"
	"ipxact-gen/internal/ports"
)

type Service struct {
	Workspace ports.DocumentSourcePort
	Documents ports.DocumentLoaderPort
}

func NewService() Service {
	return Service{
		Workspace: adapters.NewWorkspaceAdapter(),
		Documents: adapters.NewXMLDocumentAdapter(),
	}
}
