package pdf

import "tailormade/backend/internal/domain/document"

type Generator interface {
	Generate(d document.Document) ([]byte, error)
}
