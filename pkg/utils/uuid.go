package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	documentIDLength = 20
)

// GenerateDocumentID gera ids no mesmo formato dos documentos já existentes (20 caracteres alfanuméricos).
func GenerateDocumentID() (string, error) {
	return gonanoid.Generate(characters, documentIDLength)
}
