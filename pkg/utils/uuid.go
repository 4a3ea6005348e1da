package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	runIDLength = 10
)

// GenerateID gera um ID curto e legível, usado para identificar execuções ETL nos logs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
