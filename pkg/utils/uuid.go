package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador local de linhas do espelho
func GenerateID() string {
	return gonanoid.MustGenerate(characters, 12)
}

// GenerateJobID gera o identificador de um job de despacho de chunks
func GenerateJobID() string {
	return "job_" + gonanoid.MustGenerate(characters, 8)
}
