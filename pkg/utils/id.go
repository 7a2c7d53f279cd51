package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para logs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateSessionID gera o identificador de uma sessão de navegação
func GenerateSessionID() (string, error) {
	return gonanoid.Generate(characters, 16)
}
