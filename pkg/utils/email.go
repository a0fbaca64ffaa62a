package utils

import "strings"

// NormalizeEmail coloca o email em minúsculas e remove todos os espaços.
// Toda comparação e persistência de email passa por aqui, para que o
// endereço gravado no cadastro seja o mesmo consultado no login e na
// recuperação de senha.
func NormalizeEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
