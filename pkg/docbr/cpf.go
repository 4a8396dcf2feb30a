// Package docbr valida documentos brasileiros (CPF e CNPJ) pelos dígitos
// verificadores módulo 11 da Receita Federal.
package docbr

import (
	"fmt"
	"unicode"
)

// ValidateCPF valida um CPF com ou sem pontuação ("123.456.789-09" ou
// "12345678909"). Exige 11 dígitos, rejeita sequências de dígito repetido
// (111.111.111-11 passa no módulo 11 mas é inválido) e confere os dois
// dígitos verificadores.
func ValidateCPF(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("docbr: CPF deve ter 11 dígitos, recebidos %d", len(digits))
	}
	if allSame(digits) {
		return fmt.Errorf("docbr: CPF com todos os dígitos iguais é inválido")
	}
	// Primeiro dígito: pesos 10..2 sobre os 9 primeiros.
	d1 := cpfCheckDigit(digits[:9], 10)
	if digits[9] != d1 {
		return fmt.Errorf("docbr: primeiro dígito verificador do CPF inválido: esperado %c, recebido %c", d1, digits[9])
	}
	// Segundo dígito: pesos 11..2 sobre os 10 primeiros.
	d2 := cpfCheckDigit(digits[:10], 11)
	if digits[10] != d2 {
		return fmt.Errorf("docbr: segundo dígito verificador do CPF inválido: esperado %c, recebido %c", d2, digits[10])
	}
	return nil
}

// NormalizeCPF remove a pontuação e devolve só os 11 dígitos.
// Não valida; use ValidateCPF antes de persistir.
func NormalizeCPF(cpf string) string {
	return string(extractDigits(cpf))
}

func cpfCheckDigit(base []byte, startWeight int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * (startWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + (11 - rest))
}

// pesos do CNPJ, aplicados da esquerda para a direita.
var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCNPJ valida um CNPJ com ou sem pontuação ("12.345.678/0001-95").
func ValidateCNPJ(cnpj string) error {
	digits := extractDigits(cnpj)
	if len(digits) != 14 {
		return fmt.Errorf("docbr: CNPJ deve ter 14 dígitos, recebidos %d", len(digits))
	}
	if allSame(digits) {
		return fmt.Errorf("docbr: CNPJ com todos os dígitos iguais é inválido")
	}
	d1 := cnpjCheckDigit(digits[:12], cnpjWeights1[:])
	if digits[12] != d1 {
		return fmt.Errorf("docbr: primeiro dígito verificador do CNPJ inválido: esperado %c, recebido %c", d1, digits[12])
	}
	d2 := cnpjCheckDigit(digits[:13], cnpjWeights2[:])
	if digits[13] != d2 {
		return fmt.Errorf("docbr: segundo dígito verificador do CNPJ inválido: esperado %c, recebido %c", d2, digits[13])
	}
	return nil
}

func cnpjCheckDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + (11 - rest))
}

func allSame(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
