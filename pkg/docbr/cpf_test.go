package docbr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oticavisao/otica-api/pkg/docbr"
)

// Vetores calculados manualmente pelo módulo 11 da Receita Federal.

func TestValidateCPF_Validos(t *testing.T) {
	for _, cpf := range []string{
		"529.982.247-25",
		"52998224725",
		"111.444.777-35",
	} {
		assert.NoError(t, docbr.ValidateCPF(cpf), "CPF %s deve ser válido", cpf)
	}
}

func TestValidateCPF_DigitoVerificadorErrado(t *testing.T) {
	assert.Error(t, docbr.ValidateCPF("529.982.247-26"), "segundo dígito trocado")
	assert.Error(t, docbr.ValidateCPF("529.982.247-35"), "primeiro dígito trocado")
}

func TestValidateCPF_TamanhoErrado(t *testing.T) {
	assert.Error(t, docbr.ValidateCPF("1234567890"))
	assert.Error(t, docbr.ValidateCPF(""))
	assert.Error(t, docbr.ValidateCPF("123.456.789-091"))
}

// Sequências de dígito repetido passam no módulo 11 mas são inválidas.
func TestValidateCPF_DigitosRepetidos(t *testing.T) {
	for _, cpf := range []string{"111.111.111-11", "00000000000", "99999999999"} {
		assert.Error(t, docbr.ValidateCPF(cpf), "CPF %s deve ser rejeitado", cpf)
	}
}

func TestNormalizeCPF(t *testing.T) {
	assert.Equal(t, "52998224725", docbr.NormalizeCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", docbr.NormalizeCPF("52998224725"))
}

func TestValidateCNPJ_Valido(t *testing.T) {
	assert.NoError(t, docbr.ValidateCNPJ("11.222.333/0001-81"))
	assert.NoError(t, docbr.ValidateCNPJ("11222333000181"))
}

func TestValidateCNPJ_Invalido(t *testing.T) {
	assert.Error(t, docbr.ValidateCNPJ("11.222.333/0001-82"), "dígito verificador errado")
	assert.Error(t, docbr.ValidateCNPJ("11.222.333/0001"), "curto demais")
	assert.Error(t, docbr.ValidateCNPJ("11111111111111"), "dígitos repetidos")
}
