package services

import (
	"testing"
	"time"

	"planousoapi/pkg/apperr"
	"planousoapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPayload() *dto.PayloadFormatado {
	email := "contato@coopnorte.org.br"
	nome := "Resfriador usado"
	return &dto.PayloadFormatado{
		TipoFormulario: "Padrão",
		InformacoesContato: &dto.InformacoesContato{
			NomeProponente: "Cooperativa Norte",
			Cnpj:           "12.345.678/0001-95",
			Municipio:      "Sinop",
			Email:          &email,
		},
		Solicitacao: &dto.Solicitacao{
			Categoria: "leite",
			Item:      "ordenhadeira",
		},
		AgricultoresFamiliares: &dto.AgricultoresFamiliares{
			Possui:             "Sim",
			QuantidadeFamilias: "42",
		},
		PublicoAgriculturaFamiliar: "Sim",
		DeclaracaoVeracidade:       true,
		Profissionais: &dto.Profissionais{
			Detalhes: []dto.DetalhesProfissional{
				{Tipo: "veterinario", Instituicao: "UFMT"},
			},
		},
		CadeiasValorPrincipais: &dto.CadeiasValorPrincipais{
			Detalhes: []dto.DetalhesCadeiaValor{
				{Tipo: "leite", Produto: "queijo", Mercados: []string{"feira", "merenda"}},
			},
		},
		CapacidadeAtendimento: &dto.CapacidadeAtendimento{
			Detalhes: []dto.DetalhesEquipamento{
				{Tipo: "resfriador", Nome: &nome, Quantidade: 2},
			},
		},
		LocalDataProposta: &dto.LocalDataProposta{
			Local: "Sinop",
			Data:  "2025-03-10",
		},
		Responsaveis: &dto.Responsaveis{
			ResponsavelTecnico: "Eng. Silva",
			Gestor:             "Maria Souza",
		},
	}
}

func TestExtractPlanoDataNormalizesFields(t *testing.T) {
	extracted, err := ExtractPlanoData(fullPayload())
	require.NoError(t, err)

	assert.Equal(t, "default", extracted.FormType)
	assert.Equal(t, "2.0", extracted.FormVersion)
	assert.Equal(t, "EM_ANALISE", extracted.Status)
	assert.Equal(t, "12345678000195", extracted.Cnpj, "CNPJ must be stored digits-only")
	assert.Equal(t, "Cooperativa Norte", extracted.NomeProponente)
	assert.Equal(t, "leite", extracted.CategoriaValue)
	assert.Equal(t, "ordenhadeira", extracted.ItemValue)

	assert.True(t, extracted.PossuiAgricultores)
	require.NotNil(t, extracted.QuantidadeFamilias)
	assert.Equal(t, 42, *extracted.QuantidadeFamilias)
	assert.True(t, extracted.PublicoAgricultura)
	assert.True(t, extracted.DeclaracaoVeracidade)

	require.NotNil(t, extracted.DataPropostaSubmissao)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *extracted.DataPropostaSubmissao)

	require.Len(t, extracted.Profissionais, 1)
	assert.Equal(t, "veterinario", extracted.Profissionais[0].Tipo)
	require.Len(t, extracted.CadeiasValor, 1)
	assert.Equal(t, []string{"feira", "merenda"}, extracted.CadeiasValor[0].Mercados)
	require.Len(t, extracted.Equipamentos, 1)
	assert.Equal(t, 2, extracted.Equipamentos[0].Quantidade)
}

func TestExtractPlanoDataFormTypeMapping(t *testing.T) {
	cases := []struct {
		label    string
		expected string
	}{
		{"Padrão", "default"},
		{"Calcário", "calcario"},
		{"Mudas", "mudas"},
		{"Formulário Novo", "default"},
		{"", "default"},
	}
	for _, tc := range cases {
		payload := fullPayload()
		payload.TipoFormulario = tc.label
		extracted, err := ExtractPlanoData(payload)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, extracted.FormType, "label %q", tc.label)
	}
}

func TestExtractPlanoDataMissingRequiredSections(t *testing.T) {
	payload := fullPayload()
	payload.Solicitacao = nil
	payload.Responsaveis = nil

	_, err := ExtractPlanoData(payload)
	require.Error(t, err)

	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Details, 2)
	assert.Equal(t, "payloadFormatado.solicitacao", validationErr.Details[0].Field)
	assert.Equal(t, "payloadFormatado.responsaveis", validationErr.Details[1].Field)
}

func TestExtractPlanoDataNilPayload(t *testing.T) {
	_, err := ExtractPlanoData(nil)
	var validationErr *apperr.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestExtractPlanoDataDropsUnusableOptionals(t *testing.T) {
	payload := fullPayload()
	payload.AgricultoresFamiliares.QuantidadeFamilias = "quarenta"
	payload.LocalDataProposta.Data = "10-03-2025 meio dia"
	payload.PublicoAgriculturaFamiliar = "Não"

	extracted, err := ExtractPlanoData(payload)
	require.NoError(t, err)

	assert.Nil(t, extracted.QuantidadeFamilias, "unparseable family count is dropped")
	assert.Nil(t, extracted.DataPropostaSubmissao, "unparseable date is dropped")
	assert.False(t, extracted.PublicoAgricultura)
}

func TestExtractPlanoDataAcceptsBrazilianDate(t *testing.T) {
	payload := fullPayload()
	payload.LocalDataProposta.Data = "25/12/2024"

	extracted, err := ExtractPlanoData(payload)
	require.NoError(t, err)
	require.NotNil(t, extracted.DataPropostaSubmissao)
	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), *extracted.DataPropostaSubmissao)
}

func TestExtractPlanoDataIsDeterministic(t *testing.T) {
	payload := fullPayload()
	first, err := ExtractPlanoData(payload)
	require.NoError(t, err)
	second, err := ExtractPlanoData(payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractPlanoDataAbsentOptionalSections(t *testing.T) {
	payload := fullPayload()
	payload.AgricultoresFamiliares = nil
	payload.Profissionais = nil
	payload.CadeiasValorPrincipais = nil
	payload.CapacidadeAtendimento = nil

	extracted, err := ExtractPlanoData(payload)
	require.NoError(t, err)

	assert.False(t, extracted.PossuiAgricultores)
	assert.Nil(t, extracted.QuantidadeFamilias)
	assert.Empty(t, extracted.Profissionais)
	assert.Empty(t, extracted.CadeiasValor)
	assert.Empty(t, extracted.Equipamentos)
	assert.NotNil(t, extracted.Profissionais, "child slices stay non-nil for persistence")
}

func TestLegacyExtractedDataPlaceholders(t *testing.T) {
	extracted := legacyExtractedData("1.0")

	assert.Equal(t, "default", extracted.FormType)
	assert.Equal(t, "1.0", extracted.FormVersion)
	assert.Equal(t, "EM_ANALISE", extracted.Status)
	assert.Equal(t, "Não especificado", extracted.NomeProponente)
	assert.Equal(t, "00000000000000", extracted.Cnpj)
	assert.Equal(t, "Não especificado", extracted.Municipio)
	assert.True(t, extracted.PublicoAgricultura)
	assert.False(t, extracted.DeclaracaoVeracidade)
	assert.Empty(t, extracted.Profissionais)
	assert.Empty(t, extracted.CadeiasValor)
	assert.Empty(t, extracted.Equipamentos)
}
