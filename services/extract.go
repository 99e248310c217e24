package services

import (
	"strconv"
	"strings"
	"time"

	"planousoapi/models"
	"planousoapi/pkg/apperr"
	"planousoapi/services/dto"
)

// formTypeLabels maps the human-facing form-type label to the internal
// key. Unrecognized labels fall back to "default"; that is documented
// behavior, not an error.
var formTypeLabels = map[string]string{
	"Padrão":   "default",
	"Calcário": "calcario",
	"Mudas":    "mudas",
}

// hybridFormVersion tags submissions that arrived in the current
// normalized+JSON shape.
const hybridFormVersion = "2.0"

// proposal dates arrive either ISO or in the Brazilian day-first format.
var proposalDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02/01/2006",
}

// requiredSectionErrors reports which required payload sections are
// missing. An empty result means the payload is structurally usable.
func requiredSectionErrors(p *dto.PayloadFormatado) []apperr.FieldDetail {
	if p == nil {
		return []apperr.FieldDetail{{Field: "payloadFormatado", Message: "obrigatório"}}
	}
	var details []apperr.FieldDetail
	if p.InformacoesContato == nil {
		details = append(details, apperr.FieldDetail{Field: "payloadFormatado.informacoes_contato", Message: "seção obrigatória ausente"})
	}
	if p.Solicitacao == nil {
		details = append(details, apperr.FieldDetail{Field: "payloadFormatado.solicitacao", Message: "seção obrigatória ausente"})
	}
	if p.LocalDataProposta == nil {
		details = append(details, apperr.FieldDetail{Field: "payloadFormatado.local_data_proposta", Message: "seção obrigatória ausente"})
	}
	if p.Responsaveis == nil {
		details = append(details, apperr.FieldDetail{Field: "payloadFormatado.responsaveis", Message: "seção obrigatória ausente"})
	}
	return details
}

// ExtractPlanoData projects a formatted submission into the normalized
// plan fields and the three child collections. It performs no I/O and is
// deterministic: the same payload always yields the same output. The only
// failure mode is a missing required section.
func ExtractPlanoData(payload *dto.PayloadFormatado) (*dto.ExtractedPlanoData, error) {
	if details := requiredSectionErrors(payload); len(details) > 0 {
		return nil, &apperr.ValidationError{Details: details}
	}

	contato := payload.InformacoesContato
	solicitacao := payload.Solicitacao
	localData := payload.LocalDataProposta
	responsaveis := payload.Responsaveis

	formType, ok := formTypeLabels[payload.TipoFormulario]
	if !ok {
		formType = "default"
	}

	extracted := &dto.ExtractedPlanoData{
		FormType:    formType,
		FormVersion: hybridFormVersion,
		Status:      models.StatusEmAnalise,

		NomeProponente: contato.NomeProponente,
		Cnpj:           digitsOnly(contato.Cnpj),
		Municipio:      contato.Municipio,
		Telefone1:      contato.Telefone1,
		Telefone2:      contato.Telefone2,
		Email:          contato.Email,

		CategoriaValue: solicitacao.Categoria,
		ItemValue:      solicitacao.Item,

		PublicoAgricultura:   payload.PublicoAgriculturaFamiliar == "Sim",
		DeclaracaoVeracidade: payload.DeclaracaoVeracidade,

		LocalProposta:      optionalString(localData.Local),
		ResponsavelTecnico: optionalString(responsaveis.ResponsavelTecnico),
		GestorNome:         optionalString(responsaveis.Gestor),

		Profissionais: []dto.ProfissionalData{},
		CadeiasValor:  []dto.CadeiaValorData{},
		Equipamentos:  []dto.EquipamentoData{},
	}

	if agricultores := payload.AgricultoresFamiliares; agricultores != nil {
		extracted.PossuiAgricultores = agricultores.Possui == "Sim"
		if n, err := strconv.Atoi(strings.TrimSpace(agricultores.QuantidadeFamilias)); err == nil {
			extracted.QuantidadeFamilias = &n
		}
	}

	// Unparseable dates are dropped, not rejected
	if localData.Data != "" {
		if parsed, ok := parseProposalDate(localData.Data); ok {
			extracted.DataPropostaSubmissao = &parsed
		}
	}

	if payload.Profissionais != nil {
		for _, p := range payload.Profissionais.Detalhes {
			extracted.Profissionais = append(extracted.Profissionais, dto.ProfissionalData{
				Tipo:        p.Tipo,
				Instituicao: p.Instituicao,
			})
		}
	}

	if payload.CadeiasValorPrincipais != nil {
		for _, cv := range payload.CadeiasValorPrincipais.Detalhes {
			mercados := cv.Mercados
			if mercados == nil {
				mercados = []string{}
			}
			extracted.CadeiasValor = append(extracted.CadeiasValor, dto.CadeiaValorData{
				Tipo:     cv.Tipo,
				Produto:  cv.Produto,
				Mercados: mercados,
			})
		}
	}

	if payload.CapacidadeAtendimento != nil {
		for _, eq := range payload.CapacidadeAtendimento.Detalhes {
			extracted.Equipamentos = append(extracted.Equipamentos, dto.EquipamentoData{
				Tipo:       eq.Tipo,
				Nome:       eq.Nome,
				Quantidade: eq.Quantidade,
			})
		}
	}

	return extracted, nil
}

// legacyExtractedData builds the fixed normalized placeholder used when a
// submission arrives in the legacy {formVersion, answers} shape.
func legacyExtractedData(formVersion string) *dto.ExtractedPlanoData {
	return &dto.ExtractedPlanoData{
		FormType:    "default",
		FormVersion: formVersion,
		Status:      models.StatusEmAnalise,

		NomeProponente: "Não especificado",
		Cnpj:           "00000000000000",
		Municipio:      "Não especificado",

		PossuiAgricultores:   false,
		PublicoAgricultura:   true,
		DeclaracaoVeracidade: false,

		Profissionais: []dto.ProfissionalData{},
		CadeiasValor:  []dto.CadeiaValorData{},
		Equipamentos:  []dto.EquipamentoData{},
	}
}

// digitsOnly strips every non-digit rune. CNPJ formatting is removed on
// intake; digit-check validation is not performed here.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func parseProposalDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range proposalDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
