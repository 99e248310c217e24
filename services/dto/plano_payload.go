package dto

// Submission payload types. The frontend posts a nested
// "payload formatado" document; the sections below give it an explicit
// schema so required-section checks are carried by the types instead of
// ad hoc map lookups. Optional sections stay pointers: nil means absent.

// InformacoesContato is the proponent contact block (required).
type InformacoesContato struct {
	NomeProponente string  `json:"nome_proponente"`
	Cnpj           string  `json:"cnpj"`
	Municipio      string  `json:"municipio"`
	Telefone1      *string `json:"telefone_1,omitempty"`
	Telefone2      *string `json:"telefone_2,omitempty"`
	Email          *string `json:"email,omitempty"`
}

// Solicitacao carries the requested category/item values (required).
// Both are catalog value selectors, not ids.
type Solicitacao struct {
	Categoria string `json:"categoria"`
	Item      string `json:"item"`
}

// AgricultoresFamiliares answers whether the proponent serves family
// farmers. QuantidadeFamilias arrives as a string from the form.
type AgricultoresFamiliares struct {
	Possui             string `json:"possui"`
	QuantidadeFamilias string `json:"quantidade_familias,omitempty"`
}

// OrganizacaoComunidades describes community organization, keyed by the
// community-type catalog values.
type OrganizacaoComunidades struct {
	Organizados      string         `json:"organizados"`
	TiposComunidades []string       `json:"tipos_comunidades,omitempty"`
	Quantidades      map[string]int `json:"quantidades,omitempty"`
}

// DetalhesCadeiaValor is one value-chain entry.
type DetalhesCadeiaValor struct {
	Tipo     string   `json:"tipo"`
	Produto  string   `json:"produto,omitempty"`
	Mercados []string `json:"mercados,omitempty"`
}

// CadeiasValorPrincipais lists the proponent's main value chains.
type CadeiasValorPrincipais struct {
	Tipos    []string              `json:"tipos,omitempty"`
	Detalhes []DetalhesCadeiaValor `json:"detalhes,omitempty"`
}

// DetalhesProfissional is one professional entry.
type DetalhesProfissional struct {
	Tipo        string `json:"tipo"`
	Instituicao string `json:"instituicao"`
}

// Profissionais lists the proponent's technical staff.
type Profissionais struct {
	PossuiQuadro string                 `json:"possui_quadro,omitempty"`
	Tipos        []string               `json:"tipos,omitempty"`
	Detalhes     []DetalhesProfissional `json:"detalhes,omitempty"`
}

// DetalhesEquipamento is one equipment entry.
type DetalhesEquipamento struct {
	Tipo       string  `json:"tipo"`
	Nome       *string `json:"nome,omitempty"`
	Quantidade int     `json:"quantidade"`
}

// CapacidadeAtendimento lists the equipment backing the service capacity.
type CapacidadeAtendimento struct {
	Equipamentos []string              `json:"equipamentos,omitempty"`
	Detalhes     []DetalhesEquipamento `json:"detalhes,omitempty"`
}

// ResponsabilidadeDetalhada is a yes/no commitment with optional detail.
type ResponsabilidadeDetalhada struct {
	Resposta  string `json:"resposta"`
	Descricao string `json:"descricao,omitempty"`
}

// Compromissos holds the proponent's operational commitments.
type Compromissos struct {
	GestaoAdministrativaOperacional string                     `json:"gestao_administrativa_operacional,omitempty"`
	LocalArmazenamentoAdequado      string                     `json:"local_armazenamento_adequado,omitempty"`
	ResponsabilizaCustos            *ResponsabilidadeDetalhada `json:"responsabiliza_custos,omitempty"`
	MonitoramentoAtividades         *ResponsabilidadeDetalhada `json:"monitoramento_atividades,omitempty"`
	RelatorioAnual                  *ResponsabilidadeDetalhada `json:"relatorio_anual,omitempty"`
}

// LocalDataProposta is the proposal place and date block (required).
type LocalDataProposta struct {
	Local string `json:"local"`
	Data  string `json:"data"`
}

// Responsaveis names the technical responsible and the manager (required).
type Responsaveis struct {
	ResponsavelTecnico string `json:"responsavel_tecnico"`
	Gestor             string `json:"gestor"`
}

// PayloadFormatado is the canonical structured submission document. The
// four pointer sections without omitempty are required; everything else
// is optional and varies with the form type.
type PayloadFormatado struct {
	InformacoesContato *InformacoesContato `json:"informacoes_contato"`
	TipoFormulario     string              `json:"tipo_formulario"`
	Solicitacao        *Solicitacao        `json:"solicitacao"`
	LocalDataProposta  *LocalDataProposta  `json:"local_data_proposta"`
	Responsaveis       *Responsaveis       `json:"responsaveis"`

	AgricultoresFamiliares         *AgricultoresFamiliares `json:"agricultores_familiares,omitempty"`
	ImportanciaAgriculturaFamiliar string                  `json:"importancia_agricultura_familiar,omitempty"`
	OrganizacaoComunidades         *OrganizacaoComunidades `json:"organizacao_comunidades,omitempty"`
	CadeiasValorPrincipais         *CadeiasValorPrincipais `json:"cadeias_valor_principais,omitempty"`
	Profissionais                  *Profissionais          `json:"profissionais,omitempty"`
	CapacidadeAtendimento          *CapacidadeAtendimento  `json:"capacidade_atendimento,omitempty"`
	Compromissos                   *Compromissos           `json:"compromissos,omitempty"`
	PublicoAgriculturaFamiliar     string                  `json:"publico_agricultura_familiar,omitempty"`
	DeclaracaoVeracidade           bool                    `json:"declaracao_veracidade,omitempty"`
}
