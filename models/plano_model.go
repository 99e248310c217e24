package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan lifecycle statuses. EM_ANALISE plans are editable; APROVADO and
// NEGADO are terminal and block the edit path.
const (
	StatusEmAnalise = "EM_ANALISE"
	StatusAprovado  = "APROVADO"
	StatusNegado    = "NEGADO"
)

// FormPlano is an equipment-usage plan application. The normalized columns
// are a lossy projection of PayloadFormatado, which stays the source of
// truth: re-running extraction over the stored payload must yield the same
// normalized values.
type FormPlano struct {
	ID string `gorm:"primaryKey;column:id;size:36" json:"id"`

	// Metadata
	FormType    string `gorm:"column:form_type;size:50;not null;default:default" json:"formType"`
	FormVersion string `gorm:"column:form_version;size:20;not null" json:"formVersion"`
	Status      string `gorm:"column:status;size:20;not null;default:EM_ANALISE;index" json:"status"`

	// Contact
	NomeProponente string  `gorm:"column:nome_proponente;size:255;not null" json:"nomeProponente"`
	Cnpj           string  `gorm:"column:cnpj;size:14;not null;index" json:"cnpj"`
	Municipio      string  `gorm:"column:municipio;size:255;not null;index" json:"municipio"`
	Telefone1      *string `gorm:"column:telefone1;size:20" json:"telefone1,omitempty"`
	Telefone2      *string `gorm:"column:telefone2;size:20" json:"telefone2,omitempty"`
	Email          *string `gorm:"column:email;size:255" json:"email,omitempty"`

	// Solicitation, resolved from the submitted category/item values.
	// Resolution can fail and leave these null.
	CategoriaID *uint     `gorm:"column:categoria_id;index" json:"categoriaId,omitempty"`
	ItemID      *uint     `gorm:"column:item_id" json:"itemId,omitempty"`
	Categoria   *Category `gorm:"foreignKey:CategoriaID" json:"categoria,omitempty"`
	Item        *Item     `gorm:"foreignKey:ItemID" json:"item,omitempty"`

	// Flags
	PossuiAgricultores   bool `gorm:"column:possui_agricultores;not null;default:false" json:"possuiAgricultores"`
	QuantidadeFamilias   *int `gorm:"column:quantidade_familias" json:"quantidadeFamilias,omitempty"`
	PublicoAgricultura   bool `gorm:"column:publico_agricultura;not null;default:false" json:"publicoAgricultura"`
	DeclaracaoVeracidade bool `gorm:"column:declaracao_veracidade;not null;default:false" json:"declaracaoVeracidade"`

	// Proposal place/date and responsible parties
	DataPropostaSubmissao *time.Time `gorm:"column:data_proposta_submissao" json:"dataPropostaSubmissao,omitempty"`
	LocalProposta         *string    `gorm:"column:local_proposta;size:255" json:"localProposta,omitempty"`
	ResponsavelTecnico    *string    `gorm:"column:responsavel_tecnico;size:255" json:"responsavelTecnico,omitempty"`
	GestorNome            *string    `gorm:"column:gestor_nome;size:255" json:"gestorNome,omitempty"`

	// Full JSON snapshots. PayloadFormatado is the canonical submission,
	// PayloadOriginal the raw client working state for round-trip editing.
	PayloadFormatado datatypes.JSON `gorm:"column:payload_formatado;type:json;not null" json:"payloadFormatado"`
	PayloadOriginal  datatypes.JSON `gorm:"column:payload_original;type:json" json:"payloadOriginal,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	// Child collections, replaced wholesale on every update.
	Profissionais []Profissional `gorm:"foreignKey:PlanoID" json:"profissionais,omitempty"`
	CadeiasValor  []CadeiaValor  `gorm:"foreignKey:PlanoID" json:"cadeiasValor,omitempty"`
	Equipamentos  []Equipamento  `gorm:"foreignKey:PlanoID" json:"equipamentos,omitempty"`
}

// TableName overrides GORM's default pluralization.
func (FormPlano) TableName() string {
	return "form_planos"
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (p *FormPlano) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Profissional is a technical professional declared in a plan submission.
type Profissional struct {
	ID          uint   `gorm:"primaryKey;column:id" json:"id"`
	PlanoID     string `gorm:"column:plano_id;size:36;not null;index" json:"planoId"`
	Tipo        string `gorm:"column:tipo;size:100;not null" json:"tipo"`
	Instituicao string `gorm:"column:instituicao;size:255;not null" json:"instituicao"`
}

// TableName overrides GORM's default pluralization.
func (Profissional) TableName() string {
	return "profissionais"
}

// CadeiaValor is a value chain the proponent operates in. Mercados holds
// the target market list as a JSON array.
type CadeiaValor struct {
	ID       uint           `gorm:"primaryKey;column:id" json:"id"`
	PlanoID  string         `gorm:"column:plano_id;size:36;not null;index" json:"planoId"`
	Tipo     string         `gorm:"column:tipo;size:100;not null" json:"tipo"`
	Produto  string         `gorm:"column:produto;size:255" json:"produto"`
	Mercados datatypes.JSON `gorm:"column:mercados;type:json" json:"mercados,omitempty"`
}

// TableName overrides GORM's default pluralization.
func (CadeiaValor) TableName() string {
	return "cadeias_valor"
}

// Equipamento is an equipment entry from the service-capacity section.
type Equipamento struct {
	ID         uint    `gorm:"primaryKey;column:id" json:"id"`
	PlanoID    string  `gorm:"column:plano_id;size:36;not null;index" json:"planoId"`
	Tipo       string  `gorm:"column:tipo;size:100;not null" json:"tipo"`
	Nome       *string `gorm:"column:nome;size:255" json:"nome,omitempty"`
	Quantidade int     `gorm:"column:quantidade;not null;default:0" json:"quantidade"`
}

// TableName overrides GORM's default pluralization.
func (Equipamento) TableName() string {
	return "equipamentos"
}
