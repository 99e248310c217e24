package dto

import "time"

// ProfissionalData is the flattened professional entry handed to the
// repository.
type ProfissionalData struct {
	Tipo        string
	Instituicao string
}

// CadeiaValorData is the flattened value-chain entry.
type CadeiaValorData struct {
	Tipo     string
	Produto  string
	Mercados []string
}

// EquipamentoData is the flattened equipment entry.
type EquipamentoData struct {
	Tipo       string
	Nome       *string
	Quantidade int
}

// ExtractedPlanoData is the normalized projection of a submission payload.
// Pointer fields are absent when the payload did not carry a usable value.
type ExtractedPlanoData struct {
	FormType    string
	FormVersion string
	Status      string

	NomeProponente string
	Cnpj           string
	Municipio      string
	Telefone1      *string
	Telefone2      *string
	Email          *string

	// Catalog value selectors, resolved to foreign keys by the repository.
	CategoriaValue string
	ItemValue      string

	PossuiAgricultores   bool
	QuantidadeFamilias   *int
	PublicoAgricultura   bool
	DeclaracaoVeracidade bool

	DataPropostaSubmissao *time.Time
	LocalProposta         *string
	ResponsavelTecnico    *string
	GestorNome            *string

	Profissionais []ProfissionalData
	CadeiasValor  []CadeiaValorData
	Equipamentos  []EquipamentoData
}

// PlanoFilters are the list/stats query predicates. Municipio matches as a
// case-insensitive substring; the rest are exact or range matches.
type PlanoFilters struct {
	Municipio   string
	CategoriaID *uint
	FormType    string
	Status      string
	Cnpj        string
	DataInicio  *time.Time
	DataFim     *time.Time
	Page        int
	Limit       int
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// CatalogRef is the category/item summary embedded in list projections.
type CatalogRef struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FormCatalog is the catalog bundle consumed by the form frontend.
type FormCatalog struct {
	CategoryOptions []CatalogRef            `json:"categoryOptions"`
	ItemsMap        map[string][]CatalogRef `json:"itemsMap"`
}

// PlanoResumo is the light list projection: summary columns plus the
// resolved category/item labels.
type PlanoResumo struct {
	ID             string      `json:"id"`
	NomeProponente string      `json:"nomeProponente"`
	Cnpj           string      `json:"cnpj"`
	Municipio      string      `json:"municipio"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
	Categoria      *CatalogRef `json:"categoria,omitempty"`
	Item           *CatalogRef `json:"item,omitempty"`
}

// PaginatedPlanos wraps a full-projection page.
type PaginatedPlanos[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// MunicipioStat is one row of the per-municipality grouping.
type MunicipioStat struct {
	Municipio string `json:"municipio"`
	Count     int64  `json:"count"`
	Familias  int64  `json:"familias"`
}

// CategoriaStat is one row of the per-category grouping.
type CategoriaStat struct {
	CategoriaID uint   `json:"categoriaId"`
	Categoria   string `json:"categoria"`
	Count       int64  `json:"count"`
}

// StatusStat is one row of the per-status grouping.
type StatusStat struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// PlanoStats is the aggregate statistics view.
type PlanoStats struct {
	TotalPlanos   int64           `json:"totalPlanos"`
	TotalFamilias int64           `json:"totalFamilias"`
	PorMunicipio  []MunicipioStat `json:"porMunicipio"`
	PorCategoria  []CategoriaStat `json:"porCategoria"`
	PorStatus     []StatusStat    `json:"porStatus"`
}
