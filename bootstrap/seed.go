package bootstrap

import (
	"planousoapi/models"
	"planousoapi/pkg/logger"
	"planousoapi/repository"

	"gorm.io/gorm"
)

type seedItem struct {
	Value string
	Label string
	Order int
}

type seedCategory struct {
	Value    string
	Label    string
	FormType string
	Order    int
	Items    []seedItem
}

// The production catalog. Values are the stable keys plans reference;
// labels and ordering can change between releases, which is why seeding
// upserts instead of inserting.
var catalogCategories = []seedCategory{
	{
		Value: "agroindustria", Label: "Agroindústrias", FormType: "default", Order: 1,
		Items: []seedItem{
			{Value: "despolpadeira", Label: "Despolpadeira de fruta industrial", Order: 1},
			{Value: "envasadora", Label: "Envasadora embaladora automática", Order: 2},
			{Value: "farinheira", Label: "Farinheira móvel", Order: 3},
		},
	},
	{
		Value: "leite", Label: "Equipamentos Leite", FormType: "default", Order: 2,
		Items: []seedItem{
			{Value: "ordenhadeira", Label: "Ordenhadeira mecânica", Order: 1},
			{Value: "resfriador1000", Label: "Resfriador 1000L", Order: 2},
			{Value: "resfriador500", Label: "Resfriador 500L", Order: 3},
			{Value: "vertical10000", Label: "Resfriador vertical 10.000L", Order: 4},
			{Value: "vertical20000", Label: "Resfriador vertical 20.000L", Order: 5},
			{Value: "silo40000", Label: "Silo vertical 40.000L", Order: 6},
		},
	},
	{
		Value: "transporte", Label: "Transporte Leite", FormType: "default", Order: 3,
		Items: []seedItem{
			{Value: "caminhao", Label: "Caminhão tanque toco isotérmico", Order: 1},
		},
	},
	{
		Value: "calcario", Label: "Insumos/Calcário", FormType: "calcario", Order: 4,
		Items: []seedItem{
			{Value: "dolomitico", Label: "Calcário dolomítico", Order: 1},
		},
	},
	{
		Value: "apicultura", Label: "Insumos/Apicultura", FormType: "default", Order: 5,
		Items: []seedItem{
			{Value: "kitG", Label: "Kit apicultura G", Order: 1},
			{Value: "kitGG", Label: "Kit apicultura GG", Order: 2},
			{Value: "kitM", Label: "Kit apicultura M", Order: 3},
			{Value: "kitXG", Label: "Kit apicultura XG", Order: 4},
			{Value: "kitXXG", Label: "Kit apicultura XXG", Order: 5},
			{Value: "caixa", Label: "Caixa de abelha", Order: 6},
		},
	},
	{
		Value: "mudas", Label: "Insumos/Mudas", FormType: "mudas", Order: 6,
		Items: []seedItem{
			{Value: "banana_princesa", Label: "Muda de Banana - Variedade: BRS Princesa, Tipo: Maçã", Order: 1},
			{Value: "banana_terra_ana", Label: "Muda de Banana - Variedade: BRS Terra-Anã, Tipo: Terra", Order: 2},
			{Value: "banana_farta_velhaco", Label: "Muda de Banana - Variedade: Farta Velhaco, Tipo: Terra", Order: 3},
			{Value: "banana_nanica", Label: "Muda de Banana - Variedade: Nanica, Tipo: Cavendish", Order: 4},
			{Value: "citrus_laranja_pera", Label: "Mudas de Citrus - Variedade: Laranja Pera IAC", Order: 5},
			{Value: "citrus_lima_tahiti", Label: "Mudas de Citrus - Variedade: Lima Ácida Tahiti", Order: 6},
			{Value: "citrus_tangerina_pokan", Label: "Mudas de Citrus - Variedade: Tangerina Pokan", Order: 7},
			{Value: "maracuja", Label: "Mudas de Maracujá", Order: 8},
			{Value: "cacau", Label: "Mudas de Cacau", Order: 9},
			{Value: "cafe_conilon", Label: "Mudas de Café - Coffea canephora, variedade Conilon", Order: 10},
		},
	},
	{
		Value: "semen", Label: "Insumos/Sêmen", FormType: "default", Order: 7,
		Items: []seedItem{
			{Value: "gir_leiteiro_conv", Label: "Sêmen de Bovinos Convencional da Raça Gir Leiteiro", Order: 1},
			{Value: "girolando_3_4_conv", Label: "Sêmen de Bovinos Convencional da Raça Girolando 3/4 Sangue", Order: 2},
			{Value: "girolando_5_8_conv", Label: "Sêmen de Bovinos Convencional da Raça Girolando 5/8 Sangue", Order: 3},
			{Value: "holandesa_conv", Label: "Sêmen de Bovinos Convencional da Raça Holandesa", Order: 4},
			{Value: "jersey_conv", Label: "Sêmen de Bovinos Convencional da Raça Jersey", Order: 5},
			{Value: "gir_leiteiro_sexado", Label: "Sêmen de Bovinos Sexado de Fêmea da Raça Gir Leiteiro", Order: 6},
			{Value: "girolando_3_4_sexado", Label: "Sêmen de Bovinos Sexado de Fêmea da Raça Girolando 3/4 Sangue", Order: 7},
			{Value: "girolando_5_8_sexado", Label: "Sêmen de Bovinos Sexado de Fêmea da Raça Girolando 5/8 Sangue", Order: 8},
			{Value: "holandesa_sexado", Label: "Sêmen de Bovinos Sexado de Fêmea da Raça Holandesa", Order: 9},
			{Value: "jersey_sexado", Label: "Sêmen de Bovinos Sexado de Fêmea da Raça Jersey", Order: 10},
		},
	},
	{
		Value: "comercializacao", Label: "Comercialização", FormType: "default", Order: 8,
		Items: []seedItem{
			{Value: "barracas", Label: "Barracas para feira", Order: 1},
		},
	},
	{
		Value: "mecanizacao", Label: "Mecanização Agrícola", FormType: "default", Order: 9,
		Items: []seedItem{
			{Value: "carreta_6tn", Label: "Carreta Agrícola 6TN", Order: 1},
			{Value: "carreta_basculante_6tn", Label: "Carreta Agrícola Basculante 6TN", Order: 2},
			{Value: "carreta_micro_trator", Label: "Carreta para Micro Trator", Order: 3},
			{Value: "carrinho_mao", Label: "Carrinho Mão Pneu/Câmara 60 Lts", Order: 4},
			{Value: "colhedora_cafe", Label: "Colhedora de Café", Order: 5},
			{Value: "colhedora_forragem_total", Label: "Colhedora de Forragem Área Total", Order: 6},
			{Value: "colhedora_forragem_1linha", Label: "Colhedora de Forragens de 01 Linha", Order: 7},
			{Value: "colhedora_milho_2linhas", Label: "Colhedora de Milho 2 Linhas", Order: 8},
			{Value: "conjunto_hidraulico", Label: "Conjunto Hidráulico de Levante Frontal", Order: 9},
			{Value: "desperfilhador", Label: "Desperfilhador por Roto-Compressão", Order: 10},
			{Value: "distribuidor_adubo", Label: "Distribuidor de Adubo, Calcário, Fertilizantes e Orgânicos", Order: 11},
			{Value: "enxada_rotativa", Label: "Enxada Rotativa", Order: 12},
			{Value: "enxada_rotativa_encanteirador", Label: "Enxada Rotativa com Encanteirador", Order: 13},
			{Value: "grade_aradora_14", Label: "Grade Aradora 14 Discos", Order: 14},
			{Value: "grade_aradora_16", Label: "Grade Aradora 16 Discos", Order: 15},
			{Value: "grade_niveladora_28", Label: "Grade Niveladora 28 Discos", Order: 16},
			{Value: "grade_niveladora_32", Label: "Grade Niveladora 32 Discos", Order: 17},
			{Value: "grade_niveladora_40", Label: "Grade Niveladora 40 Discos", Order: 18},
			{Value: "kit_irrigacao", Label: "Kit Irrigação", Order: 19},
			{Value: "micro_trator_diesel", Label: "Micro Trator a Diesel", Order: 20},
			{Value: "misturador_racao", Label: "Misturador de Ração", Order: 21},
			{Value: "motocultivador_gasolina", Label: "Motocultivadores a Gasolina", Order: 22},
			{Value: "perfurador_solo_hidraulico", Label: "Perfurador de Solo Hidráulico", Order: 23},
			{Value: "perfurador_solo_gasolina", Label: "Perfurador de Solo a Gasolina 1,2CV", Order: 24},
			{Value: "plantadeira_abacaxi", Label: "Plantadeira de Abacaxi 2 Linhas", Order: 25},
			{Value: "plantadeira_mandioca", Label: "Plantadeira de Mandioca 2 Linhas", Order: 26},
			{Value: "plantadeira_2linhas", Label: "Plantadeira e Adubadeira 2 Linhas", Order: 27},
			{Value: "plantadeira_4linhas", Label: "Plantadeira e Adubadeira 4 Linhas", Order: 28},
			{Value: "pulverizador_costal", Label: "Pulverizador Costal a Gasolina 1,0CV", Order: 29},
			{Value: "rocadeira_costal", Label: "Roçadeira Costal a Gasolina 1,5CV", Order: 30},
			{Value: "rocadeira_hidraulica", Label: "Roçadeira Hidráulica", Order: 31},
			{Value: "subsolador_2linhas", Label: "Subsolador 2 Linhas", Order: 32},
			{Value: "trator_plataformado_75cv", Label: "Trator Plataformado 75 CV", Order: 33},
			{Value: "trator_cabinado_110cv", Label: "Trator Cabinado 110 CV", Order: 34},
			{Value: "trator_cabinado_80cv", Label: "Trator Cabinado 80 CV", Order: 35},
			{Value: "triturador_graos", Label: "Triturador de Grãos Secos", Order: 36},
		},
	},
	{
		Value: "veiculos", Label: "Veículos", FormType: "default", Order: 10,
		Items: []seedItem{
			{Value: "pickup_4x4_diesel_2p", Label: "Pick-up, 4x4, Diesel 2 Portas", Order: 1},
			{Value: "pickup_4x4_diesel_4p", Label: "Pick-up, 4x4, Diesel 4 Portas", Order: 2},
			{Value: "pickup_4x2_flex_4p", Label: "Pick-up, 4x2, Flex, 4 Portas", Order: 3},
			{Value: "pickup_4x2_flex_2p", Label: "Pick-up, 4x2, Flex, 2 Portas", Order: 4},
		},
	},
	{
		Value: "veiculo_carga", Label: "Veículo de Carga", FormType: "default", Order: 11,
		Items: []seedItem{
			{Value: "caminhao_bau", Label: "Caminhão Baú", Order: 1},
			{Value: "caminhao_bau_refrigerado", Label: "Caminhão Baú Refrigerado", Order: 2},
			{Value: "pickup_4x2_flex_furgao", Label: "Pick-up, 4x2, Flex, Furgão", Order: 3},
		},
	},
	{
		Value: "infraestrutura", Label: "Infraestrutura", FormType: "default", Order: 12,
		Items: []seedItem{
			{Value: "caminhao_cavalo_mecanico", Label: "Caminhão Cavalo Mecânico", Order: 1},
			{Value: "caminhao_pipa", Label: "Caminhão Pipa", Order: 2},
			{Value: "caminhao_truck_cacamba", Label: "Caminhão Truck Caçamba Basculante 12M³", Order: 3},
			{Value: "escavadeira_hidraulica", Label: "Escavadeira Hidráulica", Order: 4},
			{Value: "motoniveladora", Label: "Motoniveladora", Order: 5},
			{Value: "pa_carregadeira", Label: "Pá Carregadeira", Order: 6},
			{Value: "retroescavadeira", Label: "Retroescavadeira", Order: 7},
			{Value: "rolo_compactador", Label: "Rolo Compactador 110 HP", Order: 8},
			{Value: "semirreboque_basculante_3eixos", Label: "Semirreboque Basculante 3 Eixos", Order: 9},
			{Value: "semirreboque_prancha_2eixos", Label: "Semirreboque Prancha 2 Eixos", Order: 10},
			{Value: "semirreboque_prancha_3eixos", Label: "Semirreboque Prancha 3 Eixos", Order: 11},
		},
	},
}

var catalogCommunityTypes = []models.CommunityType{
	{Value: "comunidades_tradicionais", Label: "Comunidades tradicionais", Order: 1},
	{Value: "comunidades_indigenas", Label: "Comunidades indígenas", Order: 2},
	{Value: "quilombolas", Label: "Comunidades quilombolas", Order: 3},
	{Value: "assentamentos", Label: "Assentamentos", Order: 4},
	{Value: "associacoes", Label: "Associações de produtores", Order: 5},
	{Value: "comunidades_outras", Label: "Comunidades outras", Order: 6},
	{Value: "cooperativas", Label: "Cooperativas de produtores", Order: 7},
	{Value: "outros_grupos", Label: "Outros", Order: 8},
}

// SeedCatalog upserts the category/item catalog and the community-type
// list inside one transaction. Safe to run on every startup.
func SeedCatalog(db *gorm.DB) error {
	categoryRepo := repository.NewCategoryRepositoryWithDB(db)
	itemRepo := repository.NewItemRepositoryWithDB(db)
	communityTypeRepo := repository.NewCommunityTypeRepositoryWithDB(db)

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, data := range catalogCategories {
			category := &models.Category{
				Value:    data.Value,
				Label:    data.Label,
				FormType: data.FormType,
				Order:    data.Order,
				Active:   true,
			}
			if err := categoryRepo.Upsert(tx, category); err != nil {
				return err
			}
			for _, itemData := range data.Items {
				item := &models.Item{
					CategoryID: category.ID,
					Value:      itemData.Value,
					Label:      itemData.Label,
					Order:      itemData.Order,
					Active:     true,
				}
				if err := itemRepo.Upsert(tx, item); err != nil {
					return err
				}
			}
		}

		for _, data := range catalogCommunityTypes {
			communityType := data
			communityType.Active = true
			if err := communityTypeRepo.Upsert(tx, &communityType); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Infof("Catálogo carregado: %d categorias, %d tipos de comunidade",
		len(catalogCategories), len(catalogCommunityTypes))
	return nil
}
