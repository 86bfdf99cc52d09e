package generator

import (
	"wozmarket/internal/domain/entity"
)

// ModifierPlaceholder is replaced by a modifier in title templates.
const ModifierPlaceholder = "{mod}"

// PriceBucket is one piece of the piecewise price distribution.
type PriceBucket struct {
	Weight float64
	Min    int
	Max    int
}

// DefaultPriceBuckets: 10% near 50.000, 20% between 100.000 and 800.000,
// the rest between 1.000.000 and 5.000.000.
var DefaultPriceBuckets = []PriceBucket{
	{Weight: 0.10, Min: 40000, Max: 60000},
	{Weight: 0.20, Min: 100000, Max: 800000},
	{Weight: 0.70, Min: 1000000, Max: 5000000},
}

// Vocabulary holds the fixed word lists every synthetic value is drawn from.
type Vocabulary struct {
	TitleTemplates []string
	Modifiers      []string
	Suppliers      []string

	CategorySeeds    []string
	CategoryWords    []string
	CategorySuffixes []string
	CategoryCount    int

	FirstNames  []string
	LastNames   []string
	VendorCount int

	PriceBuckets []PriceBucket

	Reviews ReviewVocabulary
	Blurbs  DescriptionVocabulary
}

// ReviewVocabulary holds the bilingual pools of synthesized customer reviews.
type ReviewVocabulary struct {
	AuthorsES  []string
	AuthorsEN  []string
	FlagsES    []string
	FlagsEN    []string
	PositiveES []string
	NegativeES []string
	PositiveEN []string
	NegativeEN []string
	Cities     map[string][]string
	Countries  map[string]string
}

// DescriptionVocabulary holds the fragments of synthesized product descriptions.
type DescriptionVocabulary struct {
	Uses     []string
	Kinds    []string
	Benefits []string
}

// DefaultVocabulary returns the marketplace word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		TitleTemplates: []string{
			"Carrito para bebé {mod}",
			"Cargador rápido USB-C {mod}",
			"Auriculares inalámbricos {mod}",
			"Smartwatch deportivo {mod}",
			"Almohada ergonómica {mod}",
			"Silla de oficina {mod}",
			"Set de sartenes antiadherente {mod}",
			"Cámara de seguridad IP {mod}",
			"Juego de herramientas {mod}",
			"Bombilla LED inteligente {mod}",
			"Mochila urbana {mod}",
			"Ropa deportiva para correr {mod}",
			"Zapatillas running {mod}",
			"Terminal POS portátil {mod}",
			"Purificador de agua compacto {mod}",
			"Secadora de cabello profesional {mod}",
			"Cama para mascotas {mod}",
			"Cargador solar portátil {mod}",
			"Soporte para laptop ajustable {mod}",
			"Kit de limpieza para auto {mod}",
			"Lentes de sol polarizados {mod}",
			"Colchón inflable portátil {mod}",
			"Organizador de cocina {mod}",
			"Cámara instantánea {mod}",
			"Mini proyector portátil {mod}",
		},
		Modifiers: []string{
			"Edición 2025", "Plus", "Mini", "Pro", "Lite",
			"Versión A", "Versión B", "Deluxe", "Compacto", "Sport",
		},
		Suppliers: []string{
			"Amazon",
			"AliExpress",
			"Walmart",
			"eBay",
			entity.SupplierWozMarketplace,
			entity.SupplierWozDropshipping,
		},
		CategorySeeds: []string{
			"Celulares y Telefonía", "Electrodomésticos", "Audio portátil", "Cámaras",
			"Hogar inteligente", "Decoración", "Alimentos y bebidas", "Material escolar",
			"Instrumentos musicales", "Cuidado del auto", "Repuestos", "Herramientas eléctricas",
			"Productos orgánicos", "Cuidado facial", "Maquillaje", "Perfumes", "Ropa hombre",
			"Ropa mujer", "Ropa niño", "Calzado deportivo", "Sandalias", "Botas", "Abrigos",
			"Trajes de baño", "Ropa interior", "Sábanas", "Cortinas", "Iluminación LED",
		},
		CategoryWords: []string{
			"Ropa", "Deporte", "Hogar", "Cocina", "Juguetes", "Bebés", "Electrónica", "Accesorios",
			"Belleza", "Cuidado", "Mascotas", "Jardín", "Muebles", "Herramientas", "Automotriz",
			"Oficina", "Moda", "Calzado", "Relojes", "Joyas", "Computación", "Audio", "Video",
			"Iluminación", "Seguridad", "Viaje", "Camping", "Ciclismo", "Fitness", "Yoga", "Cuidado personal",
		},
		CategorySuffixes: []string{
			"Accesorios", "Kit", "Set", "Repuestos", "Pro", "Premium", "Económico", "Compacto", "Línea", "Plus",
		},
		CategoryCount: 220,
		FirstNames: []string{
			"Miguel", "Lucía", "Carlos", "María", "Pedro", "Fernanda", "Diego", "Paula", "Rafael", "Valentina",
			"Santiago", "Mónica", "Héctor", "Juliana", "Ricardo", "Gabriela", "Andrés", "Luciano", "Mariano",
			"Patricia", "Mateo", "Emilia", "Luis", "Sofía", "Jorge", "Martina", "Carla", "Bruno", "Laura",
		},
		LastNames: []string{
			"Gómez", "Martínez", "López", "Fernández", "Duarte", "Benítez", "Torres", "Ramírez", "González",
			"Rivas", "Vera", "Acosta", "Caballero", "Sosa", "Ayala", "Franco", "Vázquez", "Medina", "Paredes",
			"Villalba", "Alvarez", "Navarro", "Cruz", "Morales", "Ortiz", "Silva", "Herrera", "Castro",
		},
		VendorCount:  200,
		PriceBuckets: DefaultPriceBuckets,
		Reviews:      defaultReviewVocabulary(),
		Blurbs: DescriptionVocabulary{
			Uses:     []string{"limpiar", "organizar", "proteger", "mejorar el rendimiento", "mantener como nuevo", "simplificar tu rutina"},
			Kinds:    []string{"electrónico", "doméstico", "personal", "de cuidado", "de jardín", "de oficina"},
			Benefits: []string{"duradero", "de alta calidad", "fácil de usar", "compacto", "estético", "versátil"},
		},
	}
}

func defaultReviewVocabulary() ReviewVocabulary {
	return ReviewVocabulary{
		AuthorsES: []string{
			"Ana Gómez", "Luis Martínez", "Carlos López", "María Fernández", "Pedro Duarte", "Lucía Benítez",
			"Miguel Torres", "Sofía Ramírez", "José González", "Valentina Rivas", "Ricardo Vera",
			"Fernanda Acosta", "Diego Caballero", "Paula Sosa", "Martín Ayala", "Juliana Franco",
		},
		AuthorsEN: []string{
			"John Smith", "Emily Johnson", "Michael Brown", "Sarah Miller", "David Wilson", "Jessica Moore",
			"Daniel Taylor", "Ashley Anderson", "Matthew Thomas", "Olivia Jackson", "James White",
			"Sophia Harris", "Benjamin Martin", "Ava Thompson", "William Garcia", "Mia Martinez",
		},
		FlagsES: []string{"ar", "cl", "py", "bo", "co", "ec", "pe", "uy", "ve", "mx", "cr", "sv", "gt", "hn", "ni", "pa", "do"},
		FlagsEN: []string{"us", "gb"},
		PositiveES: []string{
			"La calidad es superior a lo esperado.", "El empaque llegó intacto.", "Muy buena atención del vendedor.",
			"La entrega fue puntual.", "Excelente experiencia de compra.", "El producto cumple con lo prometido.",
			"Muy recomendable.", "Todo perfecto, gracias.",
		},
		NegativeES: []string{
			"El producto llegó con retraso.", "No era lo que esperaba.", "La calidad podría ser mejor.",
			"El vendedor tardó en responder.", "No volvería a comprar.", "La atención fue regular.",
			"El envío demoró más de lo indicado.", "No recomiendo este producto.",
		},
		PositiveEN: []string{
			"Great quality, better than expected.", "Fast shipping and excellent service.",
			"Very satisfied with the purchase.", "Product matches the description perfectly.",
			"Highly recommended.", "Everything arrived in perfect condition.",
		},
		NegativeEN: []string{
			"Product arrived late.", "Not what I expected.", "Quality could be better.",
			"Seller was slow to respond.", "Would not buy again.", "Shipping took longer than stated.",
		},
		Cities: map[string][]string{
			"py": {"Asunción", "Ciudad del Este", "Encarnación", "San Lorenzo"},
			"ar": {"Buenos Aires", "Córdoba", "Rosario", "Mendoza"},
			"cl": {"Santiago", "Valparaíso", "Concepción", "Viña del Mar"},
			"bo": {"La Paz", "Santa Cruz", "Cochabamba"},
			"co": {"Bogotá", "Medellín", "Cali", "Barranquilla"},
			"ec": {"Quito", "Guayaquil", "Cuenca"},
			"pe": {"Lima", "Arequipa", "Cusco"},
			"uy": {"Montevideo", "Punta del Este"},
			"ve": {"Caracas", "Maracaibo"},
			"mx": {"Ciudad de México", "Guadalajara", "Monterrey"},
			"cr": {"San José", "Alajuela", "Cartago"},
			"sv": {"San Salvador", "Santa Tecla"},
			"gt": {"Ciudad de Guatemala", "Quetzaltenango"},
			"hn": {"Tegucigalpa", "San Pedro Sula"},
			"ni": {"Managua", "León"},
			"pa": {"Panamá", "Colón"},
			"do": {"Santo Domingo", "Santiago de los Caballeros"},
			"us": {"New York, NY", "Miami, FL", "Tampa, FL", "Los Angeles, CA", "Chicago, IL"},
			"gb": {"London", "Manchester", "Liverpool", "Birmingham"},
		},
		Countries: map[string]string{
			"py": "Paraguay", "ar": "Argentina", "cl": "Chile", "bo": "Bolivia", "co": "Colombia",
			"ec": "Ecuador", "pe": "Perú", "uy": "Uruguay", "ve": "Venezuela", "mx": "México",
			"cr": "Costa Rica", "sv": "El Salvador", "gt": "Guatemala", "hn": "Honduras", "ni": "Nicaragua",
			"pa": "Panamá", "do": "República Dominicana", "us": "USA", "gb": "England",
		},
	}
}

// validate returns ErrEmptyVocabulary naming the first empty list.
func (v Vocabulary) validate() error {
	lists := []struct {
		name  string
		count int
	}{
		{"title templates", len(v.TitleTemplates)},
		{"modifiers", len(v.Modifiers)},
		{"suppliers", len(v.Suppliers)},
		{"category words", len(v.CategoryWords)},
		{"category suffixes", len(v.CategorySuffixes)},
		{"first names", len(v.FirstNames)},
		{"last names", len(v.LastNames)},
		{"price buckets", len(v.PriceBuckets)},
		{"spanish review authors", len(v.Reviews.AuthorsES)},
		{"english review authors", len(v.Reviews.AuthorsEN)},
		{"spanish flags", len(v.Reviews.FlagsES)},
		{"english flags", len(v.Reviews.FlagsEN)},
		{"spanish positive phrases", len(v.Reviews.PositiveES)},
		{"spanish negative phrases", len(v.Reviews.NegativeES)},
		{"english positive phrases", len(v.Reviews.PositiveEN)},
		{"english negative phrases", len(v.Reviews.NegativeEN)},
		{"description uses", len(v.Blurbs.Uses)},
		{"description kinds", len(v.Blurbs.Kinds)},
		{"description benefits", len(v.Blurbs.Benefits)},
	}

	for _, l := range lists {
		if l.count == 0 {
			return emptyVocabulary(l.name)
		}
	}

	return nil
}
