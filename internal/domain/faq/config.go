package faq

// Config holds the user facing texts of the matcher. Zero values fall back to
// the defaults.
type Config struct {
	NotFoundAnswer   string
	PartialSuffix    string
	WeakSuffix       string
	CategoriesHeader string
	// CategoryNames extends or overrides the built-in display names.
	CategoryNames      map[string]string
	TopRecommendations int
	// MaxQueryLength bounds a query in runes.
	MaxQueryLength int
}

const (
	// DefaultNotFoundAnswer is the contact information given when nothing matches.
	DefaultNotFoundAnswer = "Sorry, I don't have specific information about that question. " +
		"You can contact Colegio Calasanz Buenavista directly at 601 7920388 " +
		"or visit us at Carrera 17F # 77 – 75 SUR, Buenos Aires, Ciudad Bolívar."
	// DefaultPartialSuffix is appended to answers scoring in [0.5, 0.8).
	DefaultPartialSuffix = "\n\n(if you need more specific information, contact the school)"
	// DefaultWeakSuffix is appended to answers scoring below 0.5.
	DefaultWeakSuffix = "\n\nYou can also type 'help' to see all available categories"
	// DefaultCategoriesHeader precedes the category listing.
	DefaultCategoriesHeader = "AVAILABLE CATEGORIES:"
	// DefaultMaxQueryLength is the longest query, in runes, the service accepts.
	DefaultMaxQueryLength = 500
	// NotFoundCategory is reported when no record matched.
	NotFoundCategory = "general"
)

var defaultCategoryNames = map[string]string{
	"informacion_general": "Información General",
	"ubicacion_contacto":  "Ubicación y Contacto",
	"matriculas":          "Matrículas",
	"admisiones":          "Admisiones",
	"academico":           "Información Académica",
	"horarios":            "Horarios",
	"filosofia":           "Filosofía Educativa",
	"red_colegios":        "Red de Colegios",
	"documentos":          "Documentos y Requisitos",
	"costos":              "Costos",
	"transporte":          "Transporte",
	"eventos":             "Eventos",
	"comunicacion":        "Comunicación",
	"uniforme":            "Uniforme",
}

// helpCommands are compared against the normalized query.
var helpCommands = map[string]struct{}{
	"help":       {},
	"ayuda":      {},
	"categorias": {},
}

func (c Config) withDefaults() Config {
	if c.NotFoundAnswer == "" {
		c.NotFoundAnswer = DefaultNotFoundAnswer
	}
	if c.PartialSuffix == "" {
		c.PartialSuffix = DefaultPartialSuffix
	}
	if c.WeakSuffix == "" {
		c.WeakSuffix = DefaultWeakSuffix
	}
	if c.CategoriesHeader == "" {
		c.CategoriesHeader = DefaultCategoriesHeader
	}
	if c.MaxQueryLength <= 0 {
		c.MaxQueryLength = DefaultMaxQueryLength
	}
	names := make(map[string]string, len(defaultCategoryNames)+len(c.CategoryNames))
	for k, v := range defaultCategoryNames {
		names[k] = v
	}
	for k, v := range c.CategoryNames {
		names[k] = v
	}
	c.CategoryNames = names
	return c
}
