package catalog

// Config is the single source of truth for everything the sync
// pipeline needs per category: vendor source codes, default images,
// the title blacklist and the brand precedence list. It is built once
// at startup and passed explicitly; nothing here may be mutated after
// construction.
type Config struct {
	// SourceCodes maps a category to the vendor catalog groupings that
	// feed it. Many source codes can point at one category.
	SourceCodes map[Category][]string

	// DefaultImages is the image assigned to newly created products.
	// FallbackImage covers categories without an entry.
	DefaultImages map[Category]string
	FallbackImage string

	// Blacklist terms are matched as substrings of the uppercased
	// title. Anything that is not a complete notebook/desktop/monitor/
	// printer lives here: accessories, consumables, parts, services.
	Blacklist []string

	// NotebookTokens: a NOTEBOOKS title must contain at least one of
	// these, otherwise it is rejected even if not blacklisted.
	NotebookTokens []string

	// Brands in precedence order; the first token found as a substring
	// of the uppercased vendor hint wins.
	Brands []string

	// FallbackBrand is used when the vendor sends no hint at all.
	FallbackBrand string

	// NamePrefixes are category markers stripped from the start of a
	// display name, case-insensitively.
	NamePrefixes []string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() *Config {
	return &Config{
		SourceCodes: map[Category][]string{
			Notebooks:    {"NOTEBOOKS", "NOTEBOOKS GAMER"},
			Computadoras: {"COMPUTADORAS", "ALL IN ONE"},
			Monitores:    {"MONITORES"},
			Impresoras:   {"IMPRESORAS", "MULTIFUNCIONES"},
		},
		DefaultImages: map[Category]string{
			Notebooks:    "https://cdn.tienda.com.py/img/default-notebook.jpg",
			Computadoras: "https://cdn.tienda.com.py/img/default-pc.jpg",
			Monitores:    "https://cdn.tienda.com.py/img/default-monitor.jpg",
			Impresoras:   "https://cdn.tienda.com.py/img/default-impresora.jpg",
		},
		FallbackImage: "https://cdn.tienda.com.py/img/default-producto.jpg",
		Blacklist: []string{
			"CABLE", "ADAPTADOR", "CARGADOR", "FUENTE", "BATERIA",
			"TECLADO", "MOUSE", "MOUSEPAD", "AURICULAR", "PARLANTE",
			"WEBCAM", "MICROFONO", "SOPORTE", "MOCHILA", "FUNDA",
			"MALETIN", "TONER", "CARTUCHO", "RESMA", "PAPEL",
			"ROLLO", "CINTA", "LICENCIA", "ANTIVIRUS", "GARANTIA",
			"SERVICIO", "PENDRIVE", "MICRO SD", "ROUTER", "SWITCH",
			"ACCESS POINT", "UPS", "ESTABILIZADOR", "COOLER", "PASTA TERMICA",
		},
		NotebookTokens: []string{"NOTEBOOK", "NB", "LAPTOP"},
		Brands: []string{
			"HP", "DELL", "LENOVO", "ASUS", "ACER", "APPLE", "MSI",
			"SAMSUNG", "LG", "AOC", "BENQ", "VIEWSONIC",
			"EPSON", "CANON", "BROTHER", "XIAOMI", "HUAWEI", "GIGABYTE",
		},
		FallbackBrand: "GENERICO",
		NamePrefixes: []string{
			"NOTEBOOK GAMER", "NOTEBOOK", "NB", "LAPTOP",
			"COMPUTADORA", "PC", "ALL IN ONE", "AIO",
			"MONITOR", "IMPRESORA", "MULTIFUNCION",
		},
	}
}

// ImageFor resolves the default image for a category.
func (c *Config) ImageFor(cat Category) string {
	if img, ok := c.DefaultImages[cat]; ok {
		return img
	}
	return c.FallbackImage
}
