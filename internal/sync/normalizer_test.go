package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tienda/internal/catalog"
)

func newNormalizer() *Normalizer {
	return NewNormalizer(catalog.DefaultConfig())
}

func TestBrandPrecedence(t *testing.T) {
	n := newNormalizer()

	tests := []struct {
		name string
		hint string
		want string
	}{
		{"known brand", "HP INC", "HP"},
		{"earlier list entry wins", "DELL ASUS HYBRID", "DELL"},
		{"case insensitive", "lenovo", "LENOVO"},
		{"unknown hint is title-cased", "BANGHO", "Bangho"},
		{"empty hint falls back", "", "GENERICO"},
		{"blank hint falls back", "   ", "GENERICO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Brand(tt.hint))
		})
	}
}

func TestCleanName(t *testing.T) {
	n := newNormalizer()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"strips category prefix", "NOTEBOOK HP Pavilion 15", "HP Pavilion 15"},
		{"strips short prefix", "NB HP 8GB 512GB SSD", "HP 8GB 512GB SSD"},
		{"prefix is case insensitive", "Monitor LG 24", "LG 24"},
		{"strips trailing code", "HP Pavilion 15 (NB-HP15)", "HP Pavilion 15"},
		{"prefix and suffix together", "IMPRESORA Epson L3250 (ECO-L325)", "Epson L3250"},
		{"collapses whitespace", "  MONITOR   LG   24  ", "LG 24"},
		{"prefix only when followed by space", "NBX-200 Server", "NBX-200 Server"},
		{"no changes needed", "LG UltraGear 27", "LG UltraGear 27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.CleanName(tt.title))
		})
	}
}

func TestSpecsNotebook(t *testing.T) {
	n := newNormalizer()

	specs := n.Specs("NB HP 8GB 512GB SSD I5-1135G7", catalog.Notebooks)

	assert.Equal(t, catalog.Specs{
		catalog.SpecRAM:     "8 GB",
		catalog.SpecStorage: "512 GB SSD",
		catalog.SpecCPU:     "Intel Core i5-1135G7",
	}, specs)
}

func TestSpecsMonitor(t *testing.T) {
	n := newNormalizer()

	specs := n.Specs("MONITOR LG 24 165HZ IPS", catalog.Monitores)

	// "24" is outside the 11-18 screen range and is not one of the
	// bare fallback sizes, so no screenSize is extracted.
	assert.Equal(t, catalog.Specs{
		catalog.SpecRefreshRate: "165 Hz",
		catalog.SpecPanelType:   "IPS",
	}, specs)
}

func TestExtractRAM(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		ok    bool
	}{
		{"plain GB", "NB HP 8GB SSD", "8 GB", true},
		{"bare G", "NB HP 16G RYZEN 5", "16 GB", true},
		{"spaced", "NB DELL 32 GB DDR4", "32 GB", true},
		{"storage figure skipped", "PC 512GB SSD", "", false},
		{"below range", "TABLET 2GB", "", false},
		{"cpu model not memory", "NB I5-1135G7", "", false},
		{"gigabit not memory", "ROUTER 1GBITS", "", false},
		{"storage then memory", "PC 256GB SSD 8GB DDR4", "8 GB", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractRAM(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractStorage(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		ok    bool
	}{
		{"terabyte", "NB LENOVO 1TB I7", "1 TB SSD", true},
		{"terabyte spaced", "PC GAMER 2 TB NVME", "2 TB SSD", true},
		{"gigabyte", "NB HP 512GB SSD", "512 GB SSD", true},
		{"gigabyte minimum", "NB ACER 120GB", "120 GB SSD", true},
		{"small figure is not storage", "NB ACER 64GB EMMC", "", false},
		{"ssd adjacency", "PC GAMER SSD 480", "480 GB SSD", true},
		{"adjacency works both ways", "PC 240 SSD KINGSTON", "240 GB SSD", true},
		{"tb beats gb", "NB 1TB 512GB", "1 TB SSD", true},
		{"nothing", "MONITOR LG 24", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractStorage(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCPU(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		ok    bool
	}{
		{"intel with separator", "NB HP I5-1135G7", "Intel Core i5-1135G7", true},
		{"intel with space", "NB DELL I7 8550U", "Intel Core i7-8550U", true},
		{"ryzen with model", "NB HP RYZEN 5 5500U", "AMD Ryzen 5 5500U", true},
		{"ryzen without model", "NB LENOVO RYZEN 7", "AMD Ryzen 7", true},
		{"celeron yields nothing", "NB LENOVO CELERON N4020", "", false},
		{"pentium yields nothing", "NB HP PENTIUM SILVER", "", false},
		{"no marker at all", "NB GENERICA 8GB", "", false},
		{"wifi is not a cpu", "MONITOR WIFI5 SMART", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractCPU(tt.title)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractScreenSize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
		ok    bool
	}{
		{"inch marker", `NB DELL 15.6" FHD`, `15.6"`, true},
		{"pulg marker", "MONITOR SAMSUNG 27PULG", "", false},
		{"bare 15.6", "NB ASUS X515 15.6 FHD", `15.6"`, true},
		{"bare 14", "NB LENOVO IDEAPAD 14 AMD", `14"`, true},
		{"24 does not match", "MONITOR LG 24 165HZ", "", false},
		{"later marker match still counts", `NB GAMER X215" PRO 15.6" FHD`, `15.6"`, true},
		{"142 is not a size", "SOPORTE 142 CM", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractScreenSize(tt.title)
			if tt.name == "pulg marker" {
				// 27 is out of range; no fallback applies either
				assert.False(t, ok)
				return
			}
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRefreshAndPanel(t *testing.T) {
	rate, ok := extractRefreshRate("MONITOR LG 24 165HZ IPS")
	assert.True(t, ok)
	assert.Equal(t, "165 Hz", rate)

	_, ok = extractRefreshRate("MONITOR LG 24")
	assert.False(t, ok)

	panel, ok := extractPanelType("MONITOR SAMSUNG 24 75HZ VA CURVO")
	assert.True(t, ok)
	assert.Equal(t, "VA", panel)

	// CURVA must not read as a VA panel
	_, ok = extractPanelType("MONITOR PANTALLA CURVA TN")
	assert.False(t, ok)
}

func TestExtractPrintType(t *testing.T) {
	tests := []struct {
		title string
		want  string
		ok    bool
	}{
		{"IMPRESORA HP LASERJET M140W", "Láser", true},
		{"IMPRESORA BROTHER LED HL-3160", "Láser", true},
		{"IMPRESORA EPSON ECOTANK TINTA CONTINUA", "Inyección de Tinta", true},
		{"IMPRESORA CANON INKJET G3110", "Inyección de Tinta", true},
		{"IMPRESORA MATRICIAL EPSON", "", false},
	}

	for _, tt := range tests {
		got, ok := extractPrintType(tt.title)
		assert.Equal(t, tt.ok, ok, tt.title)
		assert.Equal(t, tt.want, got, tt.title)
	}
}

func TestSpecsRunEverywhere(t *testing.T) {
	n := newNormalizer()

	// RAM, storage and CPU are not tied to a category; a printer with
	// internal memory keeps it
	specs := n.Specs("IMPRESORA HP LASER 8GB 256GB", catalog.Impresoras)
	assert.Equal(t, catalog.Specs{
		catalog.SpecRAM:       "8 GB",
		catalog.SpecStorage:   "256 GB SSD",
		catalog.SpecPrintType: "Láser",
	}, specs)

	// mini PCs land in OTROS and still get their cpu
	specs = n.Specs("MINI PC RYZEN 5 5500U 16GB", catalog.Otros)
	assert.Equal(t, catalog.Specs{
		catalog.SpecRAM: "16 GB",
		catalog.SpecCPU: "AMD Ryzen 5 5500U",
	}, specs)
}

func TestSpecsPerCategoryGating(t *testing.T) {
	n := newNormalizer()

	// desktops skip screen size
	specs := n.Specs("PC GAMER RYZEN 5 16GB 15.6", catalog.Computadoras)
	assert.NotContains(t, specs, catalog.SpecScreenSize)

	// refresh rate and panel type are monitor-only
	specs = n.Specs("NB GAMER 144HZ IPS 15.6", catalog.Notebooks)
	assert.NotContains(t, specs, catalog.SpecRefreshRate)
	assert.NotContains(t, specs, catalog.SpecPanelType)
	assert.Equal(t, `15.6"`, specs[catalog.SpecScreenSize])

	// print type is printer-only
	specs = n.Specs("MONITOR LED LG 24 75HZ", catalog.Monitores)
	assert.NotContains(t, specs, catalog.SpecPrintType)
}
