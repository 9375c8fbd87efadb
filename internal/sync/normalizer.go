package sync

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tienda/internal/catalog"
)

// Normalizer derives the curated-looking fields of a new catalog
// record from the raw vendor data: canonical brand, clean display
// name and the structured spec map extracted from the title.
type Normalizer struct {
	cfg   *catalog.Config
	title cases.Caser
}

func NewNormalizer(cfg *catalog.Config) *Normalizer {
	return &Normalizer{cfg: cfg, title: cases.Title(language.Spanish)}
}

// Brand resolves the vendor brand hint against the known brand list.
// The first list entry found as a substring wins, so the list order is
// a precedence order. Unknown non-empty hints are title-cased as-is;
// an empty hint falls back to the generic placeholder.
func (n *Normalizer) Brand(hint string) string {
	up := strings.ToUpper(strings.TrimSpace(hint))
	for _, b := range n.cfg.Brands {
		if strings.Contains(up, b) {
			return b
		}
	}
	if up != "" {
		return n.title.String(strings.ToLower(strings.TrimSpace(hint)))
	}
	return n.cfg.FallbackBrand
}

var (
	wsRe     = regexp.MustCompile(`\s+`)
	suffixRe = regexp.MustCompile(`\s*\([A-Za-z0-9-]{2,8}\)\s*$`)
)

// CleanName turns the raw title into a display name: drops a leading
// category marker, drops a trailing short parenthetical code, and
// collapses whitespace.
func (n *Normalizer) CleanName(title string) string {
	name := strings.TrimSpace(wsRe.ReplaceAllString(title, " "))

	up := strings.ToUpper(name)
	for _, prefix := range n.cfg.NamePrefixes {
		if up == prefix {
			break
		}
		if strings.HasPrefix(up, prefix+" ") {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}

	name = suffixRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// Specs runs every extractor that applies over the uppercased,
// whitespace-collapsed title. RAM, storage and CPU run for every
// category (CPU gates itself on a processor marker in the text);
// screen size, refresh rate, panel type and print type only apply
// where the category makes them meaningful. Extractors are
// independent; absent values stay out of the map.
func (n *Normalizer) Specs(title string, cat catalog.Category) catalog.Specs {
	t := strings.TrimSpace(wsRe.ReplaceAllString(strings.ToUpper(title), " "))
	specs := catalog.Specs{}

	type extractor struct {
		key string
		fn  func(string) (string, bool)
	}

	extractors := []extractor{
		{catalog.SpecRAM, extractRAM},
		{catalog.SpecStorage, extractStorage},
		{catalog.SpecCPU, extractCPU},
	}
	switch cat {
	case catalog.Notebooks:
		extractors = append(extractors,
			extractor{catalog.SpecScreenSize, extractScreenSize},
		)
	case catalog.Monitores:
		extractors = append(extractors,
			extractor{catalog.SpecScreenSize, extractScreenSize},
			extractor{catalog.SpecRefreshRate, extractRefreshRate},
			extractor{catalog.SpecPanelType, extractPanelType},
		)
	case catalog.Impresoras:
		extractors = append(extractors,
			extractor{catalog.SpecPrintType, extractPrintType},
		)
	}

	for _, e := range extractors {
		if val, ok := e.fn(t); ok {
			specs[e.key] = val
		}
	}

	return specs
}

// ---------------------------------------------------------------------------
// Extractors. Pure functions over the prepared title. Go's regexp has
// no lookaround, so digit/word boundaries are checked by index on the
// original string instead of being part of the pattern.
// ---------------------------------------------------------------------------

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlnum(b byte) bool {
	return isDigit(b) || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// boundaryOK reports whether the match at [start,end) is neither
// preceded by a digit nor followed by a letter or digit.
func boundaryOK(s string, start, end int) bool {
	if start > 0 && isDigit(s[start-1]) {
		return false
	}
	if end < len(s) && isAlnum(s[end]) {
		return false
	}
	return true
}

var ramRe = regexp.MustCompile(`([0-9]{1,3}) ?GB?`)

// extractRAM finds a 1-3 digit capacity directly followed by G/GB.
// The boundary check rules out CPU model codes (1135G7) and rates in
// GBITS; only values between 4 and 128 count as memory.
func extractRAM(t string) (string, bool) {
	for _, loc := range ramRe.FindAllStringSubmatchIndex(t, -1) {
		if !boundaryOK(t, loc[0], loc[1]) {
			continue
		}
		n, err := strconv.Atoi(t[loc[2]:loc[3]])
		if err != nil || n < 4 || n > 128 {
			continue
		}
		return fmt.Sprintf("%d GB", n), true
	}
	return "", false
}

var (
	storageTBRe = regexp.MustCompile(`([0-9]{1,2}) ?TB?`)
	storageGBRe = regexp.MustCompile(`([0-9]{3,4}) ?GB?`)
	ssdAfterRe  = regexp.MustCompile(`([0-9]{2,4}) ?SSD`)
	ssdBeforeRe = regexp.MustCompile(`SSD ?([0-9]{2,4})`)
)

// extractStorage tries, in fixed order: a terabyte figure, a gigabyte
// figure of at least 120 GB, and finally a number glued to the
// literal SSD. The first rule that matches wins.
func extractStorage(t string) (string, bool) {
	for _, loc := range storageTBRe.FindAllStringSubmatchIndex(t, -1) {
		if !boundaryOK(t, loc[0], loc[1]) {
			continue
		}
		return t[loc[2]:loc[3]] + " TB SSD", true
	}

	for _, loc := range storageGBRe.FindAllStringSubmatchIndex(t, -1) {
		if !boundaryOK(t, loc[0], loc[1]) {
			continue
		}
		n, err := strconv.Atoi(t[loc[2]:loc[3]])
		if err != nil || n < 120 {
			continue
		}
		return fmt.Sprintf("%d GB SSD", n), true
	}

	for _, re := range []*regexp.Regexp{ssdAfterRe, ssdBeforeRe} {
		for _, loc := range re.FindAllStringSubmatchIndex(t, -1) {
			if !boundaryOK(t, loc[0], loc[1]) {
				continue
			}
			return t[loc[2]:loc[3]] + " GB SSD", true
		}
	}

	return "", false
}

var (
	intelRe = regexp.MustCompile(`I([3579])[- ]?([0-9][0-9A-Z]*)`)
	ryzenRe = regexp.MustCompile(`RYZEN ?([0-9])(?: ?([0-9][0-9A-Z]*))?`)
)

// extractCPU is only attempted when the title carries a processor
// marker at all. Celeron and Pentium are recognized as markers but do
// not produce a formatted value.
func extractCPU(t string) (string, bool) {
	hasMarker := strings.Contains(t, "RYZEN") ||
		strings.Contains(t, "CELERON") ||
		strings.Contains(t, "PENTIUM") ||
		intelRe.MatchString(t)
	if !hasMarker {
		return "", false
	}

	for _, loc := range intelRe.FindAllStringSubmatchIndex(t, -1) {
		// the leading I must start a token (rules out e.g. WIFI6)
		if loc[0] > 0 && isAlnum(t[loc[0]-1]) {
			continue
		}
		if loc[1] < len(t) && isAlnum(t[loc[1]]) {
			continue
		}
		return fmt.Sprintf("Intel Core i%s-%s", t[loc[2]:loc[3]], t[loc[4]:loc[5]]), true
	}

	if loc := ryzenRe.FindStringSubmatchIndex(t); loc != nil {
		series := t[loc[2]:loc[3]]
		if loc[4] >= 0 {
			return fmt.Sprintf("AMD Ryzen %s %s", series, t[loc[4]:loc[5]]), true
		}
		return "AMD Ryzen " + series, true
	}

	return "", false
}

var (
	screenRe     = regexp.MustCompile(`(1[1-8](?:\.[0-9])?) ?(?:"|”|''|PULG)`)
	screenBareRe = regexp.MustCompile(`14|15\.6`)
)

// extractScreenSize matches an 11-18 inch figure with an inch marker,
// falling back to the two sizes common enough to appear bare.
func extractScreenSize(t string) (string, bool) {
	for _, loc := range screenRe.FindAllStringSubmatchIndex(t, -1) {
		if loc[0] > 0 && isDigit(t[loc[0]-1]) {
			continue
		}
		return t[loc[2]:loc[3]] + `"`, true
	}
	for _, loc := range screenBareRe.FindAllStringIndex(t, -1) {
		if loc[0] > 0 && (isDigit(t[loc[0]-1]) || t[loc[0]-1] == '.') {
			continue
		}
		if loc[1] < len(t) && (isDigit(t[loc[1]]) || t[loc[1]] == '.') {
			continue
		}
		return t[loc[0]:loc[1]] + `"`, true
	}
	return "", false
}

var refreshRe = regexp.MustCompile(`([0-9]{2,3}) ?HZ`)

func extractRefreshRate(t string) (string, bool) {
	for _, loc := range refreshRe.FindAllStringSubmatchIndex(t, -1) {
		if !boundaryOK(t, loc[0], loc[1]) {
			continue
		}
		return t[loc[2]:loc[3]] + " Hz", true
	}
	return "", false
}

// extractPanelType looks for the IPS / VA tokens. VA in particular
// needs hard token boundaries (CURVA would match otherwise).
func extractPanelType(t string) (string, bool) {
	for _, panel := range []string{"IPS", "VA"} {
		idx := 0
		for {
			i := strings.Index(t[idx:], panel)
			if i < 0 {
				break
			}
			start := idx + i
			end := start + len(panel)
			if (start == 0 || !isAlnum(t[start-1])) && (end == len(t) || !isAlnum(t[end])) {
				return panel, true
			}
			idx = end
		}
	}
	return "", false
}

func extractPrintType(t string) (string, bool) {
	if strings.Contains(t, "LASER") || strings.Contains(t, "LED") {
		return "Láser", true
	}
	if strings.Contains(t, "INK") || strings.Contains(t, "TINTA") {
		return "Inyección de Tinta", true
	}
	return "", false
}
