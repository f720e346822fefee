package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/soundscout/backend/internal/domain"
)

// BaseModelRule selects how the base model name is derived from the
// product name. The two corpora this engine grew up on disagree: CSV
// corpora truncate at the first parenthesis, the built-in sample
// truncates at the first comma. The rule in force is chosen once at load.
type BaseModelRule string

const (
	BaseModelRuleParen BaseModelRule = "paren"
	BaseModelRuleComma BaseModelRule = "comma"
)

// Default battery life assumptions when no hour pattern is present
const (
	defaultBatteryWiredHours    = 0
	defaultBatteryWirelessHours = 20
)

// formFactorRule pairs a label with the pattern that selects it.
// Rules are evaluated in order; the first hit wins. The bare words
// ("over", "on", "in") deliberately overfit to marketing copy - an
// unrelated "on" in a description classifies as On-Ear. The word
// boundary keeps "earphones" from matching the bare "on". Downstream
// consumers depend on this exact precedence; do not reorder.
type formFactorRule struct {
	label   string
	pattern *regexp.Regexp
}

var formFactorRules = []formFactorRule{
	{domain.FormFactorOverEar, regexp.MustCompile(`\bover\b`)},
	{domain.FormFactorOnEar, regexp.MustCompile(`\bon\b`)},
	{domain.FormFactorInEar, regexp.MustCompile(`\bin\b|earphone`)},
}

// wirelessMarkers select Wireless connectivity; anything else is Wired.
var wirelessMarkers = []string{"wireless", "bluetooth"}

// batteryPatterns are tried in order against the name first, then the
// description; the first captured integer wins.
var batteryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*hours`),
	regexp.MustCompile(`(\d+)\s*hrs`),
	regexp.MustCompile(`(\d+)\s*hr`),
	regexp.MustCompile(`(\d+)\s*h\b`),
	regexp.MustCompile(`(\d+)-hour`),
}

// Extractor derives categorical and numeric attributes from free-text
// product fields. All extraction is pure string matching; malformed
// inputs degrade to the zero value, never to an error.
type Extractor struct {
	baseModelRule BaseModelRule
}

// NewExtractor creates an extractor with the given base model rule.
func NewExtractor(rule BaseModelRule) *Extractor {
	if rule != BaseModelRuleComma {
		rule = BaseModelRuleParen
	}
	return &Extractor{baseModelRule: rule}
}

// Annotate fills the derived attributes of every product in place.
func (e *Extractor) Annotate(products []domain.Product) {
	for i := range products {
		p := &products[i]
		p.FormFactor = ExtractFormFactor(p.Name, p.Description)
		p.Connectivity = ExtractConnectivity(p.Name, p.Description)
		p.BatteryLifeHours = ExtractBatteryLife(p.Name, p.Description, p.Connectivity)
		p.BaseModel = ExtractBaseModel(p.Name, e.baseModelRule)
	}
}

// AnnotateBaseModel derives only the base model, for corpora that
// already carry their categorical attributes.
func (e *Extractor) AnnotateBaseModel(products []domain.Product) {
	for i := range products {
		products[i].BaseModel = ExtractBaseModel(products[i].Name, e.baseModelRule)
	}
}

// ExtractFormFactor classifies the headphone form factor from name and
// description using the ordered rule list.
func ExtractFormFactor(name, description string) string {
	text := strings.ToLower(name) + " " + strings.ToLower(description)
	for _, rule := range formFactorRules {
		if rule.pattern.MatchString(text) {
			return rule.label
		}
	}
	return domain.FormFactorOther
}

// ExtractConnectivity returns Wireless if the name or description
// mentions a wireless marker, Wired otherwise.
func ExtractConnectivity(name, description string) string {
	text := strings.ToLower(name) + " " + strings.ToLower(description)
	for _, marker := range wirelessMarkers {
		if strings.Contains(text, marker) {
			return domain.ConnectivityWireless
		}
	}
	return domain.ConnectivityWired
}

// ExtractBatteryLife scans name then description for hour patterns and
// returns the first captured integer. With no match, wired products get
// 0 and wireless products get the 20-hour assumption.
func ExtractBatteryLife(name, description, connectivity string) int {
	nameLower := strings.ToLower(name)
	descLower := strings.ToLower(description)

	for _, pattern := range batteryPatterns {
		if m := pattern.FindStringSubmatch(nameLower); m != nil {
			if hours, err := strconv.Atoi(m[1]); err == nil {
				return hours
			}
		}
		if m := pattern.FindStringSubmatch(descLower); m != nil {
			if hours, err := strconv.Atoi(m[1]); err == nil {
				return hours
			}
		}
	}

	if connectivity == domain.ConnectivityWired {
		return defaultBatteryWiredHours
	}
	return defaultBatteryWirelessHours
}

// ExtractBaseModel truncates the product name at the rule's delimiter to
// group size/color/bundle variants of one physical product.
func ExtractBaseModel(name string, rule BaseModelRule) string {
	delimiter := "("
	if rule == BaseModelRuleComma {
		delimiter = ","
	}
	if idx := strings.Index(name, delimiter); idx >= 0 {
		return strings.TrimSpace(name[:idx])
	}
	return strings.TrimSpace(name)
}
