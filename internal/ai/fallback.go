package ai

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	brandHashtag     = "#ResellerOS"
	genericHashtag   = "#reseller"
	offlineMessage   = "AI service offline. Using heuristic suggestions."
	pricingMarkup    = 2.5
	pricingFloor     = 5.0
	defaultListTitle = "ResellerOS Listing"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Fallback produces a deterministic structured suggestion for the given task.
// It is a total function: unknown tasks land in the default branch. No network
// or disk access happens here, only computation over the payload.
func Fallback(task Task, payload Payload) map[string]any {
	switch task {
	case TaskSEO:
		return fallbackSEO(payload)
	case TaskPricing:
		return fallbackPricing(payload)
	case TaskMarketing:
		return fallbackMarketing(payload)
	default:
		return map[string]any{"message": offlineMessage}
	}
}

func fallbackSEO(payload Payload) map[string]any {
	name := stringField(payload, "name")
	category := stringField(payload, "category")
	condition := stringField(payload, "condition")
	source := stringField(payload, "source")

	titleSuffix := category
	if titleSuffix == "" {
		titleSuffix = defaultListTitle
	}

	descCondition := condition
	if descCondition == "" {
		descCondition = "pre-owned"
	}
	descSource := source
	if descSource == "" {
		descSource = "trusted suppliers"
	}

	tags := stringsField(payload, "tags")
	keywordList := "popular keywords"
	if len(tags) > 0 {
		keywordList = strings.Join(tags, ", ")
	}

	if len(tags) == 0 {
		for _, candidate := range []string{category, condition, source} {
			if candidate != "" {
				tags = append(tags, candidate)
			}
		}
	}

	return map[string]any{
		"title": fmt.Sprintf("%s | %s", name, titleSuffix),
		"description": fmt.Sprintf("Shop this %s %s sourced from %s. Keywords: %s.",
			descCondition, name, descSource, keywordList),
		"tags": tags,
	}
}

func fallbackPricing(payload Payload) map[string]any {
	cost := floatField(payload, "cost")
	suggested := cost * pricingMarkup
	if suggested < pricingFloor {
		suggested = pricingFloor
	}
	return map[string]any{
		"suggestedPrice": strconv.FormatFloat(suggested, 'f', 2, 64),
		"strategy":       "Cost-based markup at 2.5x of acquisition cost with a $5.00 floor.",
	}
}

func fallbackMarketing(payload Payload) map[string]any {
	name := stringField(payload, "name")
	price := floatField(payload, "price")

	var hashtags []string
	for _, tag := range stringsField(payload, "tags") {
		cleaned := nonAlphanumeric.ReplaceAllString(tag, "")
		if cleaned != "" {
			hashtags = append(hashtags, "#"+cleaned)
		}
	}
	if len(hashtags) == 0 {
		hashtags = []string{genericHashtag}
	}
	hashtags = append(hashtags, brandHashtag)

	return map[string]any{
		"post": fmt.Sprintf("Just landed: %s for $%s! Grab it before it's gone. %s",
			name, strconv.FormatFloat(price, 'f', 2, 64), strings.Join(hashtags, " ")),
	}
}

// OptimizeTitle is the rule-based title cleanup used when no model is
// available: it appends missing category and condition, title-cases the
// result, enforces the 80 character listing limit and scores the outcome.
func OptimizeTitle(payload Payload) map[string]any {
	title := strings.TrimSpace(stringField(payload, "title"))
	category := stringField(payload, "category")
	condition := stringField(payload, "condition")

	cleaned := title
	var improvements []string
	if category != "" && !strings.Contains(strings.ToLower(cleaned), strings.ToLower(category)) {
		cleaned = cleaned + " " + category
		improvements = append(improvements, fmt.Sprintf("Added category %q", category))
	}
	if condition != "" && !strings.Contains(strings.ToLower(cleaned), strings.ToLower(condition)) {
		cleaned = cleaned + " " + condition
		improvements = append(improvements, fmt.Sprintf("Added condition %q", condition))
	}

	cleaned = cases.Title(language.Und).String(cleaned)
	if len(cleaned) > 80 {
		cleaned = cleaned[:77] + "..."
	}
	if len(cleaned) != len(title) {
		improvements = append(improvements, "Cleaned and capitalized")
	}

	return map[string]any{
		"suggestedTitle": cleaned,
		"seoScore":       titleScore(cleaned),
		"reasoning":      "Rule-based title optimization",
		"improvements":   improvements,
	}
}

var (
	digitRe       = regexp.MustCompile(`\d`)
	punctuationRe = regexp.MustCompile(`[!?.,;:]`)
)

// titleScore rates a listing title 0-100 on length, word count, specificity
// and formatting, mirroring the heuristics used by the assistant UI.
func titleScore(title string) float64 {
	if title == "" {
		return 0
	}
	var score float64

	length := len(title)
	switch {
	case length >= 50 && length <= 80:
		score += 30
	case (length >= 40 && length < 50) || (length > 80 && length <= 85):
		score += 20
	default:
		score += 10
	}

	words := strings.Fields(title)
	switch {
	case len(words) >= 5 && len(words) <= 12:
		score += 25
	case (len(words) >= 3 && len(words) < 5) || (len(words) > 12 && len(words) <= 15):
		score += 15
	default:
		score += 5
	}

	if digitRe.MatchString(title) {
		score += 15
	}
	if title[0] >= 'A' && title[0] <= 'Z' {
		score += 10
	}
	if len(punctuationRe.FindAllString(title, -1)) <= 3 {
		score += 10
	} else {
		score += 5
	}

	shouting := false
	for _, w := range words {
		if len(w) > 1 && w == strings.ToUpper(w) && w != strings.ToLower(w) {
			shouting = true
			break
		}
	}
	if !shouting {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func stringField(payload Payload, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func floatField(payload Payload, key string) float64 {
	switch v := payload[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

func stringsField(payload Payload, key string) []string {
	var out []string
	switch v := payload[key].(type) {
	case []string:
		for _, s := range v {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
