// File path: internal/insight/extract.go
package insight

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	sectionMaxLen      = 500
	sectionWindow      = 400
	sectionContextLine = 15
)

var (
	gradeRE    = regexp.MustCompile(`\b[A-F](?:[+-]|\b)`)
	bulletRE   = regexp.MustCompile(`^\s*[•\-\*]\s*(.+)$`)
	numericRE  = regexp.MustCompile(`\$?\d{1,3}(?:,\d{3})*(?:\.\d+)?`)
	percentRE  = regexp.MustCompile(`(\d{1,3})\s*%`)
	emphasisRE = regexp.MustCompile(`\*\*?|__?|##+\s*`)
	highSignRE = regexp.MustCompile(`(?i)\b(high(ly)?|strong|significant|urgent)\b`)
	lowSignRE  = regexp.MustCompile(`(?i)\b(low|minimal|unlikely|weak)\b`)
	moderateRE = regexp.MustCompile(`(?i)\b(moderate|average|fair|possible)\b`)
)

// ExtractGrade returns the last letter-grade token anywhere in the text, or
// fallback when none matches. Later mentions win so that a corrected or
// concluding grade overrides earlier ones.
func ExtractGrade(text, fallback string) string {
	matches := gradeRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return fallback
	}
	return matches[len(matches)-1]
}

// ExtractScore looks for "N/10" after any keyword and clamps the result to
// [1, 10]. When no explicit score appears, sentiment words near a keyword
// map to 8 (high), 6 (moderate), or 3 (low); otherwise fallback is used.
func ExtractScore(text string, keywords []string, fallback int) int {
	for _, kw := range keywords {
		// Same-line only, so a score for a different topic further down the
		// prose is never attributed to this keyword.
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw) + `[^\n]*?(\d{1,2})\s*/\s*10`)
		if m := re.FindStringSubmatch(text); m != nil {
			score, err := strconv.Atoi(m[1])
			if err == nil {
				if score < 1 {
					score = 1
				}
				if score > 10 {
					score = 10
				}
				return score
			}
		}
	}

	for _, region := range keywordRegions(text, keywords) {
		switch {
		case highSignRE.MatchString(region):
			return 8
		case moderateRE.MatchString(region):
			return 6
		case lowSignRE.MatchString(region):
			return 3
		}
	}
	return fallback
}

// ExtractPercentage finds a percentage near any keyword and renders it as
// "N% - <band> <label>", where the band is High above 70, Moderate from 40
// to 70, and Low below 40.
func ExtractPercentage(text string, keywords []string, label, fallback string) string {
	for _, region := range keywordRegions(text, keywords) {
		m := percentRE.FindStringSubmatch(region)
		if m == nil {
			continue
		}
		pct, err := strconv.Atoi(m[1])
		if err != nil || pct > 100 {
			continue
		}
		band := "Moderate"
		switch {
		case pct > 70:
			band = "High"
		case pct < 40:
			band = "Low"
		}
		return fmt.Sprintf("%d%% - %s %s", pct, band, label)
	}
	return fallback
}

// ExtractSection collects prose lines mentioning any keyword. Each hit
// contributes its own line plus up to two substantial following lines; the
// first three hits are joined and truncated to a readable length.
func ExtractSection(text string, keywords []string, fallback string) string {
	lines := strings.Split(text, "\n")
	var collected []string
	hits := 0

	for i, line := range lines {
		if hits >= 3 {
			break
		}
		if !containsAnyFold(line, keywords) {
			continue
		}
		hits++
		chunk := []string{strings.TrimSpace(line)}
		for j := i + 1; j < len(lines) && len(chunk) < 3; j++ {
			follow := strings.TrimSpace(lines[j])
			if len(follow) <= sectionContextLine {
				break
			}
			if containsAnyFold(follow, keywords) {
				break
			}
			chunk = append(chunk, follow)
		}
		collected = append(collected, strings.Join(chunk, " "))
	}

	if len(collected) == 0 {
		return fallback
	}
	section := emphasisRE.ReplaceAllString(strings.Join(collected, " "), "")
	section = strings.Join(strings.Fields(section), " ")
	return truncateWithEllipsis(section, sectionMaxLen)
}

// truncateWithEllipsis shortens s to at most max bytes plus an ellipsis,
// backing up to a rune boundary so multibyte text stays valid UTF-8.
func truncateWithEllipsis(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// ExtractList gathers up to limit bullet-point lines that mention any of the
// keywords. Keywords may be empty, in which case every bullet qualifies.
func ExtractList(text string, keywords []string, limit int) []string {
	if limit <= 0 {
		limit = 3
	}
	var items []string
	for _, line := range strings.Split(text, "\n") {
		m := bulletRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.TrimSpace(emphasisRE.ReplaceAllString(m[1], ""))
		if item == "" {
			continue
		}
		if len(keywords) > 0 && !containsAnyFold(item, keywords) {
			continue
		}
		items = append(items, item)
		if len(items) >= limit {
			break
		}
	}
	return items
}

// ExtractNumeric finds the first dollar-style figure near any keyword and
// returns it as a float with grouping commas stripped. The second return is
// false when no figure was found.
func ExtractNumeric(text string, keywords []string) (float64, bool) {
	for _, region := range keywordRegions(text, keywords) {
		m := numericRE.FindString(region)
		if m == "" {
			continue
		}
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(m)
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		return value, true
	}
	return 0, false
}

// keywordRegions returns, for each keyword present in the text, the window
// of text starting at the keyword. Regions preserve keyword order in the
// keywords slice, not position in the text.
func keywordRegions(text string, keywords []string) []string {
	lower := strings.ToLower(text)
	var regions []string
	for _, kw := range keywords {
		idx := strings.Index(lower, strings.ToLower(kw))
		if idx < 0 {
			continue
		}
		end := idx + sectionWindow
		if end > len(text) {
			end = len(text)
		}
		regions = append(regions, text[idx:end])
	}
	return regions
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
