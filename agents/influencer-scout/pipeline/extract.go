package pipeline

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Common obfuscations people use to hide addresses from scrapers
	atObfuscation  = regexp.MustCompile(`(?i)\[at\]|\(at\)| at | @ `)
	dotObfuscation = regexp.MustCompile(`(?i)\[dot\]|\(dot\)| dot | \. `)

	// Placeholder and template domains that are never real contacts
	excludedEmailParts = []string{
		"example.com", "domain.com", "email.com", "youremail", "noreply", "support@",
	}

	socialPatterns = map[string]*regexp.Regexp{
		"twitter":   regexp.MustCompile(`(?i)twitter\.com/([A-Za-z0-9_]+)`),
		"instagram": regexp.MustCompile(`(?i)instagram\.com/([A-Za-z0-9_.]+)`),
		"discord":   regexp.MustCompile(`(?i)discord\.gg/([A-Za-z0-9]+)`),
		"tiktok":    regexp.MustCompile(`(?i)tiktok\.com/@([A-Za-z0-9_.]+)`),
	}
)

// ExtractEmails pulls email addresses out of free-form bio text,
// normalizing common obfuscations first and dropping placeholder
// domains. Results are deduplicated with no ordering guarantee.
func ExtractEmails(text string) []string {
	if text == "" {
		return nil
	}

	text = atObfuscation.ReplaceAllString(text, "@")
	text = dotObfuscation.ReplaceAllString(text, ".")

	seen := make(map[string]bool)
	var emails []string
	for _, email := range emailPattern.FindAllString(text, -1) {
		lower := strings.ToLower(email)
		if seen[lower] {
			continue
		}
		excluded := false
		for _, part := range excludedEmailParts {
			if strings.Contains(lower, part) {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		seen[lower] = true
		emails = append(emails, email)
	}

	return emails
}

// ExtractSocialLinks finds social media handles in bio text, one per
// platform. Platforms without a match are omitted from the map.
func ExtractSocialLinks(text string) map[string]string {
	if text == "" {
		return map[string]string{}
	}

	links := make(map[string]string)
	for platform, pattern := range socialPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			links[platform] = m[1]
		}
	}

	return links
}

// ExtractBusinessTerms returns the business/sponsorship keywords found
// in the bio, in table order.
func ExtractBusinessTerms(text string, terms []string) []string {
	if text == "" {
		return nil
	}

	textLower := strings.ToLower(text)
	var found []string
	for _, term := range terms {
		if strings.Contains(textLower, term) {
			found = append(found, term)
		}
	}

	return found
}
