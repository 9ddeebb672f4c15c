package domain

import (
	"regexp"
	"strings"

	m "grademill.dev/pkg/grademill/internal/model"
)

const (
	warnTagPrefix    = "[WARN] "
	auditDoneBanner  = "Audit done."
	detektDoneMarker = "detekt finished"
	subBulletPrefix  = "\t-"
)

var (
	checkstyleAuditStart = regexp.MustCompile(`(\[INFO\] )?Starting audit\.\.\..*`)
	detektStepStart      = regexp.MustCompile(`\[INFO\] --- detekt-maven-plugin:.*`)
)

// styleRuleTranslations rewrites terse detekt rule identifiers into
// explanations students can act on. Keys are disjoint rule names, so plain
// prefix matching suffices.
var styleRuleTranslations = map[string]string{
	"MagicNumber":         "A number should be given a named constant instead of appearing as a literal",
	"FunctionNaming":      "Function names should use lowerCamelCase",
	"EmptyFunctionBlock":  "A function body should not be empty",
	"WildcardImport":      "Import the classes you need instead of using a wildcard import",
	"LongMethod":          "This function is too long and should be split up",
	"ComplexCondition":    "This condition is too complex and should be simplified or extracted",
	"UnusedPrivateMember": "This private member is never used and should be removed",
	"TooManyFunctions":    "This file declares too many functions and should be split up",
	"MaxLineLength":       "This line is too long",
	"ReturnCount":         "This function has too many return statements",
}

// IsStyleCheckActive reports whether the style plugin for the language ran at
// all, independent of whether its output window resolves.
func IsStyleCheckActive(lines []string, language m.Language) (bool, error) {
	if !language.Valid() {
		return false, ErrUnsupportedLanguage
	}

	start := styleStartPattern(language)
	for _, line := range lines {
		if matchesWholeLine(start, line) {
			return true, nil
		}
	}

	return false, nil
}

// ExtractStyleFindings parses the static-analysis findings of the build log.
// As with compilation errors, an unresolved window yields an empty result.
func ExtractStyleFindings(lines []string, language m.Language, pathPrefix string) ([]m.Diagnostic, error) {
	switch language {
	case m.LanguageJava:
		return checkstyleFindings(lines, pathPrefix), nil
	case m.LanguageKotlin:
		return detektFindings(lines, pathPrefix), nil
	default:
		return nil, ErrUnsupportedLanguage
	}
}

func styleStartPattern(language m.Language) *regexp.Regexp {
	if language == m.LanguageKotlin {
		return detektStepStart
	}

	return checkstyleAuditStart
}

// checkstyleFindings keeps warning-tagged lines between the audit banners.
func checkstyleFindings(lines []string, pathPrefix string) []m.Diagnostic {
	window, ok := findWindow(lines, checkstyleAuditStart, 0, func(line string) bool {
		return strings.Contains(line, auditDoneBanner)
	})
	if !ok {
		return []m.Diagnostic{}
	}

	findings := make([]m.Diagnostic, 0)

	for _, line := range window.Lines(lines) {
		if !strings.HasPrefix(line, warnTagPrefix) {
			continue
		}

		message := stripStylePaths(strings.TrimPrefix(line, warnTagPrefix), m.LanguageJava, pathPrefix)
		if strings.TrimSpace(message) == "" {
			continue
		}

		findings = append(findings, m.Diagnostic{
			Message:   message,
			Origin:    m.OriginStyle,
			SourceRef: sourceRef(message),
		})
	}

	return findings
}

// detektFindings keeps tab-indented finding lines between the detekt step
// banner and its version-dependent end: older plugin versions print a finish
// marker, newer ones run straight into the next build step. The end scan
// skips one line past the start so the banner's own continuation is never
// mistaken for the end.
func detektFindings(lines []string, pathPrefix string) []m.Diagnostic {
	window, ok := findWindow(lines, detektStepStart, 1, func(line string) bool {
		return strings.Contains(line, detektDoneMarker) || isStepBanner(line)
	})
	if !ok {
		return []m.Diagnostic{}
	}

	findings := make([]m.Diagnostic, 0)
	seen := make(map[string]struct{})

	for _, line := range window.Lines(lines) {
		if !strings.HasPrefix(line, "\t") || strings.HasPrefix(line, subBulletPrefix) {
			continue
		}

		message := stripStylePaths(strings.TrimLeft(line, "\t"), m.LanguageKotlin, pathPrefix)
		message = translateStyleRule(message)

		if strings.TrimSpace(message) == "" {
			continue
		}

		// The same rule often fires identically on repeated boilerplate;
		// collapse duplicates keeping first-seen order.
		if _, dup := seen[message]; dup {
			continue
		}

		seen[message] = struct{}{}

		findings = append(findings, m.Diagnostic{
			Message: message,
			Origin:  m.OriginStyle,
		})
	}

	return findings
}

func stripStylePaths(message string, language m.Language, pathPrefix string) string {
	message = strings.ReplaceAll(message, pathPrefix+"/src/main/"+language.SourceDir()+"/", "")
	message = strings.ReplaceAll(message, pathPrefix+"/src/test/"+language.SourceDir()+"/", "")

	return message
}

// translateStyleRule rewrites a finding whose head is a known rule identifier.
// Unknown lines pass through unchanged.
func translateStyleRule(message string) string {
	for rule, explanation := range styleRuleTranslations {
		if strings.HasPrefix(message, rule) {
			return explanation + strings.TrimPrefix(message, rule)
		}
	}

	return message
}
