package domain

import (
	"regexp"
	"strings"

	m "grademill.dev/pkg/grademill/internal/model"
)

const (
	errorTagPrefix     = "[ERROR] "
	continuationIndent = "  "
	// A trailing space keeps plain "[INFO] ----" separator lines from
	// matching as step banners.
	stepBannerPrefix = "[INFO] --- "
	buildFailureBanner = "[INFO] BUILD FAILURE"
	helpBanner         = "[Help 1]"

	// Surefire prints this when the test JVM dies without the normal
	// shutdown handshake (a crash or an explicit process exit). Without the
	// synthetic diagnostic this silently looks like "zero tests ran".
	forkedVMCrashMarker = "The forked VM terminated without properly saying goodbye"
)

var (
	javaCompilationStart   = regexp.MustCompile(`\[ERROR\] COMPILATION ERROR.*`)
	kotlinCompilationStart = regexp.MustCompile(`\[INFO\] --- kotlin-maven-plugin:.*:compile.*`)
	testCompileStart       = regexp.MustCompile(`\[ERROR\] Failed to execute goal .*test-compile.*`)

	sourceRefPattern = regexp.MustCompile(`^(?:\[TEST\] )?([^\s:]+\.(?:java|kt)):(\d+)`)
)

// ExtractCompilationErrors parses the build console log into typed
// compilation diagnostics. Two independent windows are scanned, the primary
// compilation window and the test-compilation window; absence of either
// yields no records from that branch. A forked-VM crash marker anywhere in
// the log appends one language-specific synthetic diagnostic.
func ExtractCompilationErrors(lines []string, language m.Language, pathPrefix string) ([]m.Diagnostic, error) {
	if !language.Valid() {
		return nil, ErrUnsupportedLanguage
	}

	diagnostics := make([]m.Diagnostic, 0)

	if window, ok := findWindow(lines, compilationStartPattern(language), 0, isBuildFailureBanner, isStepBanner); ok {
		diagnostics = append(diagnostics, collectErrorLines(window.Lines(lines), m.OriginCompilation, language, pathPrefix)...)
	}

	if window, ok := findWindow(lines, testCompileStart, 0, containsHelpBanner); ok {
		diagnostics = append(diagnostics, collectErrorLines(window.Lines(lines), m.OriginTestCompilation, language, pathPrefix)...)
	}

	if crash := detectProcessCrash(lines, language); crash != nil {
		diagnostics = append(diagnostics, *crash)
	}

	return diagnostics, nil
}

func compilationStartPattern(language m.Language) *regexp.Regexp {
	if language == m.LanguageKotlin {
		return kotlinCompilationStart
	}

	return javaCompilationStart
}

func isBuildFailureBanner(line string) bool {
	return strings.HasPrefix(line, buildFailureBanner)
}

func isStepBanner(line string) bool {
	return strings.HasPrefix(line, stepBannerPrefix)
}

func containsHelpBanner(line string) bool {
	return strings.Contains(line, helpBanner)
}

// collectErrorLines keeps error-tagged lines and their two-space indented
// continuations, in order. Tag stripping and path rewriting happen here,
// before any de-duplication or return.
func collectErrorLines(lines []string, origin m.DiagnosticOrigin, language m.Language, pathPrefix string) []m.Diagnostic {
	diagnostics := make([]m.Diagnostic, 0)

	for _, line := range lines {
		var message string

		switch {
		case strings.HasPrefix(line, errorTagPrefix):
			message = strings.TrimPrefix(line, errorTagPrefix)
		case strings.HasPrefix(line, continuationIndent):
			// A wrapped continuation of the previous error; retained with
			// its indent so the grouping stays visible.
			message = line
		default:
			continue
		}

		message = rewriteSourcePaths(message, language, pathPrefix)
		if strings.TrimSpace(message) == "" {
			continue
		}

		diagnostics = append(diagnostics, m.Diagnostic{
			Message:   message,
			Origin:    origin,
			SourceRef: sourceRef(message),
		})
	}

	return diagnostics
}

// rewriteSourcePaths removes the absolute project prefix for main sources and
// rewrites it into a [TEST] tag for test sources, so students can tell errors
// in their own tests apart from errors in production code. Exact string
// replacement, not regex.
func rewriteSourcePaths(message string, language m.Language, pathPrefix string) string {
	mainPrefix := pathPrefix + "/src/main/" + language.SourceDir() + "/"
	testPrefix := pathPrefix + "/src/test/" + language.SourceDir() + "/"

	message = strings.ReplaceAll(message, mainPrefix, "")
	message = strings.ReplaceAll(message, testPrefix, "[TEST] ")

	return message
}

func sourceRef(message string) string {
	groups := sourceRefPattern.FindStringSubmatch(message)
	if groups == nil {
		return ""
	}

	return groups[1] + ":" + groups[2]
}

// detectProcessCrash scans the whole log, no windowing, for the surefire
// crash marker and produces a synthetic diagnostic naming the exit calls of
// the assignment's language.
func detectProcessCrash(lines []string, language m.Language) *m.Diagnostic {
	for _, line := range lines {
		if !strings.Contains(line, forkedVMCrashMarker) {
			continue
		}

		message := "The test process terminated unexpectedly. Make sure your code never calls System.exit."
		if language == m.LanguageKotlin {
			message = "The test process terminated unexpectedly. Make sure your code never calls System.exit or exitProcess."
		}

		return &m.Diagnostic{Message: message, Origin: m.OriginCompilation}
	}

	return nil
}
