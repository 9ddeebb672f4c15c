package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "grademill.dev/pkg/grademill/internal/model"
)

func checkstyleLog() []string {
	return []string{
		"[INFO] --- maven-checkstyle-plugin:3.3.1:check (default) @ assignment ---",
		"[INFO] Starting audit...",
		"[WARN] " + submissionPrefix + "/src/main/java/Foo.java:12: Missing a Javadoc comment.",
		"[WARN] " + submissionPrefix + "/src/main/java/Foo.java:30: Line is longer than 120 characters.",
		"Audit done.",
		"[INFO] BUILD SUCCESS",
	}
}

func detektLog() []string {
	return []string{
		"[INFO] --- detekt-maven-plugin:1.23.6:check (detekt) @ assignment ---",
		"[INFO] Ruleset: style",
		"\tMagicNumber - [score] at " + submissionPrefix + "/src/main/kotlin/Game.kt:14:20",
		"\t- debt: 10min",
		"\tMagicNumber - [score] at " + submissionPrefix + "/src/main/kotlin/Game.kt:14:20",
		"\tUnknownRule - something the table does not know",
		"detekt finished in 512 ms",
		"[INFO] BUILD SUCCESS",
	}
}

func TestExtractStyleFindings_Checkstyle(t *testing.T) {
	findings, err := ExtractStyleFindings(checkstyleLog(), m.LanguageJava, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	assert.Equal(t, "Foo.java:12: Missing a Javadoc comment.", findings[0].Message)
	assert.Equal(t, m.OriginStyle, findings[0].Origin)
	assert.Equal(t, "Foo.java:12", findings[0].SourceRef)
}

func TestExtractStyleFindings_CheckstyleWithoutAuditBanner(t *testing.T) {
	lines := []string{"[INFO] Scanning for projects...", "[INFO] BUILD SUCCESS"}

	findings, err := ExtractStyleFindings(lines, m.LanguageJava, submissionPrefix)
	require.NoError(t, err)

	assert.Empty(t, findings)
}

func TestExtractStyleFindings_DetektTranslatesAndDeduplicates(t *testing.T) {
	findings, err := ExtractStyleFindings(detektLog(), m.LanguageKotlin, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, findings, 2)

	// The duplicated MagicNumber finding collapses to its first occurrence,
	// translated through the rule table.
	assert.Equal(t, "A number should be given a named constant instead of appearing as a literal - [score] at Game.kt:14:20", findings[0].Message)

	// Unknown rules pass through unchanged.
	assert.Equal(t, "UnknownRule - something the table does not know", findings[1].Message)
}

func TestExtractStyleFindings_DetektExcludesSubBullets(t *testing.T) {
	findings, err := ExtractStyleFindings(detektLog(), m.LanguageKotlin, submissionPrefix)
	require.NoError(t, err)

	for _, finding := range findings {
		assert.NotContains(t, finding.Message, "debt:")
	}
}

func TestExtractStyleFindings_DetektEndsAtNextStepBanner(t *testing.T) {
	// Newer plugin versions print no finish marker; the next build step
	// terminates the window instead.
	lines := []string{
		"[INFO] --- detekt-maven-plugin:1.23.6:check (detekt) @ assignment ---",
		"[INFO] Ruleset: style",
		"\tWildcardImport - at " + submissionPrefix + "/src/main/kotlin/Game.kt:1:1",
		"[INFO] --- maven-surefire-plugin:3.2.5:test (default-test) @ assignment ---",
	}

	findings, err := ExtractStyleFindings(lines, m.LanguageKotlin, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, findings, 1)

	assert.Equal(t, "Import the classes you need instead of using a wildcard import - at Game.kt:1:1", findings[0].Message)
}

func TestExtractStyleFindings_UnsupportedLanguage(t *testing.T) {
	_, err := ExtractStyleFindings(detektLog(), m.Language("scala"), submissionPrefix)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestIsStyleCheckActive(t *testing.T) {
	active, err := IsStyleCheckActive(checkstyleLog(), m.LanguageJava)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = IsStyleCheckActive(detektLog(), m.LanguageKotlin)
	require.NoError(t, err)
	assert.True(t, active)

	active, err = IsStyleCheckActive([]string{"[INFO] BUILD SUCCESS"}, m.LanguageJava)
	require.NoError(t, err)
	assert.False(t, active)

	_, err = IsStyleCheckActive(nil, m.Language("scala"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestIsStyleCheckActive_TruncatedWindowStillActive(t *testing.T) {
	// The banner appeared, so the check ran, even though the window never
	// resolves and yields no findings.
	lines := []string{"[INFO] Starting audit..."}

	active, err := IsStyleCheckActive(lines, m.LanguageJava)
	require.NoError(t, err)
	assert.True(t, active)

	findings, err := ExtractStyleFindings(lines, m.LanguageJava, submissionPrefix)
	require.NoError(t, err)
	assert.Empty(t, findings)
}
