package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "grademill.dev/pkg/grademill/internal/model"
)

const submissionPrefix = "/work/submissions/group-a"

func javaCompilationLog() []string {
	return []string{
		"[INFO] Scanning for projects...",
		"[INFO] --- maven-compiler-plugin:3.13.0:compile (default-compile) @ assignment ---",
		"[ERROR] COMPILATION ERROR : ",
		"[INFO] -------------------------------------------------------------",
		"[ERROR] " + submissionPrefix + "/src/main/java/Foo.java:3: error: ';' expected",
		"  int x = 5",
		"[ERROR] " + submissionPrefix + "/src/test/java/FooTest.java:10: error: cannot find symbol",
		"[INFO] 2 errors",
		"[INFO] BUILD FAILURE",
		"[INFO] Total time: 2.718 s",
	}
}

func TestExtractCompilationErrors_JavaWindow(t *testing.T) {
	diagnostics, err := ExtractCompilationErrors(javaCompilationLog(), m.LanguageJava, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, diagnostics, 3)

	assert.Equal(t, "Foo.java:3: error: ';' expected", diagnostics[0].Message)
	assert.Equal(t, m.OriginCompilation, diagnostics[0].Origin)
	assert.Equal(t, "Foo.java:3", diagnostics[0].SourceRef)

	assert.Equal(t, "  int x = 5", diagnostics[1].Message, "continuation lines keep their indent")

	assert.Equal(t, "[TEST] FooTest.java:10: error: cannot find symbol", diagnostics[2].Message)
	assert.Equal(t, "FooTest.java:10", diagnostics[2].SourceRef)
}

func TestExtractCompilationErrors_NoStartMarker(t *testing.T) {
	lines := []string{"[INFO] Scanning for projects...", "[INFO] BUILD SUCCESS"}

	diagnostics, err := ExtractCompilationErrors(lines, m.LanguageJava, submissionPrefix)
	require.NoError(t, err)

	assert.Empty(t, diagnostics)
}

func TestExtractCompilationErrors_TruncatedWindowIsEmpty(t *testing.T) {
	// A crashed build can cut the log off before any end marker appears.
	lines := []string{
		"[ERROR] COMPILATION ERROR : ",
		"[ERROR] " + submissionPrefix + "/src/main/java/Foo.java:3: error: ';' expected",
	}

	diagnostics, err := ExtractCompilationErrors(lines, m.LanguageJava, submissionPrefix)
	require.NoError(t, err)

	assert.Empty(t, diagnostics)
}

func TestExtractCompilationErrors_KotlinCompileBanner(t *testing.T) {
	lines := []string{
		"[INFO] --- kotlin-maven-plugin:1.9.24:compile (compile) @ assignment ---",
		"[ERROR] " + submissionPrefix + "/src/main/kotlin/Bar.kt: (4, 1) Expecting a top level declaration",
		"[INFO] BUILD FAILURE",
	}

	diagnostics, err := ExtractCompilationErrors(lines, m.LanguageKotlin, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)

	assert.Equal(t, "Bar.kt: (4, 1) Expecting a top level declaration", diagnostics[0].Message)
}

func TestExtractCompilationErrors_TestCompileWindow(t *testing.T) {
	lines := []string{
		"[ERROR] Failed to execute goal org.apache.maven.plugins:maven-compiler-plugin:3.13.0:testCompile (default-test-compile) on project assignment",
		"[ERROR] " + submissionPrefix + "/src/test/java/BarTest.java:7: error: cannot find symbol",
		"[ERROR] For more information about the errors, re-run Maven with the -e switch. [Help 1]",
	}

	diagnostics, err := ExtractCompilationErrors(lines, m.LanguageJava, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)

	assert.Equal(t, m.OriginTestCompilation, diagnostics[0].Origin)
	assert.Equal(t, "[TEST] BarTest.java:7: error: cannot find symbol", diagnostics[0].Message)
}

func TestExtractCompilationErrors_ForkedVMCrash(t *testing.T) {
	lines := []string{
		"[INFO] Running FooTest",
		"[ERROR] The forked VM terminated without properly saying goodbye. VM crash or System.exit called?",
	}

	diagnostics, err := ExtractCompilationErrors(lines, m.LanguageJava, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)

	assert.Contains(t, diagnostics[0].Message, "System.exit")
	assert.NotContains(t, diagnostics[0].Message, "exitProcess")

	diagnostics, err = ExtractCompilationErrors(lines, m.LanguageKotlin, submissionPrefix)
	require.NoError(t, err)
	require.Len(t, diagnostics, 1)

	assert.Contains(t, diagnostics[0].Message, "exitProcess")
}

func TestExtractCompilationErrors_UnsupportedLanguage(t *testing.T) {
	_, err := ExtractCompilationErrors(javaCompilationLog(), m.Language("scala"), submissionPrefix)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestExtractCompilationErrors_Deterministic(t *testing.T) {
	first, err := ExtractCompilationErrors(javaCompilationLog(), m.LanguageJava, submissionPrefix)
	require.NoError(t, err)

	second, err := ExtractCompilationErrors(javaCompilationLog(), m.LanguageJava, submissionPrefix)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
