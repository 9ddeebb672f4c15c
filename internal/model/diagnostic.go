// Package model defines the data structures for submission evaluation.
package model

// Path represents a file system path.
type Path string

// Language identifies the toolchain an assignment is built with.
type Language string

const (
	// LanguageJava marks assignments built with javac/surefire conventions.
	LanguageJava Language = "java"
	// LanguageKotlin marks assignments built with the kotlin-maven toolchain.
	LanguageKotlin Language = "kotlin"
)

// Valid reports whether the language is one of the supported toolchains.
func (l Language) Valid() bool {
	return l == LanguageJava || l == LanguageKotlin
}

// SourceDir returns the language-specific source directory component
// (e.g. "java" in src/main/java).
func (l Language) SourceDir() string {
	return string(l)
}

// DiagnosticOrigin identifies which build phase produced a diagnostic.
type DiagnosticOrigin string

const (
	// OriginCompilation marks errors from compiling production sources.
	OriginCompilation DiagnosticOrigin = "compilation"
	// OriginTestCompilation marks errors from compiling test sources.
	OriginTestCompilation DiagnosticOrigin = "test-compilation"
	// OriginStyle marks static-analysis (style/lint) findings.
	OriginStyle DiagnosticOrigin = "style"
)

// Diagnostic is one typed record extracted from build-tool console output.
type Diagnostic struct {
	Message string           `yaml:"message"`
	Origin  DiagnosticOrigin `yaml:"origin"`
	// SourceRef is the "file:line" head of the message when one could be
	// recognized, empty otherwise.
	SourceRef string `yaml:"source_ref,omitempty"`
}
