package eslint

// Result represents one analyzed file's findings as produced by ESLint's
// JSON formatter output.
type Result struct {
	FilePath           string    `json:"filePath"`
	Messages           []Message `json:"messages"`
	SuppressedMessages []Message `json:"suppressedMessages,omitempty"`
	ErrorCount         int       `json:"errorCount,omitempty"`
	WarningCount       int       `json:"warningCount,omitempty"`
}

// Message is a single diagnostic. Positions are 1-based and pointer-typed:
// ESLint omits them for file-level problems, and an explicit zero is still
// a value that must reach the output.
type Message struct {
	RuleID       string        `json:"ruleId"`
	Severity     int           `json:"severity"`
	Fatal        bool          `json:"fatal,omitempty"`
	Message      string        `json:"message"`
	Line         *int          `json:"line,omitempty"`
	Column       *int          `json:"column,omitempty"`
	EndLine      *int          `json:"endLine,omitempty"`
	EndColumn    *int          `json:"endColumn,omitempty"`
	Source       string        `json:"source,omitempty"`
	Suppressions []Suppression `json:"suppressions,omitempty"`
}

// Suppression records why a message was silenced. Kind "directive" means an
// in-source disable comment; anything else is an external allow-list.
type Suppression struct {
	Kind          string `json:"kind"`
	Justification string `json:"justification"`
}

// SeverityError is ESLint's numeric code for error-level diagnostics.
const SeverityError = 2

// RuleMeta is the static metadata ESLint exposes per rule id. Entries for
// unknown ids resolve to nil.
type RuleMeta struct {
	Docs *RuleDocs `json:"docs"`
}

type RuleDocs struct {
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}
