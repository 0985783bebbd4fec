package sarif

// Minimal SARIF v2.1.0 document model, covering the subset of the schema
// this formatter emits. Optional arrays carry omitempty so empty tables are
// dropped from the output; scalar fields that treat zero as a meaningful
// value (indices, region positions) are pointers.

const (
	// Version is the SARIF specification version of emitted documents.
	Version = "2.1.0"
	// SchemaURI points at the JSON schema for Version.
	SchemaURI = "https://json.schemastore.org/sarif-2.1.0.json"
)

// Log is the top-level SARIF document.
type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []*Run `json:"runs"`
}

// Run describes a single invocation of the analysis tool.
type Run struct {
	Tool              Tool                  `json:"tool"`
	AutomationDetails *RunAutomationDetails `json:"automationDetails,omitempty"`
	Artifacts         []*Artifact           `json:"artifacts,omitempty"`
	Results           []*Result             `json:"results"`
	Invocations       []*Invocation         `json:"invocations,omitempty"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver identifies the analysis tool and carries the rules table.
type Driver struct {
	Name           string                 `json:"name"`
	FullName       string                 `json:"fullName,omitempty"`
	InformationURI string                 `json:"informationUri"`
	Version        string                 `json:"version,omitempty"`
	Rules          []*ReportingDescriptor `json:"rules,omitempty"`
}

type RunAutomationDetails struct {
	ID string `json:"id"`
}

// ReportingDescriptor is one entry in the rules table.
type ReportingDescriptor struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name,omitempty"`
	ShortDescription *MultiformatMessageString `json:"shortDescription,omitempty"`
	HelpURI          string                    `json:"helpUri,omitempty"`
	Properties       PropertyBag               `json:"properties,omitempty"`
}

type MultiformatMessageString struct {
	Text string `json:"text"`
}

// PropertyBag holds schema-permitted free-form properties.
type PropertyBag map[string]interface{}

// Artifact is one entry in the artifacts table; results reference it by
// index into that table.
type Artifact struct {
	Location ArtifactLocation `json:"location"`
}

type ArtifactLocation struct {
	URI   string `json:"uri"`
	Index *int   `json:"index,omitempty"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           *Region          `json:"region,omitempty"`
}

// Region pins a finding inside an artifact. Positions are 1-based; a
// present zero must survive into the output, hence the pointers.
type Region struct {
	StartLine   *int             `json:"startLine,omitempty"`
	StartColumn *int             `json:"startColumn,omitempty"`
	EndLine     *int             `json:"endLine,omitempty"`
	EndColumn   *int             `json:"endColumn,omitempty"`
	Snippet     *ArtifactContent `json:"snippet,omitempty"`
}

type ArtifactContent struct {
	Text string `json:"text"`
}

type Message struct {
	Text string `json:"text"`
}

// Result is one emitted finding tied to a rule.
type Result struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           *int              `json:"ruleIndex,omitempty"`
	Level               string            `json:"level"`
	Message             Message           `json:"message"`
	Locations           []*Location       `json:"locations,omitempty"`
	PartialFingerprints map[string]string `json:"partialFingerprints,omitempty"`
	Suppressions        []*Suppression    `json:"suppressions,omitempty"`
}

// Suppression records why a finding was silenced. Justification is always
// present, defaulting to the empty string.
type Suppression struct {
	Kind          string `json:"kind"`
	Justification string `json:"justification"`
}

// Notification reports a problem with the analysis run itself rather than
// with the analyzed code.
type Notification struct {
	Descriptor ReportingDescriptorReference `json:"descriptor"`
	Level      string                       `json:"level"`
	Message    Message                      `json:"message"`
	Locations  []*Location                  `json:"locations,omitempty"`
}

type ReportingDescriptorReference struct {
	ID string `json:"id"`
}

type Invocation struct {
	ToolConfigurationNotifications []*Notification `json:"toolConfigurationNotifications"`
	ExecutionSuccessful            bool            `json:"executionSuccessful"`
}
