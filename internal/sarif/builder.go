package sarif

import (
	"fmt"

	"github.com/lintsarif/lintsarif/internal/eslint"
)

const (
	toolName           = "ESLint"
	toolInformationURI = "https://eslint.org"

	// internalErrorID is the fixed descriptor id assigned to findings that
	// carry no rule id; ESLint reports parser failures and config problems
	// this way.
	internalErrorID = "ESL0999"

	levelError   = "error"
	levelWarning = "warning"

	noCategorySentinel    = "No category provided"
	noDescriptionSentinel = "Please see details in message"
)

// Options controls how the builder translates lint results.
type Options struct {
	// IgnoreSuppressed excludes suppressed messages entirely. When false,
	// suppressed messages are merged into the stream after each file's
	// primary messages and annotated with their suppression records.
	IgnoreSuppressed bool
	// ToolVersion, when set, is recorded in the driver block and folded
	// into the full name and automation-details id.
	ToolVersion string
	// BaseFolderPath is the folder artifact URIs are made relative to.
	BaseFolderPath string
}

// builder holds one call's accumulators. A fresh builder is constructed per
// Build call, so independent calls never share state.
type builder struct {
	opts Options
	meta map[string]*eslint.RuleMeta

	artifactIndices map[string]int
	artifacts       []*Artifact
	ruleIndices     map[string]int
	rules           []*ReportingDescriptor
	results         []*Result
	notifications   []*Notification

	executionSuccessful bool
}

// Build converts an ordered sequence of ESLint results into a SARIF log
// document. It never fails on well-typed input: missing rule metadata,
// absent positions and empty suppression lists all degrade gracefully.
// rulesMeta may be nil.
func Build(results []eslint.Result, rulesMeta map[string]*eslint.RuleMeta, opts Options) *Log {
	b := &builder{
		opts:                opts,
		meta:                rulesMeta,
		artifactIndices:     make(map[string]int),
		ruleIndices:         make(map[string]int),
		results:             []*Result{},
		executionSuccessful: true,
	}

	for i := range results {
		b.addResult(&results[i])
	}

	return b.assemble()
}

// addResult processes one file's messages: primary messages first, then,
// unless suppressed messages are ignored, the suppressed ones.
func (b *builder) addResult(res *eslint.Result) {
	uri := relativeArtifactURI(b.opts.BaseFolderPath, res.FilePath)

	for i := range res.Messages {
		b.addMessage(uri, &res.Messages[i], false)
	}
	if b.opts.IgnoreSuppressed {
		return
	}
	for i := range res.SuppressedMessages {
		b.addMessage(uri, &res.SuppressedMessages[i], true)
	}
}

func (b *builder) addMessage(uri string, msg *eslint.Message, suppressed bool) {
	artifactIndex := b.artifactIndex(uri)

	level := levelWarning
	if msg.Fatal || msg.Severity == eslint.SeverityError {
		level = levelError
	}

	location := &Location{
		PhysicalLocation: PhysicalLocation{
			ArtifactLocation: ArtifactLocation{
				URI:   uri,
				Index: intPtr(artifactIndex),
			},
			Region: buildRegion(msg),
		},
	}

	if msg.RuleID == "" {
		// No rule id means the problem is with the run itself, not the
		// analyzed code; report it as a tool-configuration notification.
		b.notifications = append(b.notifications, &Notification{
			Descriptor: ReportingDescriptorReference{ID: internalErrorID},
			Level:      level,
			Message:    Message{Text: msg.Message},
			Locations:  []*Location{location},
		})
		if level == levelError {
			b.executionSuccessful = false
		}
		return
	}

	result := &Result{
		RuleID:  msg.RuleID,
		Level:   level,
		Message: Message{Text: msg.Message},
		Locations: []*Location{
			location,
		},
		PartialFingerprints: map[string]string{
			"messageTextHash": contentHash(msg.Message),
			"artifactUriHash": contentHash(uri),
			"ruleIdHash":      contentHash(msg.RuleID),
		},
	}

	if index, ok := b.ruleIndex(msg.RuleID); ok {
		result.RuleIndex = intPtr(index)
	}

	if suppressed {
		result.Suppressions = translateSuppressions(msg.Suppressions)
	}

	b.results = append(b.results, result)
}

// buildRegion returns the region for a message, or nil when the message has
// neither a position nor a snippet. A present zero position is still a
// position and must be emitted.
func buildRegion(msg *eslint.Message) *Region {
	var region *Region
	if msg.Line != nil || msg.Column != nil {
		region = &Region{
			StartLine:   msg.Line,
			StartColumn: msg.Column,
			EndLine:     msg.EndLine,
			EndColumn:   msg.EndColumn,
		}
	}
	if msg.Source != "" {
		if region == nil {
			region = &Region{}
		}
		region.Snippet = &ArtifactContent{Text: msg.Source}
	}
	return region
}

// artifactIndex returns the stable index for a file URI, registering the
// artifact on first sight. Indices follow first-occurrence order and are
// never reassigned.
func (b *builder) artifactIndex(uri string) int {
	if index, ok := b.artifactIndices[uri]; ok {
		return index
	}
	index := len(b.artifacts)
	b.artifactIndices[uri] = index
	b.artifacts = append(b.artifacts, &Artifact{
		Location: ArtifactLocation{URI: uri},
	})
	return index
}

// ruleIndex resolves the rules-table index for a rule id, registering the
// rule on first sight when its metadata resolves. Ids with no metadata get
// no table entry and no index, but the lookup stays cheap to repeat.
func (b *builder) ruleIndex(ruleID string) (int, bool) {
	if index, ok := b.ruleIndices[ruleID]; ok {
		return index, true
	}

	meta := b.meta[ruleID]
	if meta == nil {
		return 0, false
	}

	rule := &ReportingDescriptor{
		ID:   ruleID,
		Name: DeriveRuleName(ruleID),
	}
	description := noDescriptionSentinel
	category := noCategorySentinel
	if meta.Docs != nil {
		description = meta.Docs.Description
		rule.HelpURI = meta.Docs.URL
		if meta.Docs.Category != "" {
			category = meta.Docs.Category
		}
	}
	rule.ShortDescription = &MultiformatMessageString{Text: description}
	rule.Properties = PropertyBag{"category": category}

	index := len(b.rules)
	b.ruleIndices[ruleID] = index
	b.rules = append(b.rules, rule)
	return index, true
}

// translateSuppressions maps ESLint suppression records to SARIF ones:
// kind "directive" becomes "inSource", anything else "external". A missing
// record list yields an empty, non-nil translation.
func translateSuppressions(records []eslint.Suppression) []*Suppression {
	suppressions := make([]*Suppression, 0, len(records))
	for _, record := range records {
		kind := "external"
		if record.Kind == "directive" {
			kind = "inSource"
		}
		suppressions = append(suppressions, &Suppression{
			Kind:          kind,
			Justification: record.Justification,
		})
	}
	return suppressions
}

func (b *builder) assemble() *Log {
	driver := Driver{
		Name:           toolName,
		InformationURI: toolInformationURI,
	}
	automationID := toolName
	if b.opts.ToolVersion != "" {
		driver.Version = b.opts.ToolVersion
		driver.FullName = fmt.Sprintf("%s %s", toolName, b.opts.ToolVersion)
		automationID = fmt.Sprintf("%s/%s", toolName, b.opts.ToolVersion)
	}
	if len(b.rules) > 0 {
		driver.Rules = b.rules
	}

	run := &Run{
		Tool:              Tool{Driver: driver},
		AutomationDetails: &RunAutomationDetails{ID: automationID},
		Results:           b.results,
	}
	if len(b.artifacts) > 0 {
		run.Artifacts = b.artifacts
	}
	if len(b.notifications) > 0 {
		run.Invocations = []*Invocation{
			{
				ToolConfigurationNotifications: b.notifications,
				ExecutionSuccessful:            b.executionSuccessful,
			},
		}
	}

	return &Log{
		Version: Version,
		Schema:  SchemaURI,
		Runs:    []*Run{run},
	}
}

func intPtr(v int) *int {
	return &v
}
