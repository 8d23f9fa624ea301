package policy

// Version identifies the policy revision embedded in every public record.
const Version = "Law7Gate-1.0"

// DefaultNotes is attached to records when no custom notes are supplied.
const DefaultNotes = "symbolic_adjudication_clause_20; memory_isolation_request_202508"

// DefaultRedactions lists the field names stripped from any public-facing
// record of a session.
func DefaultRedactions() []string {
	return []string{
		"seed_text",
		"node_text",
		"ground_text",
		"user_content",
		"prompt_text",
	}
}

// Record is the serializable envelope wrapping a decision for disclosure.
// It carries no decision logic of its own.
type Record struct {
	Version    string   `json:"version"`
	Mode       string   `json:"mode"`
	PublicSafe bool     `json:"public_safe"`
	Redactions []string `json:"redactions"`
	Notes      string   `json:"notes"`
	Decision   Decision `json:"decision"`
}

// RecordOption configures a Record.
type RecordOption func(*Record)

// WithNotes overrides the default notes text.
func WithNotes(notes string) RecordOption {
	return func(r *Record) {
		r.Notes = notes
	}
}

// WithRedactions overrides the default redaction field list.
func WithRedactions(fields []string) RecordOption {
	return func(r *Record) {
		r.Redactions = fields
	}
}

// WithPublicSafe sets the public-safety flag (default true).
func WithPublicSafe(safe bool) RecordOption {
	return func(r *Record) {
		r.PublicSafe = safe
	}
}

// NewRecord wraps a decision plus the fixed policy version into an envelope.
func NewRecord(decision Decision, mode string, opts ...RecordOption) Record {
	rec := Record{
		Version:    Version,
		Mode:       mode,
		PublicSafe: true,
		Redactions: DefaultRedactions(),
		Notes:      DefaultNotes,
		Decision:   decision,
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}
