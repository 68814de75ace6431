package rulebuilder

import "errors"

// State of a rule draft instance.
type State int

const (
	StateIdle State = iota
	StateEditing
	StateSaving
	StateCancelled
)

// Draft validation errors.
var (
	ErrNameRequired       = errors.New("rule name must not be empty")
	ErrCustomTextMissing  = errors.New("custom rules need a description")
	ErrInvalidScope       = errors.New("unknown scope")
	ErrCategoryNotInScope = errors.New("category is not allowed for this scope")
	ErrTargetNotInScope   = errors.New("target does not belong to this scope")
	ErrNotEditing         = errors.New("draft is not in the editing state")
)

// RuleFields is the persistable projection of a draft. ID zero means the
// rule has not been created yet.
type RuleFields struct {
	ID        int
	Name      string
	Scope     Scope
	TargetID  string
	Category  string
	ValidFrom string
	ValidTo   string
	RuleText  string
	IsEnabled bool
}

// Draft is the in-progress rule being authored or edited.
//
// rule_text is tagged state: while generated it silently tracks the
// structured inputs; a direct user edit that diverges from the generated
// value detaches it, and a scope or category change re-attaches it.
// Custom-category text is always user-owned.
type Draft struct {
	state      State
	dir        Directory
	fields     RuleFields
	builder    BuilderParams
	overridden bool
}

// OpenAdd starts a blank draft: University scope, that scope's default
// category, global target, enabled.
func OpenAdd(dir Directory) *Draft {
	d := &Draft{
		state: StateEditing,
		dir:   dir,
		fields: RuleFields{
			Scope:     ScopeUniversity,
			Category:  DefaultCategory(ScopeUniversity),
			TargetID:  GlobalTargetID,
			IsEnabled: true,
		},
		builder: DefaultBuilderParams(),
	}
	d.resync()
	return d
}

// OpenEdit hydrates a draft from a persisted rule. The stored text is
// kept verbatim: if it no longer matches the generator output for the
// stored inputs it is treated as user-owned, so hydrating and saving
// without modification round-trips the rule unchanged.
func OpenEdit(dir Directory, existing RuleFields) *Draft {
	if existing.TargetID == "" {
		existing.TargetID = GlobalTargetID
	}
	d := &Draft{
		state:   StateEditing,
		dir:     dir,
		fields:  existing,
		builder: DefaultBuilderParams(),
	}
	if generated, ok := d.generate(); ok && generated != existing.RuleText {
		d.overridden = true
	}
	return d
}

// State returns the draft's lifecycle state.
func (d *Draft) State() State { return d.state }

// Fields returns the current field values.
func (d *Draft) Fields() RuleFields { return d.fields }

// Builder returns the current builder parameters.
func (d *Draft) Builder() BuilderParams { return d.builder }

// RuleText returns the current description text.
func (d *Draft) RuleText() string { return d.fields.RuleText }

// SetName updates the display name.
func (d *Draft) SetName(name string) {
	d.fields.Name = name
}

// SetScope switches scope, resetting target to global and category to the
// new scope's default. Both downstream selections are invalidated by a
// scope change; this cascade is deliberate. Any manual text override is
// cleared and generation resumes.
func (d *Draft) SetScope(scope Scope) {
	d.fields.Scope = scope
	d.fields.TargetID = GlobalTargetID
	d.fields.Category = DefaultCategory(scope)
	d.overridden = false
	d.resync()
}

// SetCategory switches category without touching the target: targets are
// scope-bound, not category-bound. Clears any manual text override.
func (d *Draft) SetCategory(category string) {
	d.fields.Category = category
	d.overridden = false
	d.resync()
}

// SetTarget updates the target selection.
func (d *Draft) SetTarget(targetID string) {
	d.fields.TargetID = targetID
	d.resync()
}

// SetValidity updates the optional validity window (YYYY-MM-DD or empty).
func (d *Draft) SetValidity(from, to string) {
	d.fields.ValidFrom = from
	d.fields.ValidTo = to
	d.resync()
}

// SetEnabled toggles the rule's active flag.
func (d *Draft) SetEnabled(enabled bool) {
	d.fields.IsEnabled = enabled
}

// SetBuilder replaces the builder parameters.
func (d *Draft) SetBuilder(p BuilderParams) {
	d.builder = p
	d.resync()
}

// ToggleDay flips one weekday in the open-days selection, keeping the
// selection in canonical week order.
func (d *Draft) ToggleDay(day string) {
	d.builder.SelectedDays = ToggleDay(d.builder.SelectedDays, day)
	d.resync()
}

// SetRuleText records a manual edit of the description. Under a non-Custom
// category a divergent edit detaches the text from the generator until the
// next scope or category change; retyping the exact generated value keeps
// it attached.
func (d *Draft) SetRuleText(text string) {
	d.fields.RuleText = text
	if d.fields.Category == CategoryCustom {
		return
	}
	if generated, ok := d.generate(); ok {
		d.overridden = text != generated
	}
}

// DisplayText is the text to show: the instructive placeholder stands in
// for an empty Custom rule but is never part of the persisted payload.
func (d *Draft) DisplayText() string {
	if d.fields.Category == CategoryCustom && d.fields.RuleText == "" {
		return CustomPlaceholder
	}
	return d.fields.RuleText
}

// Save validates the draft and moves it to Saving, returning the payload
// to persist. Create vs update is decided by the caller from ID presence.
func (d *Draft) Save() (RuleFields, error) {
	if d.state != StateEditing {
		return RuleFields{}, ErrNotEditing
	}
	if err := d.Validate(); err != nil {
		return RuleFields{}, err
	}
	d.state = StateSaving
	return d.fields, nil
}

// SaveFailed returns a draft to Editing after a rejected save so the user
// can retry; no local state is rolled back because none was changed.
func (d *Draft) SaveFailed() {
	if d.state == StateSaving {
		d.state = StateEditing
	}
}

// Cancel discards the draft.
func (d *Draft) Cancel() {
	d.state = StateCancelled
}

// Validate checks the draft against the catalog and directory.
func (d *Draft) Validate() error {
	if d.fields.Name == "" {
		return ErrNameRequired
	}
	if !d.fields.Scope.Valid() {
		return ErrInvalidScope
	}
	if !CategoryAllowed(d.fields.Scope, d.fields.Category) {
		return ErrCategoryNotInScope
	}
	if !d.dir.Contains(d.fields.Scope, d.fields.TargetID) {
		return ErrTargetNotInScope
	}
	if d.fields.Category == CategoryCustom && d.fields.RuleText == "" {
		return ErrCustomTextMissing
	}
	return nil
}

// resync regenerates rule_text from the structured inputs while the text
// is still attached to the generator.
func (d *Draft) resync() {
	if d.state != StateEditing || d.overridden {
		return
	}
	if generated, ok := d.generate(); ok && generated != d.fields.RuleText {
		d.fields.RuleText = generated
	}
}

func (d *Draft) generate() (string, bool) {
	target, _ := d.dir.Resolve(d.fields.Scope, d.fields.TargetID)
	return Generate(d.fields.Scope, d.fields.TargetID, target.Name,
		d.fields.Category, d.fields.ValidFrom, d.fields.ValidTo, d.builder)
}
