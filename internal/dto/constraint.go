package dto

import (
	"time"

	"campusplan/backend/internal/model"
	"campusplan/backend/internal/rulebuilder"
)

const dateLayout = "2006-01-02"

// ConstraintRequest is the create/update payload for a scheduler constraint.
type ConstraintRequest struct {
	Name      string `json:"name" binding:"required"`
	Scope     string `json:"scope" binding:"required"`
	TargetID  string `json:"target_id"`
	Category  string `json:"category" binding:"required"`
	RuleText  string `json:"rule_text"`
	ValidFrom string `json:"valid_from"`
	ValidTo   string `json:"valid_to"`
	IsEnabled *bool  `json:"is_enabled"`
}

// ConstraintResponse mirrors a stored constraint with dates rendered as
// YYYY-MM-DD strings.
type ConstraintResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Scope     string `json:"scope"`
	TargetID  string `json:"target_id"`
	Category  string `json:"category"`
	RuleText  string `json:"rule_text"`
	ValidFrom string `json:"valid_from,omitempty"`
	ValidTo   string `json:"valid_to,omitempty"`
	IsEnabled bool   `json:"is_enabled"`
	CreatedAt string `json:"created_at"`
}

// ToConstraintResponse converts a model into its wire form.
func ToConstraintResponse(c *model.SchedulerConstraint) ConstraintResponse {
	resp := ConstraintResponse{
		ID:        c.ID,
		Name:      c.Name,
		Scope:     c.Scope,
		TargetID:  c.TargetID,
		Category:  c.Category,
		RuleText:  c.RuleText,
		IsEnabled: c.IsEnabled,
	}
	if c.ValidFrom != nil {
		resp.ValidFrom = c.ValidFrom.Format(dateLayout)
	}
	if c.ValidTo != nil {
		resp.ValidTo = c.ValidTo.Format(dateLayout)
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// ToConstraintResponses converts a slice of models.
func ToConstraintResponses(constraints []model.SchedulerConstraint) []ConstraintResponse {
	out := make([]ConstraintResponse, 0, len(constraints))
	for i := range constraints {
		out = append(out, ToConstraintResponse(&constraints[i]))
	}
	return out
}

// ParseDate parses an optional YYYY-MM-DD field.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ── rule builder ──

// PreviewRequest asks for the generated sentence for a builder state.
type PreviewRequest struct {
	Scope     string                     `json:"scope" binding:"required"`
	TargetID  string                     `json:"target_id"`
	Category  string                     `json:"category" binding:"required"`
	ValidFrom string                     `json:"valid_from"`
	ValidTo   string                     `json:"valid_to"`
	Params    *rulebuilder.BuilderParams `json:"params"`
}

// PreviewResponse carries the generated sentence. Generated is false for
// the Custom category, where no sentence exists.
type PreviewResponse struct {
	RuleText  string `json:"rule_text"`
	Generated bool   `json:"generated"`
}

// TargetsResponse lists the selectable targets for one scope.
type TargetsResponse struct {
	Scope   string               `json:"scope"`
	Targets []rulebuilder.Target `json:"targets"`
}

// CategoriesResponse lists the category options for one scope.
type CategoriesResponse struct {
	Scope      string                       `json:"scope"`
	Categories []rulebuilder.CategoryOption `json:"categories"`
}
