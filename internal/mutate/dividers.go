package mutate

import "navrail-cli/internal/model"

// AddDivider creates a cosmetic separator after the last module
// (position = len(moduleOrder) - 1).
func AddDivider(cfg *model.ModuleConfig) (Result, error) {
	out := cfg.Clone()
	d := model.SectionDivider{
		ID:       newID(model.DividerPrefix),
		Position: len(out.ModuleOrder) - 1,
		Enabled:  true,
	}
	out.Dividers = append(out.Dividers, d)
	return Result{
		Config:  out,
		Changed: true,
		ID:      d.ID,
		Event:   "divider.add",
		Payload: map[string]any{"divider": d.ID, "position": d.Position},
	}, nil
}

// RemoveDivider deletes a divider by id.
func RemoveDivider(cfg *model.ModuleConfig, dividerID string) (Result, error) {
	dividerID = trim(dividerID)
	if cfg.FindDivider(dividerID) == nil {
		return Result{}, NotFoundError{Kind: "divider", ID: dividerID}
	}
	out := cfg.Clone()
	kept := out.Dividers[:0]
	for _, d := range out.Dividers {
		if d.ID != dividerID {
			kept = append(kept, d)
		}
	}
	out.Dividers = kept
	return Result{
		Config:  out,
		Changed: true,
		ID:      dividerID,
		Event:   "divider.remove",
		Payload: map[string]any{"divider": dividerID},
	}, nil
}
