package mutate

import (
	"errors"
	"strings"
	"testing"

	"navrail-cli/internal/catalog"
	"navrail-cli/internal/model"
)

func TestAddDivider(t *testing.T) {
	cfg := catalog.DefaultConfig()

	res, err := AddDivider(cfg)
	if err != nil {
		t.Fatalf("AddDivider error: %v", err)
	}
	if len(res.Config.Dividers) != 1 {
		t.Fatalf("expected one divider; got %d", len(res.Config.Dividers))
	}
	d := res.Config.Dividers[0]
	if !strings.HasPrefix(d.ID, model.DividerPrefix) {
		t.Fatalf("divider id %q missing %q prefix", d.ID, model.DividerPrefix)
	}
	if d.Position != len(cfg.ModuleOrder)-1 {
		t.Fatalf("position %d; want after last module %d", d.Position, len(cfg.ModuleOrder)-1)
	}
	if len(cfg.Dividers) != 0 {
		t.Fatalf("input config must not be mutated")
	}
}

func TestRemoveDivider(t *testing.T) {
	cfg := catalog.DefaultConfig()
	res, err := AddDivider(cfg)
	if err != nil {
		t.Fatalf("AddDivider error: %v", err)
	}

	res2, err := RemoveDivider(res.Config, res.ID)
	if err != nil {
		t.Fatalf("RemoveDivider error: %v", err)
	}
	if len(res2.Config.Dividers) != 0 {
		t.Fatalf("divider should be gone; got %+v", res2.Config.Dividers)
	}

	var nf NotFoundError
	if _, err := RemoveDivider(cfg, "div-missing"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError; got %v", err)
	}
}
