package registry

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"modelhub/internal/models"
)

type fakeModel struct{ models.Base }

func (fakeModel) Process(context.Context, models.Input) (models.Output, error) {
	return models.Output{}, nil
}

func factory(t models.ModelType, name string) models.Factory {
	return func() (models.Model, error) { return fakeModel{models.MustBase(t, name)}, nil }
}

func TestDiscoverKeepsOrderAndLowercases(t *testing.T) {
	src := models.UnitList{
		{Name: "echo", Factory: factory(models.TypeChat, "Echo")},
		{Name: "pysummary", Factory: factory(models.TypeSummarize, "py-summary")},
	}
	cat := Discover(src, zerolog.Nop())
	got := cat.Names()
	if len(got) != 2 || got[0] != "echo" || got[1] != "py-summary" {
		t.Fatalf("names=%v", got)
	}
	if cat.Discovered[1].Type != models.TypeSummarize {
		t.Fatalf("type=%s", cat.Discovered[1].Type)
	}
	if _, ok := cat.Factory("echo"); !ok {
		t.Fatalf("expected echo factory")
	}
	if _, ok := cat.Factory("Echo"); ok {
		t.Fatalf("factory lookup expects lowercase keys")
	}
}

func TestDiscoverSkipsFailingUnits(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	src := models.UnitList{
		{Name: "panics", Factory: func() (models.Model, error) { panic("bad import") }},
		{Name: "errs", Factory: func() (models.Model, error) { return nil, errors.New("no key") }},
		{Name: "abstract", Factory: func() (models.Model, error) { return fakeModel{}, nil }},
		{Name: "nilfactory"},
		{Name: "echo", Factory: factory(models.TypeChat, "echo")},
	}
	cat := Discover(src, log)
	if got := cat.Names(); len(got) != 1 || got[0] != "echo" {
		t.Fatalf("names=%v", got)
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "error loading model") {
		t.Fatalf("expected load error logged at error level: %s", out)
	}
	if !strings.Contains(out, "failed to initialize model") {
		t.Fatalf("expected init failure warning: %s", out)
	}
}

func TestDiscoverDuplicateNameKeepsDescriptorsLaterFactoryWins(t *testing.T) {
	src := models.UnitList{
		{Name: "a", Factory: factory(models.TypeChat, "dup")},
		{Name: "b", Factory: factory(models.TypeChat, "other")},
		{Name: "c", Factory: factory(models.TypeSummarize, "DUP")},
	}
	cat := Discover(src, zerolog.Nop())
	want := []Descriptor{
		{Name: "dup", Type: models.TypeChat},
		{Name: "other", Type: models.TypeChat},
		{Name: "dup", Type: models.TypeSummarize},
	}
	if !reflect.DeepEqual(cat.Discovered, want) {
		t.Fatalf("discovered=%v want %v", cat.Discovered, want)
	}
	if len(cat.Factories) != 2 {
		t.Fatalf("factories=%d want 2", len(cat.Factories))
	}
	f, _ := cat.Factory("dup")
	m, _ := f()
	if m.Type() != models.TypeSummarize {
		t.Fatalf("expected later registration to win, got %s", m.Type())
	}
}

func TestDiscoverNilSource(t *testing.T) {
	cat := Discover(nil, zerolog.Nop())
	if len(cat.Discovered) != 0 || cat.Factories == nil {
		t.Fatalf("expected empty catalog, got %+v", cat)
	}
}
