package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-userform/pkg/model"
)

func TestDecoratorsApplyInOrder(t *testing.T) {
	var calls []string
	record := func(name string) model.Decorator {
		return model.DecoratorFunc(func(form *model.FormModel) error {
			calls = append(calls, name)
			form.Title += name
			return nil
		})
	}

	form := model.FormModel{}
	chain := model.Decorators{record("a"), nil, record("b")}
	if err := chain.Decorate(&form); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, calls); diff != "" {
		t.Fatalf("call order mismatch (-want +got):\n%s", diff)
	}
	if form.Title != "ab" {
		t.Fatalf("unexpected title %q", form.Title)
	}
}

func TestDecoratorsStopOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	chain := model.Decorators{
		model.DecoratorFunc(func(*model.FormModel) error { return boom }),
		model.DecoratorFunc(func(*model.FormModel) error { called = true; return nil }),
	}
	if err := chain.Decorate(&model.FormModel{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if called {
		t.Fatalf("decorators after a failure must not run")
	}
}
