package uischema_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/goliatone/go-userform/pkg/uischema"
)

func TestLoadFS_JSONAndYAML(t *testing.T) {
	store := loadStore(t, "basic")
	if store.Empty() {
		t.Fatalf("expected store to contain operations")
	}

	op, ok := store.Operation("contact")
	if !ok {
		t.Fatalf("operation contact not found")
	}
	if op.Form.Title != "Contact us" {
		t.Fatalf("title mismatch: %q", op.Form.Title)
	}
	if len(op.Order) != 2 || op.Order[0] != "topic" {
		t.Fatalf("order mismatch: %#v", op.Order)
	}

	email := op.Fields["email"]
	if strings.Contains(email.HelpText, "script") {
		t.Fatalf("expected script to be stripped from help text, got %q", email.HelpText)
	}
	if !strings.HasPrefix(email.HelpText, "We reply within a day.") {
		t.Fatalf("help text mangled: %q", email.HelpText)
	}

	if _, ok := store.Operation("newsletter"); !ok {
		t.Fatalf("yaml operation newsletter not found")
	}
}

func TestLoadFS_DuplicateOperation(t *testing.T) {
	if _, err := uischema.LoadFS(subDirFS(t, "invalid_duplicate")); err == nil {
		t.Fatalf("expected duplicate operation error")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := uischema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil fs: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadDefault_UserInfoOverlay(t *testing.T) {
	store, err := uischema.LoadDefault()
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	op, ok := store.Operation("submitUserInfo")
	if !ok {
		t.Fatalf("submitUserInfo overlay missing")
	}
	if op.Form.SuccessMessage != "Form submitted successfully!" {
		t.Fatalf("success message mismatch: %q", op.Form.SuccessMessage)
	}
	if got := op.Fields["hobbies"].HelpText; got != "Pick <em>at least one</em>." {
		t.Fatalf("inline formatting should survive sanitising, got %q", got)
	}
}

func loadStore(t *testing.T, subdir string) *uischema.Store {
	t.Helper()
	store, err := uischema.LoadFS(subDirFS(t, subdir))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return store
}

func subDirFS(t *testing.T, subdir string) fs.FS {
	t.Helper()
	base := os.DirFS(testdataRoot())
	fsys, err := fs.Sub(base, subdir)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}

func testdataRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "testdata"
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}
