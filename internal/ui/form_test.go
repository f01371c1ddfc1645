package ui

import "testing"

var testFields = []formField{
	{key: "name", label: "Name", required: true},
	{key: "email", label: "Email", required: true},
}

func TestFormBindResetsOnIdentityChange(t *testing.T) {
	form := newFormModel("student", testFields, "s1", map[string]string{
		"name":  "Ann",
		"email": "ann@school.test",
	})
	form.inputs[0].SetValue("Ann (edited)")
	form.errMsg = "name is required"
	form.focusNext()

	// Switching entities discards the half-edited state.
	form.bind("s2", map[string]string{"name": "Ben", "email": "ben@school.test"})

	values := form.values()
	if values["name"] != "Ben" || values["email"] != "ben@school.test" {
		t.Fatalf("values = %v, want the new entity's fields", values)
	}
	if form.errMsg != "" {
		t.Fatal("errMsg survived a rebind")
	}
	if form.focus != 0 {
		t.Fatalf("focus = %d after rebind, want 0", form.focus)
	}
}

func TestFormBindSameEntityKeepsEdits(t *testing.T) {
	form := newFormModel("student", testFields, "s1", map[string]string{"name": "Ann"})
	form.inputs[0].SetValue("Ann (edited)")

	form.bind("s1", map[string]string{"name": "Ann"})

	if got := form.values()["name"]; got != "Ann (edited)" {
		t.Fatalf("name = %q after same-entity bind, want edit kept", got)
	}
}

func TestFormValuesTrimmed(t *testing.T) {
	form := newFormModel("student", testFields, "", nil)
	form.inputs[0].SetValue("  Ann  ")

	if got := form.values()["name"]; got != "Ann" {
		t.Fatalf("name = %q, want trimmed", got)
	}
}

func TestFormFocusWraps(t *testing.T) {
	form := newFormModel("student", testFields, "", nil)

	form.focusNext()
	if form.focus != 1 {
		t.Fatalf("focus = %d, want 1", form.focus)
	}
	form.focusNext()
	if form.focus != 0 {
		t.Fatalf("focus = %d after wrap, want 0", form.focus)
	}
	form.focusPrev()
	if form.focus != 1 {
		t.Fatalf("focus = %d after reverse wrap, want 1", form.focus)
	}
}
