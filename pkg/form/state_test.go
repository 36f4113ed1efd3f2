package form

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHobbySet_ToggleTwiceRestoresMembership(t *testing.T) {
	starts := []HobbySet{
		0,
		NewHobbySet(HobbyReading),
		NewHobbySet(HobbyTraveling, HobbyCooking),
		NewHobbySet(Hobbies()...),
	}
	for _, start := range starts {
		for _, h := range Hobbies() {
			once := start.With(h)
			if got := once.With(h); got != once {
				t.Fatalf("adding %s twice changed the set: %v vs %v", h, got, once)
			}
			removed := start.Without(h)
			if got := removed.Without(h); got != removed {
				t.Fatalf("removing %s twice changed the set", h)
			}
			if start.Has(h) && removed.With(h) != start {
				t.Fatalf("remove then add %s did not restore %v", h, start.Strings())
			}
			if !start.Has(h) && once.Without(h) != start {
				t.Fatalf("add then remove %s did not restore %v", h, start.Strings())
			}
		}
	}
}

func TestHobbySet_OrderAndLen(t *testing.T) {
	set := NewHobbySet(HobbyCooking, HobbyReading, Hobby("golf"))
	if set.Len() != 2 {
		t.Fatalf("expected two members, got %d", set.Len())
	}
	if diff := cmp.Diff([]string{"reading", "cooking"}, set.Strings()); diff != "" {
		t.Fatalf("members mismatch (-want +got):\n%s", diff)
	}
	if set.Has(Hobby("golf")) {
		t.Fatalf("unknown hobby must never be a member")
	}
}

func TestHobbySet_JSON(t *testing.T) {
	raw, err := json.Marshal(State{Name: "Ana", Hobbies: NewHobbySet(HobbyTraveling)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded State
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Hobbies.Has(HobbyTraveling) || decoded.Name != "Ana" {
		t.Fatalf("unexpected decoded state %+v", decoded)
	}

	var set HobbySet
	if err := json.Unmarshal([]byte(`["golf"]`), &set); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

func TestState_TargetView(t *testing.T) {
	s := State{Name: "Ana", Country: CountryUK, Hobbies: NewHobbySet(HobbyReading, HobbyCooking)}
	if s.Text(FieldName) != "Ana" || s.Text(FieldCountry) != "UK" {
		t.Fatalf("unexpected text values")
	}
	if s.Text(FieldHobbies) != "" || s.Text("unknown") != "" {
		t.Fatalf("non-scalar fields must read as empty")
	}
	if s.Count(FieldHobbies) != 2 || s.Count(FieldName) != 1 || s.Count(FieldGender) != 0 {
		t.Fatalf("unexpected counts")
	}
	if s.IsZero() || !(State{}).IsZero() {
		t.Fatalf("IsZero mismatch")
	}
	if diff := cmp.Diff([]string{"reading", "cooking"}, s.Selected(FieldHobbies)); diff != "" {
		t.Fatalf("selected hobbies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"UK"}, s.Selected(FieldCountry)); diff != "" {
		t.Fatalf("selected country mismatch (-want +got):\n%s", diff)
	}
	if s.Selected(FieldGender) != nil {
		t.Fatalf("unset field must have no selection")
	}
}

func TestParseOptions(t *testing.T) {
	if c, err := ParseCountry("Canada"); err != nil || c != CountryCanada {
		t.Fatalf("ParseCountry(Canada) = %q, %v", c, err)
	}
	if c, err := ParseCountry(""); err != nil || c != "" {
		t.Fatalf("empty country must be accepted")
	}
	if _, err := ParseCountry("usa"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("country match is case sensitive, got %v", err)
	}
	if _, err := ParseGender("other"); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected invalid gender, got %v", err)
	}
	if _, err := ParseHobby(""); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("empty hobby is not an option, got %v", err)
	}
}

func TestTouchedSet(t *testing.T) {
	var touched TouchedSet
	touched.Add(FieldHobbies)
	touched.Add(FieldName)
	touched.Add(FieldName)
	if touched.Len() != 2 {
		t.Fatalf("expected two touched fields, got %d", touched.Len())
	}
	if diff := cmp.Diff([]string{"name", "hobbies"}, touched.Slice()); diff != "" {
		t.Fatalf("touched order mismatch (-want +got):\n%s", diff)
	}
	touched.Clear()
	if touched.Len() != 0 || touched.Has(FieldName) {
		t.Fatalf("expected cleared set")
	}
}
