package resume2pdf

import (
	"testing"
)

func TestParseResume(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{
			"basics": {"name": "John Doe", "email": "john@example.com"},
			"work": [{"name": "Acme", "position": "Engineer", "startDate": "2021-03"}]
		}`)
		doc, err := ParseResume(data)
		if err != nil {
			t.Fatalf("ParseResume: %v", err)
		}
		if doc.Basics.Name != "John Doe" {
			t.Errorf("name = %q", doc.Basics.Name)
		}
		if len(doc.Work) != 1 || doc.Work[0].StartDate != "2021-03" {
			t.Errorf("work = %+v", doc.Work)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseResume([]byte(`{"basics":`)); err == nil {
			t.Error("expected error for truncated JSON")
		}
	})

	t.Run("entry order preserved", func(t *testing.T) {
		t.Parallel()
		data := []byte(`{
			"basics": {"name": "Jane Roe"},
			"work": [
				{"name": "Third"}, {"name": "First"}, {"name": "Second"}
			]
		}`)
		doc, err := ParseResume(data)
		if err != nil {
			t.Fatal(err)
		}
		got := []string{doc.Work[0].Name, doc.Work[1].Name, doc.Work[2].Name}
		want := []string{"Third", "First", "Second"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("work order = %v, want %v", got, want)
			}
		}
	})
}

func TestResumeTitle(t *testing.T) {
	t.Parallel()

	r := &ResumeDocument{Basics: Basics{Name: "John Doe"}}
	if got := r.Title(); got != "John Doe - Resume" {
		t.Errorf("Title() = %q", got)
	}
}
