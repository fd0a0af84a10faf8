package content

import (
	"strings"
	"testing"
)

func TestValidateDescriptorAccepts(t *testing.T) {
	doc := []byte(`{
		"title": "Build landing page",
		"summary": "Static landing page with contact form",
		"skills": ["html", "css"],
		"tags": ["frontend"]
	}`)
	if err := ValidateDescriptor(doc); err != nil {
		t.Fatalf("valid descriptor rejected: %v", err)
	}
}

func TestValidateDescriptorRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"missing title", `{"summary": "something"}`},
		{"missing summary", `{"title": "job"}`},
		{"empty title", `{"title": "", "summary": "something"}`},
		{"unknown field", `{"title": "job", "summary": "s", "payment": 100}`},
		{"wrong skill type", `{"title": "job", "summary": "s", "skills": [1]}`},
		{"not json", `title: job`},
	}
	for _, tc := range cases {
		if err := ValidateDescriptor([]byte(tc.doc)); err == nil {
			t.Fatalf("%s: invalid descriptor accepted", tc.name)
		}
	}
}

func TestDescriptorRefIsStable(t *testing.T) {
	doc := []byte(`{"title": "job", "summary": "s"}`)
	ref := DescriptorRef(doc)
	if !strings.HasPrefix(ref, "sha256:") {
		t.Fatalf("ref = %q, want sha256 prefix", ref)
	}
	if ref != DescriptorRef(doc) {
		t.Fatalf("ref not deterministic")
	}
	if ref == DescriptorRef([]byte(`{"title": "other", "summary": "s"}`)) {
		t.Fatalf("distinct documents share a ref")
	}
}
