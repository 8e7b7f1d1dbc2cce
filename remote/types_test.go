package remote_test

import (
	"testing"

	"dlab/remote"
)

func TestParseRef(t *testing.T) {
	cases := []struct {
		input   string
		want    remote.Ref
		wantErr bool
	}{
		{input: "1", want: remote.IndexRef(1)},
		{input: " 12 ", want: remote.IndexRef(12)},
		{input: "3e0aa619-4bcd-4b8a-9a26-74eb3f4f0c01", want: remote.UUIDRef("3e0aa619-4bcd-4b8a-9a26-74eb3f4f0c01")},
		{input: "0", wantErr: true},
		{input: "-2", wantErr: true},
		{input: "not-a-ref", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			ref, err := remote.ParseRef(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseRef(%q) succeeded with %+v", tc.input, ref)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRef(%q): %v", tc.input, err)
			}
			if ref != tc.want {
				t.Fatalf("ref = %+v, want %+v", ref, tc.want)
			}
		})
	}
}

func TestParseRefsStopsAtFirstError(t *testing.T) {
	if _, err := remote.ParseRefs([]string{"1", "bogus"}); err == nil {
		t.Fatal("expected error")
	}
	refs, err := remote.ParseRefs([]string{"1", "2"})
	if err != nil {
		t.Fatalf("ParseRefs: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("refs = %v", refs)
	}
}
