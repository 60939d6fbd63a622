package options

import (
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/trip"
)

func TestParseDateKey(t *testing.T) {
	tests := map[string]struct {
		in, ref string
		want    string
		wantErr bool
	}{
		"empty":      {in: "", want: ""},
		"date-key":   {in: "2026-02-05", want: "2026-02-05"},
		"loose":      {in: "2026-2-5", want: "2026-02-05"},
		"short":      {in: "2/5", ref: "2026-02-04", want: "2026-02-05"},
		"spaces":     {in: " 2/9 ", ref: "2026-02-04", want: "2026-02-09"},
		"not a date": {in: "tomorrow", wantErr: true},
		"leap day":   {in: "2/29", ref: "2028-02-01", want: "2028-02-29"},
		"no leap":    {in: "2/29", ref: "2026-02-04", wantErr: true},
		"bad month":  {in: "2026-13-01", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDateKey(tc.in, tc.ref)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestItemPatchOnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	o := &ItemOptions{}
	AddItemArgs(cmd, o)
	AddNameArg(cmd, o)
	if err := cmd.Flags().Parse([]string{"--time", "14:30", "--type", "meal"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	p, err := o.Patch(cmd)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if p.Time == nil || *p.Time != "14:30" {
		t.Fatalf("expected time in patch, got %+v", p)
	}
	if p.Type == nil || *p.Type != trip.Meal {
		t.Fatalf("expected type in patch, got %+v", p)
	}
	if p.Name != nil || p.Location != nil || p.Note != nil {
		t.Fatalf("expected unset flags to stay out of the patch, got %+v", p)
	}
}

func TestItemDraftRejectsUnknownType(t *testing.T) {
	o := &ItemOptions{Name: "x", Time: "9:00", Type: "boat"}
	if _, err := o.Draft(); err == nil {
		t.Fatal("expected unknown type to fail")
	}
	o.Type = ""
	d, err := o.Draft()
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	if d.Type != "" {
		t.Fatalf("expected type left for the editor, got %q", d.Type)
	}
}
