package dnd

import "testing"

func TestTypeFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter TypeFilter
		typ    string
		want   bool
	}{
		{"nil accepts all", nil, "file", true},
		{"any", AnyType(), "whatever", true},
		{"exact match", ExactType("file"), "file", true},
		{"exact mismatch", ExactType("file"), "folder", false},
		{"one of match", OneOfTypes("file", "folder"), "folder", true},
		{"one of mismatch", OneOfTypes("file", "folder"), "link", false},
		{"one of empty", OneOfTypes(), "file", false},
		{"predicate", TypePredicate(func(t string) bool { return len(t) == 4 }), "file", true},
		{"predicate rejects", TypePredicate(func(t string) bool { return len(t) == 4 }), "folder", false},
		{"nil predicate", TypePredicate(nil), "file", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := &DropZone{Accepts: tt.filter}
			if got := z.AcceptsType(tt.typ); got != tt.want {
				t.Errorf("AcceptsType(%q) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestSupportsMode(t *testing.T) {
	z := &DropZone{Modes: []Mode{ModeCut}}
	if !z.SupportsMode(ModeCopy) {
		t.Error("copy should always be supported")
	}
	if !z.SupportsMode(ModeCut) {
		t.Error("listed mode should be supported")
	}
	if z.SupportsMode(ModeReorder) {
		t.Error("unlisted mode should not be supported")
	}
	if z.SupportsMode("link") != z.CompatibleMode("link") {
		t.Error("CompatibleMode should match SupportsMode")
	}
}

func TestDropAllowed(t *testing.T) {
	evenOnly := func(data any, _ string) bool {
		n, ok := data.(int)
		return ok && n%2 == 0
	}
	tests := []struct {
		name string
		zone DropZone
		typ  string
		data any
		mode Mode
		want bool
	}{
		{"plain copy", DropZone{}, "file", 1, ModeCopy, true},
		{"wrong type", DropZone{Accepts: ExactType("folder")}, "file", 1, ModeCopy, false},
		{"unsupported mode", DropZone{}, "file", 1, ModeCut, false},
		{"supported mode", DropZone{Modes: []Mode{ModeCut}}, "file", 1, ModeCut, true},
		{"payload rejected", DropZone{AcceptsData: evenOnly}, "file", 1, ModeCopy, false},
		{"payload accepted", DropZone{AcceptsData: evenOnly}, "file", 2, ModeCopy, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.zone.DropAllowed(tt.typ, tt.data, tt.mode); got != tt.want {
				t.Errorf("DropAllowed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDropAllowedRecomputed(t *testing.T) {
	open := true
	z := &DropZone{AcceptsData: func(any, string) bool { return open }}
	if !z.DropAllowed("file", nil, ModeCopy) {
		t.Fatal("drop should be allowed while open")
	}
	open = false
	if z.DropAllowed("file", nil, ModeCopy) {
		t.Error("DropAllowed should follow the predicate, not a cached value")
	}
}
