package node

import "testing"

func TestBoxDropsNilChildren(t *testing.T) {
	b := Box("root", nil, Text("a", "x", nil), nil, Shape("s", nil))
	if len(b.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(b.Children))
	}
	b.Append(nil)
	if len(b.Children) != 2 {
		t.Errorf("Append should ignore nil, got %d children", len(b.Children))
	}
}

func TestFind(t *testing.T) {
	root := Box("root", nil,
		Box("card", nil, Text("label", "one", nil)),
		Box("card", nil, Text("label", "two", nil)),
	)
	labels := root.Find("label")
	if len(labels) != 2 || labels[0].Text != "one" || labels[1].Text != "two" {
		t.Errorf("unexpected labels: %+v", labels)
	}
}

func TestStyleMerge(t *testing.T) {
	base := Style{"color": "red", "padding": "4px"}
	out := base.Merge(Style{"color": "blue"})
	if out["color"] != "blue" || out["padding"] != "4px" {
		t.Errorf("unexpected merge: %v", out)
	}
	if base["color"] != "red" {
		t.Error("Merge mutated the receiver")
	}
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Px(12), "12px"},
		{Px(12.5), "12.5px"},
		{Pct(55), "55%"},
		{Num(0.25), "0.25"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, tt.got)
		}
	}
}
