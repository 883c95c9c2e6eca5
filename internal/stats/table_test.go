package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Game", "Best", "Saved"}
	rows := [][]string{
		{"Reaction Time", "164 ms", "3"},
		{"Aim", "412 ms", "12"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	want := []string{
		"Game            Best Saved",
		"------------- ------ -----",
		"Reaction Time 164 ms     3",
		"Aim           412 ms    12",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: expected %q, got %q", i, line, lines[i])
		}
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"名前", "x"}, [][]string{{"ab", "1"}}, nil)
	if lines[0] != "名前 x" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[2] != "ab   1" {
		t.Fatalf("wide header should pad narrow cells, got %q", lines[2])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
