package errscan

import (
	"fmt"
	"testing"
)

func TestPatternTable(t *testing.T) {
	t.Run("table is populated", func(t *testing.T) {
		if len(ErrorPatterns()) == 0 {
			t.Fatal("error pattern table is empty")
		}
		if len(WarningPatterns()) == 0 {
			t.Fatal("warning pattern table is empty")
		}
	})

	t.Run("every entry is named and categorized", func(t *testing.T) {
		for _, p := range append(ErrorPatterns(), WarningPatterns()...) {
			if p.Name == "" || p.Category == "" || p.Pattern == "" {
				t.Errorf("incomplete pattern entry: %+v", p)
			}
		}
	})
}

func TestMatcher(t *testing.T) {
	errorsOnly := Matcher(false)
	withWarnings := Matcher(true)

	flagged := []string{
		"ERROR failed to connect",
		"fatal: repository not found",
		"Traceback (most recent call last):",
		`  File "/app/main.py", line 42`,
		"	at com.example.Main.run(Main.java:17)",
		"panic: runtime error: index out of range",
		"goroutine 7 [running]:",
		"process aborted, core dumped",
		"Out of memory: cannot allocate memory",
		`10.0.0.1 - - "GET /api HTTP/1.1" 500 13`,
		"command exited with code 2",
		"assertion failed: expected 3 got 4",
	}
	for _, line := range flagged {
		if !errorsOnly.MatchString(line) {
			t.Errorf("error matcher should flag %q", line)
		}
	}

	clean := []string{
		"server started",
		"GET /healthz 200",
		"processed 1500 records",
	}
	for _, line := range clean {
		if errorsOnly.MatchString(line) {
			t.Errorf("error matcher should not flag %q", line)
		}
	}

	t.Run("warnings only flagged when included", func(t *testing.T) {
		line := "WARNING: disk almost full"
		if errorsOnly.MatchString(line) {
			t.Errorf("warning line flagged without includeWarnings: %q", line)
		}
		if !withWarnings.MatchString(line) {
			t.Errorf("warning line not flagged with includeWarnings: %q", line)
		}
	})
}

func TestScan(t *testing.T) {
	t.Run("single error with context", func(t *testing.T) {
		lines := []string{"a", "b", "ERROR c", "d", "e"}
		result := Scan(lines, 1, false, 1000)

		if result.TotalHits != 1 {
			t.Fatalf("TotalHits = %d, want 1", result.TotalHits)
		}
		if len(result.Blocks) != 1 {
			t.Fatalf("Blocks = %d, want 1", len(result.Blocks))
		}
		block := result.Blocks[0]
		if block.Hit != 2 {
			t.Errorf("Hit = %d, want line index 2", block.Hit)
		}
		want := []int{1, 2, 3}
		if len(block.Lines) != len(want) {
			t.Fatalf("Lines = %v, want %v", block.Lines, want)
		}
		for i := range want {
			if block.Lines[i] != want[i] {
				t.Errorf("Lines = %v, want %v", block.Lines, want)
			}
		}
	})

	t.Run("overlapping context is deduplicated", func(t *testing.T) {
		lines := []string{"error one", "between", "error two", "after"}
		result := Scan(lines, 1, false, 1000)

		if result.TotalHits != 2 {
			t.Fatalf("TotalHits = %d, want 2", result.TotalHits)
		}
		seen := make(map[int]int)
		for _, block := range result.Blocks {
			for _, i := range block.Lines {
				seen[i]++
			}
		}
		for i, count := range seen {
			if count > 1 {
				t.Errorf("line %d emitted %d times, blocks must not repeat lines", i, count)
			}
		}
		// First block covers lines 0-1; the second contributes only the rest.
		second := result.Blocks[1].Lines
		if len(second) != 2 || second[0] != 2 || second[1] != 3 {
			t.Errorf("second block = %v, want lines 2 and 3", second)
		}
	})

	t.Run("budget counts only incremental lines", func(t *testing.T) {
		var lines []string
		for i := range 100 {
			lines = append(lines, fmt.Sprintf("error number %d spread over some characters", i))
		}
		result := Scan(lines, 0, false, 25)

		if result.Shown() == 0 {
			t.Fatal("first block must always be emitted")
		}
		if result.Remaining == 0 {
			t.Fatal("budget should leave hits unshown")
		}
		if result.Shown()+result.Remaining != result.TotalHits {
			t.Errorf("shown %d + remaining %d != total %d", result.Shown(), result.Remaining, result.TotalHits)
		}
	})

	t.Run("warnings extend the hit set", func(t *testing.T) {
		lines := []string{"fine", "warning: low disk", "fine", "error: it broke"}
		if got := Scan(lines, 0, false, 1000).TotalHits; got != 1 {
			t.Errorf("TotalHits = %d, want 1 without warnings", got)
		}
		if got := Scan(lines, 0, true, 1000).TotalHits; got != 2 {
			t.Errorf("TotalHits = %d, want 2 with warnings", got)
		}
	})

	t.Run("no hits", func(t *testing.T) {
		result := Scan([]string{"all", "good"}, 2, false, 1000)
		if result.TotalHits != 0 || len(result.Blocks) != 0 {
			t.Errorf("result = %+v, want empty", result)
		}
	})
}
