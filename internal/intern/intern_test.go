package intern

import "testing"

func TestIntern_EqualTokensReturnEqualHandles(t *testing.T) {
	table := NewTable()

	a := table.Intern("cat")
	b := table.Intern("cat")

	if a != b {
		t.Errorf("Intern(%q) = %q, Intern(%q) = %q, want equal", "cat", a, "cat", b)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestIntern_DistinctTokensGrowTable(t *testing.T) {
	table := NewTable()

	table.Intern("cat")
	table.Intern("dog")
	table.Intern("cat")

	if table.Len() != 2 {
		t.Errorf("Len() = %d, want 2", table.Len())
	}
}

func TestIntern_Concurrent(t *testing.T) {
	table := NewTable()
	words := []string{"cat", "dog", "bird", "fish", "cat", "dog"}

	done := make(chan struct{})
	for _, w := range words {
		w := w
		go func() {
			table.Intern(w)
			done <- struct{}{}
		}()
	}
	for range words {
		<-done
	}

	if table.Len() != 4 {
		t.Errorf("Len() = %d, want 4", table.Len())
	}
}
