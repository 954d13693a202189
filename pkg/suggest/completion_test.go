package suggest

import "testing"

func TestCompleteRanksByFrequency(t *testing.T) {
	c := NewCompleter()
	c.AddWord("the", 2000)
	c.AddWord("there", 500)
	c.AddWord("their", 950)
	c.AddWord("they", 700)
	c.AddWord("banana", 90)

	suggestions := c.Complete("the", 10)

	want := []string{"their", "they", "there"}
	if len(suggestions) != len(want) {
		t.Fatalf("got %d suggestions, want %d: %+v", len(suggestions), len(want), suggestions)
	}
	for i, w := range want {
		if suggestions[i].Word != w {
			t.Errorf("suggestion %d = %q, want %q", i, suggestions[i].Word, w)
		}
	}
}

func TestCompleteExcludesPrefixItself(t *testing.T) {
	c := NewCompleter()
	c.AddWord("word", 10)
	c.AddWord("world", 5)

	for _, s := range c.Complete("word", 10) {
		if s.Word == "word" {
			t.Error("completions must not echo the prefix itself")
		}
	}
}

func TestCompleteHonorsLimit(t *testing.T) {
	c := NewCompleter()
	c.AddWord("car", 500)
	c.AddWord("cat", 490)
	c.AddWord("can", 480)
	c.AddWord("cap", 470)

	if got := len(c.Complete("c", 2)); got != 2 {
		t.Errorf("got %d suggestions, want 2", got)
	}
}

func TestAddWordKeepsHighestFrequency(t *testing.T) {
	c := NewCompleter()
	c.AddWord("world", 1)
	c.AddWord("world", 2)
	c.AddWord("world", 1)

	suggestions := c.Complete("worl", 1)
	if len(suggestions) != 1 || suggestions[0].Frequency != 2 {
		t.Errorf("got %+v, want world at frequency 2", suggestions)
	}

	if got := c.Stats()["totalWords"]; got != 1 {
		t.Errorf("totalWords = %d, want 1", got)
	}
}

func TestCompleteNoMatches(t *testing.T) {
	c := NewCompleter()
	c.AddWord("apple", 10)

	if got := c.Complete("zzz", 5); len(got) != 0 {
		t.Errorf("got %+v, want no suggestions", got)
	}
}
