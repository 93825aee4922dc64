package syncx

import "testing"

func TestMap(t *testing.T) {
	var m Map[string, int]

	if _, ok := m.Load("foo"); ok {
		t.Errorf("expected 'foo' to be missing")
	}

	actual, loaded := m.LoadOrStore("foo", 1)
	if loaded {
		t.Errorf("expected 'foo' to be stored")
	}

	if e, g := 1, actual; e != g {
		t.Errorf("actual: expected '%v', got '%v'", e, g)
	}

	actual, loaded = m.LoadOrStore("foo", 2)
	if !loaded {
		t.Errorf("expected 'foo' to be loaded")
	}

	if e, g := 1, actual; e != g {
		t.Errorf("actual: expected '%v', got '%v'", e, g)
	}

	m.Store("bar", 3)

	count := 0
	m.Range(func(key string, value int) bool {
		count++
		return true
	})

	if e, g := 2, count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}

	m.Delete("foo")

	if _, ok := m.Load("foo"); ok {
		t.Errorf("expected 'foo' to be deleted")
	}
}
