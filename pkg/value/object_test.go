package value

import "testing"

func TestObjectInsertionOrder(t *testing.T) {
	o := NewObject()
	o.Set("b", 1.0)
	o.Set("a", 2.0)
	o.Set("c", 3.0)
	got := o.Keys()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

func TestObjectSetExistingKeepsPosition(t *testing.T) {
	o := NewObject()
	o.Set("a", 1.0)
	o.Set("b", 2.0)
	o.Set("a", 9.0)
	if keys := o.Keys(); keys[0] != "a" || keys[1] != "b" || len(keys) != 2 {
		t.Fatalf("Keys() = %v, want [a b]", keys)
	}
	if v, _ := o.Get("a"); v != 9.0 {
		t.Fatalf("Get(a) = %v, want 9", v)
	}
}

func TestObjectGetMissing(t *testing.T) {
	o := NewObject()
	if _, ok := o.Get("missing"); ok {
		t.Fatal("expected miss")
	}
}

func TestObjectRange(t *testing.T) {
	o := NewObject()
	o.Set("x", 1.0)
	o.Set("y", 2.0)
	o.Set("z", 3.0)
	var visited []string
	o.Range(func(k string, _ Value) bool {
		visited = append(visited, k)
		return k != "y"
	})
	if len(visited) != 2 || visited[0] != "x" || visited[1] != "y" {
		t.Fatalf("Range visited %v, want [x y]", visited)
	}
}

func TestObjectMarshalJSONPreservesOrder(t *testing.T) {
	o := NewObject()
	o.Set("z", 1.0)
	o.Set("a", []Value{true, nil})
	data, err := o.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"z":1,"a":[true,null]}`
	if string(data) != want {
		t.Fatalf("MarshalJSON = %s, want %s", data, want)
	}
}
