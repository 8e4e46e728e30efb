package value

import (
	"reflect"
	"testing"
)

func TestDecodeJSONScalars(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{`null`, nil},
		{`true`, true},
		{`42`, 42.0},
		{`"hi"`, "hi"},
	}
	for _, tc := range cases {
		got, err := DecodeJSON([]byte(tc.in))
		if err != nil {
			t.Fatalf("DecodeJSON(%s): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("DecodeJSON(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDecodeJSONPreservesKeyOrder(t *testing.T) {
	v := MustDecodeJSON(`{"zebra":1,"apple":2,"mango":3}`)
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", v)
	}
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(obj.Keys(), want) {
		t.Fatalf("Keys() = %v, want %v", obj.Keys(), want)
	}
}

func TestDecodeJSONRoundTripOrder(t *testing.T) {
	in := `{"b":{"y":1,"x":2},"a":[{"q":1,"p":2}]}`
	v := MustDecodeJSON(in)
	out, err := EncodeJSON(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != in {
		t.Fatalf("round trip = %s, want %s", out, in)
	}
}

func TestDecodeJSONRejectsGarbage(t *testing.T) {
	if _, err := DecodeJSON([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if _, err := DecodeJSON([]byte(`1 2`)); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestMustDecodeJSONPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustDecodeJSON(`{`)
}

func TestToNativeLowersOrderedObjects(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1.0)
	obj.Set("b", []Value{"x", NewExprRef("ignored")})
	got := ToNative(obj)
	want := map[string]interface{}{
		"a": 1.0,
		"b": []interface{}{"x", nil},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ToNative = %#v, want %#v", got, want)
	}
}

func TestFromNativeSortsMapKeys(t *testing.T) {
	got := FromNative(map[string]interface{}{"b": 1.0, "a": 2.0, "c": 3.0})
	obj, ok := got.(*Object)
	if !ok {
		t.Fatalf("expected *Object, got %T", got)
	}
	if !reflect.DeepEqual(obj.Keys(), []string{"a", "b", "c"}) {
		t.Fatalf("Keys() = %v, want sorted", obj.Keys())
	}
}

func TestFromNativeNumbers(t *testing.T) {
	if got := FromNative(int(3)); got != 3.0 {
		t.Fatalf("FromNative(int) = %v, want 3.0", got)
	}
	if got := FromNative(int64(4)); got != 4.0 {
		t.Fatalf("FromNative(int64) = %v, want 4.0", got)
	}
}

func TestExprRefMarshalsAsNull(t *testing.T) {
	data, err := EncodeJSON([]Value{NewExprRef("a.b")})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[null]` {
		t.Fatalf("EncodeJSON = %s, want [null]", data)
	}
}

func TestExprRefWithBound(t *testing.T) {
	bare := NewExprRef("join('-', @)")
	if bare.Bound != nil {
		t.Fatal("bare ref must have no bound arguments")
	}
	once := bare.WithBound("a")
	twice := once.WithBound("b", "c")
	if len(bare.Bound) != 0 || len(once.Bound) != 1 || len(twice.Bound) != 3 {
		t.Fatalf("bound growth wrong: %d/%d/%d", len(bare.Bound), len(once.Bound), len(twice.Bound))
	}
	if twice.Bound[2] != "c" {
		t.Fatalf("Bound = %v", twice.Bound)
	}
}
