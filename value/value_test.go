package value

import (
	"errors"
	"testing"
)

func TestHeapConstructorsAndKinds(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
	}{
		{NullValue(), Null},
		{BoolValue(true), Bool},
		{IntValue(-3), Int},
		{UintValue(3), Uint},
		{FloatValue(1.5), Float},
		{StringValue("hi"), String},
		{ArrayOf(IntValue(1), IntValue(2)), Array},
		{ObjectOf(KeyVal{Key: "a", Val: IntValue(1)}), Object},
	}
	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.kind {
			t.Errorf("Kind() = %s, want %s", got, tt.kind)
		}
	}
}

func TestOfHeuristic(t *testing.T) {
	obj := Of(ArrayOf(StringValue("a"), IntValue(1)), ArrayOf(StringValue("b"), IntValue(2)))
	if obj.Kind() != Object {
		t.Fatalf("expected object, got %s", obj.Kind())
	}
	if obj.Len() != 2 {
		t.Fatalf("len = %d", obj.Len())
	}
	arr := Of(IntValue(1), IntValue(2))
	if arr.Kind() != Array {
		t.Fatalf("expected array, got %s", arr.Kind())
	}
}

func TestIntNarrowing(t *testing.T) {
	big := UintValue(1<<63 + 5)
	if _, err := GetInt[int64](&big); err == nil {
		t.Fatalf("expected overflow error")
	}
	small := UintValue(100)
	got, err := GetInt[int8](&small)
	if err != nil || got != 100 {
		t.Fatalf("got %v, %v", got, err)
	}
	neg := IntValue(-1)
	if _, err := GetUint[uint8](&neg); err == nil {
		t.Fatalf("IntNum -> unsigned must always fail")
	}
	tooNeg := IntValue(-200)
	if _, err := GetInt[int8](&tooNeg); err == nil {
		t.Fatalf("expected range error for int8(-200)")
	}
}

func TestFloatAlwaysFailsIntTarget(t *testing.T) {
	f := FloatValue(1.0)
	if _, err := GetInt[int64](&f); err == nil {
		t.Fatalf("float -> int must fail")
	}
	if v, err := f.Float64(); err != nil || v != 1.0 {
		t.Fatalf("got %v, %v", v, err)
	}
}

func TestBoolAndStrExactMatch(t *testing.T) {
	b := BoolValue(true)
	if _, err := b.Str(); err == nil {
		t.Fatalf("expected type error")
	}
	s := StringValue("x")
	if _, err := s.Bool(); err == nil {
		t.Fatalf("expected type error")
	}
	var te *TypeError
	_, err := s.Bool()
	if !errors.As(err, &te) {
		t.Fatalf("expected *TypeError, got %T", err)
	}
}

func TestIndexBoundsChecked(t *testing.T) {
	arr := ArrayOf(IntValue(1), IntValue(2))
	if _, err := arr.Index(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	p, err := arr.Index(1)
	if err != nil {
		t.Fatal(err)
	}
	*p = IntValue(99)
	p2, _ := arr.Index(1)
	got, _ := GetInt[int64](p2)
	if got != 99 {
		t.Fatalf("write-through failed: %d", got)
	}
}

func TestFieldPromotionAndInsertion(t *testing.T) {
	v := NullValue()
	p, err := v.Field("a")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != Object {
		t.Fatalf("expected promotion to object, got %s", v.Kind())
	}
	if p.Kind() != Null {
		t.Fatalf("new slot should be null, got %s", p.Kind())
	}
	*p = IntValue(7)
	p2, _ := v.Field("a")
	got, _ := GetInt[int64](p2)
	if got != 7 {
		t.Fatalf("got %d", got)
	}
	if v.Len() != 1 {
		t.Fatalf("len = %d", v.Len())
	}
}

func TestPushBackPromotion(t *testing.T) {
	v := NullValue()
	if err := v.PushBack(IntValue(1)); err != nil {
		t.Fatal(err)
	}
	if v.Kind() != Array || v.Len() != 1 {
		t.Fatalf("kind=%s len=%d", v.Kind(), v.Len())
	}
	if err := v.PushBack(IntValue(2)); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 2 {
		t.Fatalf("len = %d", v.Len())
	}
}

func TestValuesAndItemsIteration(t *testing.T) {
	arr := ArrayOf(IntValue(1), IntValue(2), IntValue(3))
	var sum int64
	for p := range arr.Values() {
		n, _ := GetInt[int64](p)
		sum += n
	}
	if sum != 6 {
		t.Fatalf("sum = %d", sum)
	}

	obj := ObjectOf(KeyVal{Key: "a", Val: IntValue(1)}, KeyVal{Key: "b", Val: IntValue(2)})
	var keys []string
	for k := range obj.Items() {
		keys = append(keys, k)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys = %v", keys)
	}

	null := NullValue()
	count := 0
	for range null.Values() {
		count++
	}
	if count != 0 {
		t.Fatalf("expected zero items iterating null")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := ArrayOf(StringValue("a"), ArrayOf(IntValue(1)))
	clone := orig.Clone()
	p, _ := clone.Index(1)
	p.PushBack(IntValue(2))
	origInner, _ := orig.Index(1)
	if origInner.Len() != 1 {
		t.Fatalf("clone mutation leaked into original: len=%d", origInner.Len())
	}
}
