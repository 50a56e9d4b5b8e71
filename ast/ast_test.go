package ast

import "testing"

func TestSubscriptIdentity(t *testing.T) {
	none := NoSubscript()
	zero := NewSubscript(0)

	if none.Equal(zero) {
		t.Fatal("Subscript(None) must not equal Subscript(Some(0))")
	}
	if !none.Equal(NoSubscript()) {
		t.Fatal("two absent subscripts must be equal")
	}
	if !zero.Equal(NewSubscript(0)) {
		t.Fatal("two subscripts of the same value must be equal")
	}
	if zero.Equal(NewSubscript(1)) {
		t.Fatal("subscripts of different values must not be equal")
	}
}

func TestSubscriptEqualInt(t *testing.T) {
	tests := []struct {
		sub  Subscript
		n    int
		want bool
	}{
		{NoSubscript(), 0, false},
		{NewSubscript(0), 0, true},
		{NewSubscript(2), 2, true},
		{NewSubscript(2), 3, false},
	}
	for _, tt := range tests {
		if got := tt.sub.EqualInt(tt.n); got != tt.want {
			t.Errorf("Subscript(%v).EqualInt(%d) = %v, want %v", tt.sub, tt.n, got, tt.want)
		}
	}
}

func TestDegreeEqualInt(t *testing.T) {
	d := Degree(1)
	if !d.EqualInt(1) {
		t.Fatal("Degree(1).EqualInt(1) should be true")
	}
	if d.EqualInt(2) {
		t.Fatal("Degree(1).EqualInt(2) should be false")
	}
}

func TestPredicateLetterEqual(t *testing.T) {
	a := PredicateLetter{Letter: 'A', Sub: NewSubscript(2), Degree: Degree(1)}
	b := PredicateLetter{Letter: 'A', Sub: NewSubscript(2), Degree: Degree(1)}
	c := PredicateLetter{Letter: 'A', Sub: NoSubscript(), Degree: Degree(1)}

	if !a.Equal(b) {
		t.Fatal("identical predicate letters must be equal")
	}
	if a.Equal(c) {
		t.Fatal("predicate letters with differing subscripts must not be equal")
	}
}

func TestCanonicalStringRendersSubscriptAndDegree(t *testing.T) {
	st := SingularStatement{
		Letter: PredicateLetter{Letter: 'A', Sub: NewSubscript(2), Degree: Degree(1)},
		Terms:  []SingularTerm{{Letter: 'b', Sub: NoSubscript()}},
	}
	got := st.CanonicalString()
	want := "A₂¹b"
	if got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}

func TestCanonicalStringExistential(t *testing.T) {
	st := ExistentialStatement{
		Var: Variable{Letter: 'z', Sub: NoSubscript()},
		Body: ConjunctivePredicate{
			Left:  SimplePredicate{Letter: PredicateLetter{Letter: 'A', Degree: Degree(1)}, Terms: []Term{Variable{Letter: 'z'}}},
			Right: SimplePredicate{Letter: PredicateLetter{Letter: 'B', Degree: Degree(1)}, Terms: []Term{Variable{Letter: 'z'}}},
		},
	}
	got := st.CanonicalString()
	want := "∃z(A¹z&B¹z)"
	if got != want {
		t.Errorf("CanonicalString() = %q, want %q", got, want)
	}
}
