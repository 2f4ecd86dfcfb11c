package player

import "testing"

func TestNameNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n := DefaultNameNormalizer()
	cases := []struct {
		in   string
		want string
	}{
		{in: "Mohamed Salah", want: "mohamed salah"},
		{in: "  Gabriel Martinelli ", want: "gabriel martinelli"},
		{in: "Rúben Dias", want: "ruben dias"},
		{in: "Joško Gvardiol", want: "josko gvardiol"},
		{in: "F.Kadıoğlu", want: "fkadioglu"},
		{in: "Martin Ødegaard", want: "martin odegaard"},
		{in: "Kristoffer Ajer Høgh", want: "kristoffer ajer hogh"},
		{in: "Jakub Kiwiór", want: "jakub kiwior"},
		{in: "Łukasz Fabiański", want: "lukasz fabianski"},
		{in: "Strakoša Đorđe", want: "strakosa dorde"},
		{in: "Læssøe", want: "laessoe"},
		{in: "Großkreutz", want: "grosskreutz"},
		{in: "Bruno G.", want: "bruno g"},
		{in: "Alexander-Arnold", want: "alexander-arnold"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := n.Normalize(tc.in); got != tc.want {
			t.Fatalf("normalize %q: got=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestNameNormalizer_SubstitutesBothLetterCases(t *testing.T) {
	t.Parallel()

	n := NewNameNormalizer(map[rune]string{'ł': "l"})
	if got := n.Normalize("ŁUKASZ"); got != "lukasz" {
		t.Fatalf("expected upper-case stroked l to be substituted, got=%q", got)
	}
}

func TestNameNormalizer_ZeroValueStillStripsMarks(t *testing.T) {
	t.Parallel()

	var n NameNormalizer
	if got := n.Normalize("Éder Militão"); got != "eder militao" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	got := Tokens("trent alexander-arnold ")
	want := []string{"trent", "alexander", "arnold"}
	if len(got) != len(want) {
		t.Fatalf("unexpected token count: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got=%q want=%q", i, got[i], want[i])
		}
	}
	if tokens := Tokens("jota-"); len(tokens) != 1 || tokens[0] != "jota" {
		t.Fatalf("expected trailing hyphen to be dropped, got=%v", tokens)
	}
}

func FuzzNameNormalizer_Idempotent(f *testing.F) {
	for _, seed := range []string{
		"Mohamed Salah",
		"F.Kadıoğlu",
		"ŁUKASZ FABIAŃSKI",
		"Martin Ødegaard",
		"GROẞ",
		"Ðorđe",
		"  Ä.B.  ",
		"Đ..  ",
		"Æ",
		"İlkay Gündoğan",
	} {
		f.Add(seed)
	}

	n := DefaultNameNormalizer()
	f.Fuzz(func(t *testing.T, in string) {
		once := n.Normalize(in)
		twice := n.Normalize(once)
		if once != twice {
			t.Fatalf("normalize is not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	})
}
