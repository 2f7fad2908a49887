package params

import "testing"

func TestAllLevelsValidateAndRoundtripName(t *testing.T) {
	for _, l := range All {
		p := Get(l)
		if p.Level != l {
			t.Fatalf("table entry for %s has Level=%s", l, p.Level)
		}
		if err := p.validate(); err != nil {
			t.Fatalf("%s: %v", l, err)
		}
		got, err := ParseLevel(l.String())
		if err != nil {
			t.Fatalf("ParseLevel(%s): %v", l, err)
		}
		if got != l {
			t.Fatalf("ParseLevel(%s) = %v, want %v", l.String(), got, l)
		}
	}
}

func TestPkByteLenMatchesSeedHPlusRBytes(t *testing.T) {
	cases := map[Level]int{
		Level64PQ:  103,
		Level96PQ:  128,
		Level128PQ: 218,
		Level128CL: 141,
		Level192CL: 184,
		Level256CL: 241,
	}
	for l, want := range cases {
		p := Get(l)
		if got := p.PkByteLen(); got != want {
			t.Fatalf("%s: PkByteLen() = %d, want %d", l, got, want)
		}
	}
}

func TestLsfs128MatchesReferenceApiConstants(t *testing.T) {
	p := Get(Level128PQ)
	if p.SkByteLen() != 32 {
		t.Fatalf("SkByteLen = %d, want 32", p.SkByteLen())
	}
	if p.PkByteLen() != 218 {
		t.Fatalf("PkByteLen = %d, want 218", p.PkByteLen())
	}
	if p.SigByteLen != 320788 {
		t.Fatalf("SigByteLen = %d, want 320788", p.SigByteLen)
	}
}

func TestSigByteLenCoversWorstCase(t *testing.T) {
	for _, l := range All {
		p := Get(l)
		if p.SigByteLen < p.worstCaseSigBytes() {
			t.Fatalf("%s: SigByteLen %d < worst case %d", l, p.SigByteLen, p.worstCaseSigBytes())
		}
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	if _, err := ParseLevel("not-a-level"); err == nil {
		t.Fatalf("expected error for unknown level name")
	}
}
